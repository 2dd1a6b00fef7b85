package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/Akashdeep-Patra/segbar/internal/app"
	"github.com/Akashdeep-Patra/segbar/internal/common"
	"github.com/Akashdeep-Patra/segbar/internal/config"
	"github.com/Akashdeep-Patra/segbar/internal/watcher"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// Build-time variables injected via ldflags by GoReleaser / Taskfile.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := buildRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "segbar:", err)
		os.Exit(1)
	}
}

func buildRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "segbar",
		Short: "Animated segmented controls in the terminal",
		Long: `segbar draws rows of segmented controls whose selection indicator slides
between segments, clipped to each segment as it passes.

Rows come from ~/.config/segbar/config.yaml (or --config). Edit the file
while segbar runs and the rows reload in place, keeping their selections.`,
		RunE:          runApp,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"segbar %s\n  commit:  %s\n  built:   %s\n  go:      %s\n  os/arch: %s/%s\n",
		version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH,
	))

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file")
	rootCmd.Flags().Bool("debug", false, "Write debug logs to --log-file")
	rootCmd.Flags().String("log-file", "segbar-debug.log", "Debug log path")
	rootCmd.Flags().Duration("debounce", 200*time.Millisecond, "Quiet period before a config change reloads")

	rootCmd.AddCommand(buildRenderCmd())
	rootCmd.AddCommand(buildVersionCmd())
	rootCmd.AddCommand(buildCompletionCmd())

	return rootCmd
}

// loadConfig reads and normalizes the config named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, []string, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, cfg.Normalize(), nil
}

// buildRenderCmd creates `segbar render`, which prints one frame of a row.
func buildRenderCmd() *cobra.Command {
	var opts app.RenderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single frame of a row",
		Long: `Print one configured row, frozen at a position, and exit.

Examples:
  segbar render --row View
  segbar render --row 2 --position 1.5 --width 60`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, warnings, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			for _, w := range warnings {
				fmt.Fprintln(os.Stderr, "warning:", w)
			}
			out, err := app.RenderFrame(cfg, opts)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Row, "row", "r", "", "Row name or 1-based index (default: first row)")
	cmd.Flags().Float64VarP(&opts.Position, "position", "p", -1, "Indicator position (default: the row's selection)")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Maximum width in columns (default: natural width)")

	return cmd
}

// buildVersionCmd creates the `segbar version` subcommand supporting --json.
func buildVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := map[string]string{
				"version": version,
				"commit":  commit,
				"date":    date,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			}
			if jsonOutput {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Printf("segbar %s\n", version)
			fmt.Printf("  commit:  %s\n", commit)
			fmt.Printf("  built:   %s\n", date)
			fmt.Printf("  go:      %s\n", runtime.Version())
			fmt.Printf("  os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output version info as JSON")

	return cmd
}

// buildCompletionCmd creates the `segbar completion` subcommand for shell completions.
func buildCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for segbar.

Examples:
  # Bash (add to ~/.bashrc)
  segbar completion bash > /etc/bash_completion.d/segbar

  # Zsh (add to ~/.zshrc before compinit)
  segbar completion zsh > "${fpath[1]}/_segbar"

  # Fish
  segbar completion fish > ~/.config/fish/completions/segbar.fish

  # PowerShell
  segbar completion powershell > segbar.ps1`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}

	return cmd
}

func runApp(cmd *cobra.Command, _ []string) error {
	debugLog, _ := cmd.Flags().GetBool("debug")
	logFile, _ := cmd.Flags().GetString("log-file")
	debounce, _ := cmd.Flags().GetDuration("debounce")

	// Anything logged while the TUI owns the terminal would corrupt it.
	if debugLog {
		f, err := tea.LogToFile(logFile, "segbar")
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, warnings, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Printf("config warning: %s", w)
	}

	path, _ := cmd.Flags().GetString("config")
	load := func() (*config.Config, error) { return config.Load(path) }

	model := app.New(cfg, load).WithWarnings(warnings)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	// Reload when the config file changes. Running on defaults there is
	// nothing to watch.
	if cfg.Source != "" {
		watchCh, stop, watchErr := watcher.Watch(cfg.Source, debounce)
		if watchErr != nil {
			log.Printf("config watcher disabled: %v", watchErr)
		} else {
			defer stop()
			go func() {
				for range watchCh {
					p.Send(common.ReloadMsg{})
				}
			}()
		}
	}

	_, err = p.Run()
	return err
}
