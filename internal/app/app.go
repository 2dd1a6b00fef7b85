package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/segbar/internal/common"
	"github.com/Akashdeep-Patra/segbar/internal/config"
	"github.com/Akashdeep-Patra/segbar/internal/ui"
	"github.com/Akashdeep-Patra/segbar/internal/ui/components"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// headerLines is the title line plus a blank line.
	headerLines = 2
	// indent is the left margin of every row.
	indent = 2
)

// Loader re-reads the configuration for a reload.
type Loader func() (*config.Config, error)

// Model is the top-level Bubbletea model: a stack of segmented rows, one of
// which has keyboard focus.
type Model struct {
	cfg       *config.Config
	load      Loader
	styles    ui.Styles
	keys      KeyMap
	rows      []components.Segmented
	focus     int
	width     int
	height    int
	showHelp  bool
	offset    int   // first body line shown
	rowTop    []int // body line of each row's label
	bodyLines int
	statusMsg string
	statusErr bool
	statusExp time.Time
	warnings  []string
	now       func() time.Time
}

// New creates a new application model from a normalized config.
func New(cfg *config.Config, load Loader) Model {
	m := Model{
		cfg:  cfg,
		load: load,
		keys: DefaultKeyMap(),
		now:  time.Now,
	}
	m.rebuild(cfg, nil)
	return m
}

// WithWarnings queues config warnings to show once the program starts.
func (m Model) WithWarnings(warnings []string) Model {
	m.warnings = warnings
	return m
}

// Init shows pending config warnings.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("segbar")}
	if len(m.warnings) > 0 {
		cmds = append(cmds, common.CmdInfo("config: "+strings.Join(m.warnings, "; ")))
	}
	return tea.Batch(cmds...)
}

// rebuild replaces the rows from cfg, keeping selections by row name.
func (m *Model) rebuild(cfg *config.Config, selected map[string]int) {
	theme, _ := ui.ThemeByName(cfg.Theme)
	m.cfg = cfg
	m.styles = ui.NewStyles(theme)
	m.rows = BuildRows(cfg, theme, selected)
	m.focus = min(max(m.focus, 0), max(len(m.rows)-1, 0))
	for i := range m.rows {
		if i == m.focus {
			m.rows[i].Focus()
		}
	}
	m.layoutRows()
}

// footerLines is the status bar plus the key hint line when there is room
// for it.
func (m Model) footerLines() int {
	if m.height >= headerLines+6 {
		return 2
	}
	return 1
}

func (m Model) bodyHeight() int {
	return max(m.height-headerLines-m.footerLines(), 1)
}

// layoutRows sizes every row, scrolls the focused row into view, and records
// where View will draw each row so mouse coordinates can be mapped back.
func (m *Model) layoutRows() {
	m.rowTop = make([]int, 0, len(m.rows))
	line := 0
	for i := range m.rows {
		if m.width > 0 {
			m.rows[i].SetSize(max(m.width-2*indent, 1))
		}
		m.rowTop = append(m.rowTop, line)
		line += 1 + m.rows[i].Height() + 1 // label, row, blank
	}
	m.bodyLines = line

	bodyH := m.bodyHeight()
	if len(m.rows) > 0 {
		top := m.rowTop[m.focus]
		bottom := top + 1 + m.rows[m.focus].Height()
		if top < m.offset {
			m.offset = top
		}
		if bottom > m.offset+bodyH {
			m.offset = bottom - bodyH
		}
	}
	m.offset = min(max(m.offset, 0), max(m.bodyLines-bodyH, 0))

	for i := range m.rows {
		m.rows[i].SetOrigin(indent, headerLines+m.rowTop[i]+1-m.offset)
	}
}

// inBody reports whether screen line y shows rows rather than the header or
// footer.
func (m Model) inBody(y int) bool {
	return y >= headerLines && y < headerLines+m.bodyHeight()
}

func (m *Model) setFocus(i int) {
	if len(m.rows) == 0 {
		return
	}
	i = (i%len(m.rows) + len(m.rows)) % len(m.rows)
	m.rows[m.focus].Blur()
	m.focus = i
	m.rows[m.focus].Focus()
	m.layoutRows()
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutRows()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			return m, common.CmdReload
		case key.Matches(msg, m.keys.NextRow):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevRow):
			m.setFocus(m.focus - 1)
			return m, nil
		}
		if len(m.rows) == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.rows[m.focus], cmd = m.rows[m.focus].Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			switch msg.Button {
			case tea.MouseButtonWheelUp:
				m.setFocus(m.focus - 1)
				return m, nil
			case tea.MouseButtonWheelDown:
				m.setFocus(m.focus + 1)
				return m, nil
			}
			// Rows scrolled under the header or footer keep their origins.
			if !m.inBody(msg.Y) {
				return m, nil
			}
			if msg.Button == tea.MouseButtonLeft {
				for i := range m.rows {
					if m.rows[i].Contains(msg.X, msg.Y) && i != m.focus {
						m.setFocus(i)
						break
					}
				}
			}
		}
		return m.forward(msg)

	case common.PositionChangedMsg:
		return m, common.CmdInfo(fmt.Sprintf("%s: %s selected", msg.Row, m.segmentLabel(msg.Row, msg.Index)))

	case common.CellClickedMsg:
		log.Printf("clicked %s/%d", msg.Row, msg.Index)
		return m, nil

	case common.ReloadMsg:
		return m.reload()

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = m.now().Add(5 * time.Second)
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = m.now().Add(3 * time.Second)
		return m, nil
	}

	// Animation frames and anything else belong to whichever row claims them.
	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, len(m.rows))
	for i := range m.rows {
		var cmd tea.Cmd
		m.rows[i], cmd = m.rows[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) reload() (Model, tea.Cmd) {
	if m.load == nil {
		return m, nil
	}
	cfg, err := m.load()
	if err != nil {
		log.Printf("reload failed: %v", err)
		return m, common.CmdErr(fmt.Errorf("reload: %w", err))
	}
	warnings := cfg.Normalize()

	selected := make(map[string]int, len(m.rows))
	for _, r := range m.rows {
		selected[r.Name()] = r.Selected()
	}
	m.rebuild(cfg, selected)

	if len(warnings) > 0 {
		return m, common.CmdInfo("config reloaded: " + strings.Join(warnings, "; "))
	}
	return m, common.CmdInfo("config reloaded")
}

func (m Model) segmentLabel(row string, index int) string {
	for _, r := range m.rows {
		if r.Name() != row {
			continue
		}
		if c := r.Row().Cell(index); c != nil {
			if t := c.Content().Text; t != nil && t.Value != "" {
				return t.Value
			}
		}
	}
	return fmt.Sprintf("#%d", index+1)
}

// View renders the entire UI. It does no I/O.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		sections := components.GlobalHelpEntries()
		if len(m.rows) > 0 {
			sections["Selection"] = m.rows[m.focus].ShortHelp()
		}
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	pad := strings.Repeat(" ", indent)
	header := pad + m.styles.Title.Render("segbar") + "  " + m.styles.Muted.Render("animated segmented controls")

	var body []string
	for i, r := range m.rows {
		label := m.styles.RowLabel
		marker := "  "
		if i == m.focus {
			label = m.styles.RowLabelFocused
			marker = "▸ "
		}
		body = append(body, marker+label.Render(ui.Truncate(r.Name(), m.width-2*indent)))
		for _, l := range strings.Split(r.View(), "\n") {
			body = append(body, pad+l)
		}
		body = append(body, "")
	}

	bodyH := m.bodyHeight()
	bar := components.RenderScrollbar(m.styles, bodyH, len(body), m.offset)
	bodyW := m.width
	if bar != "" {
		bodyW--
	}
	visible := make([]string, bodyH)
	for i := range visible {
		var l string
		if j := m.offset + i; j < len(body) {
			l = body[j]
		}
		visible[i] = ui.PadRight(l, bodyW)
	}
	view := strings.Join(visible, "\n")
	if bar != "" {
		view = lipgloss.JoinHorizontal(lipgloss.Top, view, bar)
	}

	lines := []string{header, "", view}
	if m.footerLines() > 1 {
		lines = append(lines, m.keyHints())
	}
	lines = append(lines, components.RenderStatusBar(m.styles, m.statusBar(), m.width))
	return strings.Join(lines, "\n")
}

// keyHints renders as many key hints as fit on one line.
func (m Model) keyHints() string {
	hints := [][2]string{
		{"←/→", "move"},
		{"tab", "next row"},
		{"1-9", "jump"},
		{"r", "reload"},
		{"?", "help"},
		{"q", "quit"},
	}
	var items []string
	for _, h := range hints {
		next := append(items, ui.RenderKeyValue(m.styles, h[0], h[1]))
		if lipgloss.Width(m.styles.HelpBar.Render(ui.JoinHorizontal("  ", next...))) > m.width {
			break
		}
		items = next
	}
	return m.styles.HelpBar.Render(ui.JoinHorizontal("  ", items...))
}

func (m Model) statusBar() components.StatusBarData {
	data := components.StatusBarData{Config: m.cfg.Source}
	if len(m.rows) > 0 {
		r := m.rows[m.focus]
		data.Row = r.Name()
		data.Selected = r.Selected()
		data.Count = r.Row().Len()
		data.Position = r.Position()
		data.State = r.State().String()
	}
	if m.statusMsg != "" && m.now().Before(m.statusExp) {
		data.Message = m.statusMsg
		data.IsError = m.statusErr
	}
	return data
}
