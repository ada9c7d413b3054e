package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/liftlog/internal/cli/formatter"
	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/alexanderramin/liftlog/internal/stats"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// runDashboard launches the interactive TUI. Focus reporting is enabled so
// the model can reload from storage when the terminal regains focus.
func runDashboard(app *App) error {
	p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}

type dashboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Back    key.Binding
	New     key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultDashboardKeys() dashboardKeyMap {
	return dashboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new day")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete day")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type dashboardView int

const (
	viewDayList dashboardView = iota
	viewDayDetail
)

// dashboardModel is the root bubbletea Model: a day list with streak
// header, and a per-day detail view.
type dashboardModel struct {
	app  *App
	keys dashboardKeyMap

	days   []domain.WorkoutDay
	streak stats.Streak
	target int

	view     dashboardView
	cursor   int
	detailID string // id of the day open in the detail view

	width    int
	height   int
	quitting bool
}

func newDashboardModel(app *App) dashboardModel {
	m := dashboardModel{app: app, keys: defaultDashboardKeys()}
	m.reload()
	return m
}

// reload re-reads everything from storage. The cursor follows the selected
// day by id: a day that still exists stays selected even if it moved, a
// vanished day collapses the cursor onto the nearest neighbor.
func (m *dashboardModel) reload() {
	ctx := context.Background()

	selectedID := ""
	if m.cursor >= 0 && m.cursor < len(m.days) {
		selectedID = m.days[m.cursor].ID
	}

	m.days = m.app.Days.ReadAll(ctx)
	m.target = m.app.Settings.Target(ctx)
	m.streak = stats.CalculateStreak(m.days, m.target, time.Now())

	if selectedID != "" {
		for i, d := range m.days {
			if d.ID == selectedID {
				m.cursor = i
				selectedID = ""
				break
			}
		}
	}
	if m.cursor >= len(m.days) {
		m.cursor = len(m.days) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	// The open detail day may have been deleted elsewhere.
	if m.view == viewDayDetail && m.findDay(m.detailID) == nil {
		m.view = viewDayList
		m.detailID = ""
	}
}

func (m *dashboardModel) findDay(id string) *domain.WorkoutDay {
	for i := range m.days {
		if m.days[i].ID == id {
			return &m.days[i]
		}
	}
	return nil
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.FocusMsg:
		// Another process (or another terminal) may have written to the
		// database while we were in the background.
		m.reload()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.view == viewDayList && m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.view == viewDayList && m.cursor < len(m.days)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Open):
		if m.view == viewDayList && m.cursor < len(m.days) {
			m.detailID = m.days[m.cursor].ID
			m.view = viewDayDetail
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.view == viewDayDetail {
			m.view = viewDayList
			m.detailID = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.view == viewDayList {
			m.app.Days.EnsureDayWithSession(context.Background(), time.Now())
			m.reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.view == viewDayList && m.cursor < len(m.days) {
			m.app.Days.Delete(context.Background(), m.days[m.cursor].ID)
			m.reload()
		}
		return m, nil
	}

	return m, nil
}

func (m dashboardModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	switch m.view {
	case viewDayDetail:
		sections = append(sections, m.renderDetail())
	default:
		sections = append(sections, m.renderDayList())
	}

	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.height {
			result += strings.Repeat("\n", m.height-lines)
		}
	}
	return result
}

func (m dashboardModel) renderHeader() string {
	title := formatter.StyleHeader.Render("liftlog")
	header := title + "  " + formatter.RenderStreak(m.streak)
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return header + "\n" + sep
}

func (m dashboardModel) renderDayList() string {
	if len(m.days) == 0 {
		return "\n  " + formatter.Dim("No workout days yet. Press n to start one.")
	}

	var sb strings.Builder
	for i, d := range m.days {
		marker := "  "
		line := fmt.Sprintf("%-12s  %d %s, %d %s",
			formatter.HumanDate(d.Time()),
			len(d.Sessions), formatter.Plural(len(d.Sessions), "session", "sessions"),
			d.TotalExercises(), formatter.Plural(d.TotalExercises(), "exercise", "exercises"))
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("› ")
			line = formatter.Bold(line)
		} else {
			line = formatter.StyleFg.Render(line)
		}
		sb.WriteString("  " + marker + line + "\n")
	}
	return sb.String()
}

func (m dashboardModel) renderDetail() string {
	day := m.findDay(m.detailID)
	if day == nil {
		return "\n  " + formatter.Dim("Day no longer exists.")
	}

	var sb strings.Builder
	sb.WriteString("  " + formatter.Header(formatter.HumanDate(day.Time())) + "\n")
	for _, s := range day.Sessions {
		sb.WriteString(fmt.Sprintf("  %s %s\n", formatter.Bold(s.Name), formatter.Dim(formatter.TruncID(s.ID))))
		for _, ex := range s.Exercises {
			line := fmt.Sprintf("    %s %s", formatter.Swatch(ex.Color), ex.Name)
			if best := ex.BestPB(); best != nil {
				line += "  " + formatter.Dim(formatter.FormatPB(best.Reps, best.Weight))
			}
			sb.WriteString(line + "\n")
		}
		if len(s.Exercises) == 0 {
			sb.WriteString("    " + formatter.Dim("(no exercises)") + "\n")
		}
	}
	return sb.String()
}

func (m dashboardModel) renderStatusBar() string {
	var bindings []key.Binding
	switch m.view {
	case viewDayDetail:
		bindings = []key.Binding{m.keys.Back, m.keys.Refresh, m.keys.Quit}
	default:
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Open, m.keys.New, m.keys.Delete, m.keys.Quit}
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	sep := formatter.Dim(strings.Repeat("─", max(m.width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}
