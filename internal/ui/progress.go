// Package ui renders the progress of a translate batch in the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"brainrot/internal/driver"
)

// доля работы, выполненной к началу шага
var stepWeight = [...]float64{
	driver.StepQueued:  0,
	driver.StepLex:     0.2,
	driver.StepRewrite: 0.5,
	driver.StepFormat:  0.7,
	driver.StepWrite:   0.9,
	driver.StepDone:    1,
	driver.StepFailed:  1,
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	stepStyles  = map[driver.Step]lipgloss.Style{
		driver.StepQueued: lipgloss.NewStyle().Faint(true),
		driver.StepDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		driver.StepFailed: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
	workingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

type row struct {
	path string
	step driver.Step
}

type batchModel struct {
	title    string
	events   <-chan driver.Event
	rows     []row
	byPath   map[string]int
	failed   int
	finished bool
	width    int

	spin spinner.Model
	bar  progress.Model
}

type eventMsg driver.Event

type closedMsg struct{}

func newBatchModel(title string, files []string, events <-chan driver.Event) *batchModel {
	m := &batchModel{
		title:  title,
		events: events,
		rows:   make([]row, len(files)),
		byPath: make(map[string]int, len(files)),
		width:  80,
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(workingStyle)),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(76)),
	}
	for i, f := range files {
		m.rows[i] = row{path: f}
		m.byPath[f] = i
	}
	return m
}

// Run draws progress for files on out until events is closed.
func Run(out io.Writer, title string, files []string, events <-chan driver.Event) error {
	_, err := tea.NewProgram(newBatchModel(title, files, events), tea.WithOutput(out), tea.WithInput(nil)).Run()
	return err
}

func (m *batchModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.next())
}

// next ждёт следующее событие батча.
func (m *batchModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return closedMsg{}
	}
}

func (m *batchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.next())
	case closedMsg:
		m.finished = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-4, 10)
		}
	}
	return m, nil
}

// apply records ev; events for unknown paths and backwards steps are ignored.
func (m *batchModel) apply(ev driver.Event) tea.Cmd {
	i, ok := m.byPath[ev.Path]
	if !ok || m.rows[i].step.Finished() {
		return nil
	}
	m.rows[i].step = ev.Step
	if ev.Step == driver.StepFailed {
		m.failed++
	}
	return m.bar.SetPercent(m.fraction())
}

func (m *batchModel) fraction() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range m.rows {
		sum += stepWeight[r.step]
	}
	return sum / float64(len(m.rows))
}

func (m *batchModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder
	if m.finished {
		header := fmt.Sprintf("%s: %d files", m.title, len(m.rows))
		if m.failed > 0 {
			header += fmt.Sprintf(", %d failed", m.failed)
		}
		b.WriteString(headerStyle.Render(header))
	} else {
		b.WriteString(m.spin.View() + " " + headerStyle.Render(m.title))
	}
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	for _, r := range m.rows {
		style, ok := stepStyles[r.step]
		if !ok {
			style = workingStyle
		}
		fmt.Fprintf(&b, "  %s %s\n", style.Render(fmt.Sprintf("%10s", r.step)), truncate(r.path, nameWidth))
	}
	b.WriteString("\n")
	if m.finished {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

// truncate shortens value to width display cells, ending in "..." when
// there is room for it.
func truncate(value string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(value) <= width:
		return value
	case width <= 3:
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
