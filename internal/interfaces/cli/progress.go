package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// progressMsg carries one download progress update into the Bubble Tea
// model. total is -1 when the server did not announce a length.
type progressMsg struct {
	driver     string
	downloaded int64
	total      int64
}

// installDoneMsg tells the model the install run finished.
type installDoneMsg struct{}

const progressBarWidth = 30

// progressModel renders one progress row per driver being downloaded.
type progressModel struct {
	order []string
	rows  map[string]progressMsg
}

func newProgressModel() progressModel {
	return progressModel{rows: make(map[string]progressMsg)}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		if _, seen := m.rows[msg.driver]; !seen {
			m.order = append(m.order, msg.driver)
		}
		m.rows[msg.driver] = msg
		return m, nil

	case installDoneMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if len(m.order) == 0 {
		return dimStyle.Render("resolving driver versions...") + "\n"
	}

	var b strings.Builder
	for _, driver := range m.order {
		row := m.rows[driver]
		b.WriteString(fmt.Sprintf("%-14s %s\n", driver, renderProgress(row)))
	}
	return b.String()
}

// renderProgress draws a bar when the total size is known and a byte counter
// otherwise.
func renderProgress(row progressMsg) string {
	if row.total <= 0 {
		return dimStyle.Render(formatBytes(row.downloaded))
	}

	ratio := float64(row.downloaded) / float64(row.total)
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * progressBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)
	return fmt.Sprintf("%s %3.0f%% %s", successStyle.Render(bar), ratio*100, dimStyle.Render(formatBytes(row.downloaded)))
}

func formatBytes(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// progressUI runs the Bubble Tea program and bridges ProgressFunc callbacks
// (called from installer goroutines) into model messages.
type progressUI struct {
	program *tea.Program
}

func newProgressUI() *progressUI {
	return &progressUI{program: tea.NewProgram(newProgressModel())}
}

// Callback returns the per-driver progress function handed to installers.
func (ui *progressUI) Callback() func(driver string, downloaded, total int64) {
	return func(driver string, downloaded, total int64) {
		ui.program.Send(progressMsg{driver: driver, downloaded: downloaded, total: total})
	}
}

// Done stops the program once results are in.
func (ui *progressUI) Done() {
	ui.program.Send(installDoneMsg{})
}

// Run blocks until the program quits.
func (ui *progressUI) Run() error {
	_, err := ui.program.Run()
	return err
}
