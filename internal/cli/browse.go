package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/valter-silva-au/foresight/internal/core"
	"github.com/valter-silva-au/foresight/pkg/models"
)

// Browser panel indices.
const (
	panelScenarios = iota
	panelDetail
	browsePanelCount
)

var (
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("62")).
				Padding(1, 2)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type browseModel struct {
	scenarios []*models.AIScenario

	activePanel  int
	selected     int
	detailScroll int
	width        int
	height       int
}

func newBrowseModel(scenarios []*models.AIScenario) browseModel {
	return browseModel{scenarios: scenarios}
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.activePanel = (m.activePanel + 1) % browsePanelCount
			return m, nil
		case "up", "k":
			if m.activePanel == panelScenarios {
				if m.selected > 0 {
					m.selected--
					m.detailScroll = 0
				}
			} else if m.detailScroll > 0 {
				m.detailScroll--
			}
			return m, nil
		case "down", "j":
			if m.activePanel == panelScenarios {
				if m.selected < len(m.scenarios)-1 {
					m.selected++
					m.detailScroll = 0
				}
			} else {
				m.detailScroll++
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

func (m browseModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	title := titleStyle.Render(" Foresight Scenarios ")
	help := helpStyle.Render("tab: switch panel | j/k: move | q: quit")

	if len(m.scenarios) == 0 {
		return fmt.Sprintf("%s\n\n  No scenarios loaded.\n\n%s", title, help)
	}

	listPanel := m.renderListPanel()
	detailPanel := m.renderDetailPanel()

	availableWidth := m.width - 2

	var body string
	if availableWidth > 100 {
		listWidth := availableWidth / 3
		listPanel = m.applyPanelStyle(panelScenarios, listPanel, listWidth-4)
		detailPanel = m.applyPanelStyle(panelDetail, detailPanel, availableWidth-listWidth-4)
		body = lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	} else {
		panelWidth := availableWidth - 4
		if panelWidth < 20 {
			panelWidth = 20
		}
		listPanel = m.applyPanelStyle(panelScenarios, listPanel, panelWidth)
		detailPanel = m.applyPanelStyle(panelDetail, detailPanel, panelWidth)
		body = lipgloss.JoinVertical(lipgloss.Left, listPanel, detailPanel)
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s", title, body, help)
}

func (m browseModel) applyPanelStyle(panel int, content string, width int) string {
	style := panelStyle
	if m.activePanel == panel {
		style = activePanelStyle
	}
	return style.Width(width).Render(content)
}

func (m browseModel) renderListPanel() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Scenarios"))
	b.WriteString("\n")

	for i, s := range m.scenarios {
		line := fmt.Sprintf("  %-28s %s", truncate(s.Title, 28), s.ScenarioType)
		if i == m.selected {
			line = selectedRowStyle.Render("> " + line[2:])
		} else {
			line = fmt.Sprintf("  %-28s %s", truncate(s.Title, 28), styleScenarioType(s.ScenarioType))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func (m browseModel) renderDetailPanel() string {
	s := m.scenarios[m.selected]

	var b strings.Builder
	b.WriteString(headerStyle.Render(s.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", dimStyle.Render("id:"), s.ID))
	b.WriteString(fmt.Sprintf("  %s %s\n", dimStyle.Render("type:"), s.ScenarioType))
	if s.Author != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", dimStyle.Render("author:"), s.Author))
	}
	if len(s.Tags) > 0 {
		b.WriteString(fmt.Sprintf("  %s %s\n", dimStyle.Render("tags:"), strings.Join(s.Tags, ", ")))
	}
	if s.Summary != "" {
		b.WriteString("\n  " + s.Summary + "\n")
	}

	if len(s.Periods) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Timeline"))
		b.WriteString("\n")
		for _, p := range s.Periods {
			b.WriteString(fmt.Sprintf("  %s to %s  %s\n", p.StartDate, p.EndDate, p.Title))
		}
	}

	if len(s.Parameters) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Parameters"))
		b.WriteString("\n")
		for _, p := range s.Parameters {
			last := "-"
			if n := len(p.Data); n > 0 {
				last = core.FormatTickValue(p.Data[n-1].Value)
			}
			b.WriteString(fmt.Sprintf("  %-32s %-14s %s\n", truncate(p.Name, 32), p.Unit, last))
		}
	}

	if len(s.Milestones) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Milestones"))
		b.WriteString("\n")
		for _, ms := range s.Milestones {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", ms.Date, ms.Title))
		}
	}

	lines := strings.Split(b.String(), "\n")
	if m.detailScroll >= len(lines) {
		return ""
	}
	return strings.Join(lines[m.detailScroll:], "\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactive scenario browser",
	Long: `Launch an interactive terminal browser over the loaded scenarios:
a scenario list beside a detail view of the selection.

Switch panels with Tab, move with j/k, quit with q.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Registry == nil {
			return fmt.Errorf("scenario registry not initialized")
		}
		p := tea.NewProgram(newBrowseModel(Registry.Scenarios()), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
