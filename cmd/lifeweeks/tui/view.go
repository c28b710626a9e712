package tui

import (
	"fmt"
	"strings"

	"lifeweeks/cmd/lifeweeks/ui"
)

var fieldLabels = [fieldCount]string{
	"Birth date",
	"Ethnicity",
	"Gender",
	"Height (cm)",
	"Weight (kg)",
	"BP systolic",
	"BP diastolic",
	"Blood sugar",
	"Activity level",
	"Goal title",
	"Goal age",
	"Goal glyph",
}

// View implements tea.Model.
func (m Model) View() string {
	switch m.phase {
	case phaseBusy:
		return m.busyView()
	case phaseResult:
		return m.resultView()
	default:
		return m.formView()
	}
}

func (m Model) formView() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Life in Weeks"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Map your remaining time, one week at a time."))
	b.WriteString("\n\n")

	for i, in := range m.inputs {
		if i == fieldGoalTitle {
			b.WriteString(m.styles.SectionHeader.Render("Personal Goals"))
			b.WriteString("\n")
			for _, g := range m.goals {
				b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  %s %s (age %d)", g.Glyph, g.Title, g.AgeYears)))
				b.WriteString("\n")
			}
		}
		label := m.styles.StatLabel.Render(fmt.Sprintf("%-14s", fieldLabels[i]))
		b.WriteString(fmt.Sprintf("%s %s\n", label, in.View()))
	}

	if m.inputErr != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("⚠ " + m.inputErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab/shift+tab navigate · ctrl+a add goal · ctrl+s calculate · ctrl+c quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) busyView() string {
	return fmt.Sprintf("\n %s %s\n",
		m.spinner.View(),
		m.styles.Body.Render("Consulting the actuary…"))
}

func (m Model) resultView() string {
	if !m.ready {
		return m.resultContent()
	}
	footer := m.styles.Muted.Render("↑/↓ scroll · r recalculate · q quit")
	return m.viewport.View() + "\n" + footer
}

// resultContent assembles the full dashboard + grid document for the
// viewport.
func (m Model) resultContent() string {
	if m.result == nil || m.grid == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(ui.RenderDashboard(m.styles, m.result))
	b.WriteString("\n")
	b.WriteString(m.gridView.Render(m.grid))
	b.WriteString(m.gridView.RenderLegend(m.result))
	b.WriteString("\n")
	b.WriteString(ui.RenderFooter(m.styles))
	return b.String()
}
