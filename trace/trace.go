// Package trace renders a selection transition and its effect plan as a
// small styled text timeline.
package trace

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"HistoricDates/history"
	"HistoricDates/orchestrator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5D5FEF")).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			Padding(0, 1)
	delayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF5DA8")).Width(8).Align(lipgloss.Right)
	effectStyle = lipgloss.NewStyle().PaddingLeft(2)
	stateStyle  = lipgloss.NewStyle().Faint(true).PaddingLeft(1)
)

// Render describes the transition from -> to and every scheduled effect in
// delivery order.
func Render(d *history.Dataset, from, to orchestrator.State, plan orchestrator.Plan) string {
	var b strings.Builder

	header := fmt.Sprintf("select %d (%s) -> %d (%s)",
		from.ActiveIndex, d.Category(from.ActiveIndex).Title,
		to.ActiveIndex, d.Category(to.ActiveIndex).Title)
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	b.WriteString(stateStyle.Render(fmt.Sprintf("rotation %dms  angle %.1f° -> %.1f°  range %s-%s -> %s-%s",
		to.RotationDurationMs, from.Angle, to.Angle,
		history.FormatDate(from.StartDate), history.FormatDate(from.EndDate),
		history.FormatDate(to.StartDate), history.FormatDate(to.EndDate))))
	b.WriteString("\n")

	for _, sc := range plan.Sorted() {
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			delayStyle.Render(fmt.Sprintf("+%dms", sc.Delay.Milliseconds())),
			effectStyle.Render(orchestrator.Describe(sc.Effect)),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
