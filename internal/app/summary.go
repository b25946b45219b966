package app

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-web3-uploader/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	summaryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failureStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle      = lipgloss.NewStyle().Faint(true)
)

// RenderSummary formats the outcome of a batch for the terminal: the totals
// followed by one entry per record in input order.
func RenderSummary(records []models.OutputRecord) string {
	succeeded := 0
	for _, r := range records {
		if r.Succeeded() {
			succeeded++
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Upload summary"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %d  Succeeded: %d  Failed: %d", len(records), succeeded, len(records)-succeeded)

	for _, r := range records {
		b.WriteString("\n")
		if r.Succeeded() {
			b.WriteString(successStyle.Render("✔ " + r.URL))
			b.WriteString("\n  ")
			b.WriteString(faintStyle.Render(valueOrEmpty(r.Web3URL)))
		} else {
			b.WriteString(failureStyle.Render("✘ " + r.URL))
			b.WriteString("\n  ")
			b.WriteString(faintStyle.Render(r.ErrorMessage()))
		}
	}

	return summaryBoxStyle.Render(b.String())
}

func valueOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
