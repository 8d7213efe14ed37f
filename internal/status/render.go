// internal/status/render.go
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tamzrod/dynexposure/internal/exposure"
)

// --- STYLES ---
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#575B7E")).
			Padding(0, 1)

	baseStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	cellStyle    = lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
	outsideStyle = cellStyle.Copy().Foreground(lipgloss.Color("240"))
	staleStyle   = cellStyle.Copy().Foreground(lipgloss.Color("226"))
	underStyle   = cellStyle.Copy().Foreground(lipgloss.Color("33"))
	overStyle    = cellStyle.Copy().Foreground(lipgloss.Color("196")).Bold(true)

	statusKeyStyle = lipgloss.NewStyle().Bold(true)
)

// Render formats the sample grid and the cycle outcome for a terminal.
// Samples outside the classified window are dimmed; samples of fields whose
// transaction failed are marked with '*'.
func Render(s Snapshot) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  preset=%s", s.Device, s.Grid.Name)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	size := s.Grid.ResultSize()
	rowWidth := s.Grid.ResultWidth()

	var rows []string
	for rowStart := 0; rowWidth > 0 && rowStart < size; rowStart += rowWidth {
		cells := make([]string, 0, rowWidth)
		for col := 0; col < rowWidth; col++ {
			idx := rowStart + col
			cells = append(cells, renderCell(s, idx, col))
		}
		rows = append(rows, strings.Join(cells, "|"))
	}
	b.WriteString(baseStyle.Render(strings.Join(rows, "\n")))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s %s  %s %d",
		statusKeyStyle.Render("decision:"), s.Decision,
		statusKeyStyle.Render("score:"), s.Score)

	if s.DryRun {
		fmt.Fprintf(&b, "  %s %d (dry run)", statusKeyStyle.Render("exposure:"), s.ExposureBefore)
	} else if s.ExposureBefore != s.ExposureAfter {
		fmt.Fprintf(&b, "  %s %d -> %d", statusKeyStyle.Render("exposure:"), s.ExposureBefore, s.ExposureAfter)
	}
	if s.InvalidFields > 0 {
		fmt.Fprintf(&b, "  %s %d", statusKeyStyle.Render("failed fields:"), s.InvalidFields)
	}

	return b.String()
}

func renderCell(s Snapshot, idx, col int) string {
	v := s.Samples.Data[idx]
	text := fmt.Sprintf("0x%02x", v)

	inWindow := col >= s.Grid.WidthOffset && col < s.Grid.WidthOffset+s.Grid.Width

	switch {
	case !s.Samples.FieldValid(idx):
		return staleStyle.Render(text + "*")
	case !inWindow:
		return outsideStyle.Render(text)
	}

	switch {
	case v > exposure.HighThreshold:
		return overStyle.Render(text)
	case v < exposure.LowThreshold:
		return underStyle.Render(text)
	default:
		return cellStyle.Render(text)
	}
}
