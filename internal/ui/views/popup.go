package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a modal popup centered over greyed-out main
// content. The popup is closed by the model on the next keypress, so the
// content underneath stays inert while it is visible.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	popupContent = wrap(popupContent, width-10)
	popupContent += "\n\n" + pr.styles.Dim.Render("press any key")
	styledPopup := popupStyle.Render(popupContent)

	if width <= 0 || height <= 0 {
		return styledPopup
	}

	// Desaturated base layer so the modal reads as blocking
	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}
	base = base[:height]

	popupLines := strings.Split(styledPopup, "\n")
	modalW := lipgloss.Width(styledPopup)
	x := (width - modalW) / 2
	if x < 0 {
		x = 0
	}
	y := (height - len(popupLines)) / 2
	if y < 0 {
		y = 0
	}

	// Splice the popup lines over the base band. Anything the popup covers
	// is dropped for the whole line width to keep rendering simple.
	for i, pl := range popupLines {
		if y+i >= len(base) {
			break
		}
		base[y+i] = strings.Repeat(" ", x) + pl
	}

	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	plain := ansiRE.ReplaceAllString(s, "")
	return lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render(plain)
}

// wrap breaks long popup lines so the modal fits the terminal
func wrap(s string, limit int) string {
	if limit < 20 {
		limit = 20
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		for lipgloss.Width(line) > limit {
			cut := limit
			if idx := strings.LastIndex(line[:cut], " "); idx > 0 {
				cut = idx
			}
			out = append(out, line[:cut])
			line = strings.TrimLeft(line[cut:], " ")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
