package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pricewatch/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	SearchTexts    []string
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	ShowPriceHistory bool
	PriceHistory     []domain.PriceEntry
	HistoryTerm      string

	InputView    string // rendered text input
	InputFocused bool

	LoadingTerms   bool
	FetchingTerm   bool
	SubmittingTerm bool
	SpinnerView    string

	StatusMessage string
	ShowHelpBar   bool

	ShowPopup    bool
	PopupMessage string
	PopupIsErr   bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	popup  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		popup:  NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(vs ViewState) string {
	content := &strings.Builder{}

	// Title with activity indicator
	title := r.styles.Title.Render("pricewatch")
	if vs.LoadingTerms || vs.FetchingTerm || vs.SubmittingTerm {
		title = lipgloss.JoinHorizontal(lipgloss.Top, title, " ", vs.SpinnerView)
	}
	content.WriteString(title)
	content.WriteString("\n")

	// Search term list
	content.WriteString(r.renderTermList(vs))
	content.WriteString("\n")

	// New search text input
	content.WriteString(r.renderInput(vs))

	// Price history panel
	if vs.ShowPriceHistory {
		content.WriteString("\n\n")
		content.WriteString(r.renderHistoryPanel(vs))
	}

	// Status bar
	if vs.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(vs.StatusMessage))
	}

	// Help bar
	if vs.ShowHelpBar {
		content.WriteString("\n\n")
		content.WriteString(r.renderHelpBar(vs))
	}

	main := r.styles.Main.Render(content.String())

	// Popup overlay blocks everything underneath until dismissed
	if vs.ShowPopup {
		style := r.styles.PopupBox
		if vs.PopupIsErr {
			style = r.styles.PopupError
		}
		return r.popup.RenderPopupOverlay(main, vs.PopupMessage, vs.Height, vs.Width, style)
	}

	return main
}

// renderTermList renders the scrolling list of known search terms
func (r *Renderer) renderTermList(vs ViewState) string {
	if len(vs.SearchTexts) == 0 {
		if vs.LoadingTerms {
			return r.styles.Dim.Render("loading search terms...")
		}
		return r.styles.Dim.Render("no search terms yet - submit one below")
	}

	lines := make([]string, 0, len(vs.SearchTexts))
	end := vs.ViewportOffset + vs.ViewportHeight
	if end > len(vs.SearchTexts) {
		end = len(vs.SearchTexts)
	}
	for i := vs.ViewportOffset; i < end; i++ {
		term := vs.SearchTexts[i]
		cursor := "  "
		line := term
		if i == vs.SelectedIndex && !vs.InputFocused {
			cursor = "> "
			line = r.styles.SelectionBg.Render(term)
		}
		if vs.ShowPriceHistory && term == vs.HistoryTerm {
			line = r.styles.Highlight.Render(term)
		}
		lines = append(lines, cursor+line)
	}

	if end < len(vs.SearchTexts) || vs.ViewportOffset > 0 {
		lines = append(lines, r.styles.Dim.Render(
			fmt.Sprintf("  (%d-%d of %d)", vs.ViewportOffset+1, end, len(vs.SearchTexts))))
	}

	return strings.Join(lines, "\n")
}

// renderInput renders the new-search-text form line
func (r *Renderer) renderInput(vs ViewState) string {
	label := r.styles.InputLabel.Render("new search: ")
	if !vs.InputFocused {
		return label + r.styles.Dim.Render("press n to type")
	}
	return label + vs.InputView
}

// renderHistoryPanel renders the price history table for the selected term
func (r *Renderer) renderHistoryPanel(vs ViewState) string {
	title := r.styles.PanelTitle.Render("price history: " + vs.HistoryTerm)

	if len(vs.PriceHistory) == 0 {
		body := r.styles.Dim.Render("no recorded prices")
		return r.styles.PanelBox.Render(title + "\n" + body)
	}

	cols := domain.Columns(vs.PriceHistory)

	// Column widths sized to the widest cell
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c)
	}
	for _, entry := range vs.PriceHistory {
		for i, c := range cols {
			if w := lipgloss.Width(entry.Field(c)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	rows := make([]string, 0, len(vs.PriceHistory)+1)
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = r.styles.TableHeader.Render(pad(c, widths[i]))
	}
	rows = append(rows, strings.Join(header, "  "))

	for _, entry := range vs.PriceHistory {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = r.styles.TableCell.Render(pad(entry.Field(c), widths[i]))
		}
		rows = append(rows, strings.Join(cells, "  "))
	}

	return r.styles.PanelBox.Render(title + "\n" + strings.Join(rows, "\n"))
}

// renderHelpBar renders the one-line key hint bar
func (r *Renderer) renderHelpBar(vs ViewState) string {
	hints := "j/k: move • enter: history • n: new search • r: reload • q: quit"
	if vs.InputFocused {
		hints = "enter: start scraper • esc: cancel"
	} else if vs.ShowPriceHistory {
		hints = "j/k: move • enter: history • esc: close panel • q: quit"
	}
	return r.styles.Help.Render(hints)
}

// pad right-pads s with spaces to the given display width
func pad(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
