package state

import (
	"pricewatch/internal/domain"
)

// AppState contains all the application state. Mutation goes through the
// named transition methods below; the model never pokes fields directly.
type AppState struct {
	// Search term data
	SearchTexts   []string // server's list as of last load, plus optimistic appends
	NewSearchText string   // text being typed for the next scraper job

	// Price history panel
	ShowPriceHistory bool                // whether the panel is open
	PriceHistory     []domain.PriceEntry // contents of the panel while open
	HistoryTerm      string              // term the panel was opened for

	// Selection state
	SelectedIndex int // cursor position in the term list

	// Operation states
	LoadingTerms   bool // initial list fetch in flight
	FetchingTerm   bool // a history fetch in flight
	SubmittingTerm bool // a scraper job submission in flight

	// UI state
	ViewportHeight int    // available height for the term list
	ViewportOffset int    // offset for scrolling
	StatusMessage  string // status bar message
	InputFocused   bool   // whether keystrokes go to the search input
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		SearchTexts:    make([]string, 0),
		ViewportHeight: 20, // Default
	}
}

// Search term operations

// ReplaceSearchTexts replaces the whole term list with the server's list,
// in the order received. Called only on a successful load.
func (s *AppState) ReplaceSearchTexts(terms []string) {
	s.SearchTexts = terms
	if s.SelectedIndex >= len(s.SearchTexts) {
		s.SelectedIndex = len(s.SearchTexts) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// AppendSearchText optimistically appends a newly submitted term. There is
// no de-dup check and no server confirmation of the append; submitting the
// same term twice yields two identical entries.
func (s *AppState) AppendSearchText(term string) {
	s.SearchTexts = append(s.SearchTexts, term)
}

// SetNewSearchText sets the pending input value. No validation; empty and
// whitespace-only values are accepted.
func (s *AppState) SetNewSearchText(value string) {
	s.NewSearchText = value
}

// ClearNewSearchText resets the input after a successful submission
func (s *AppState) ClearNewSearchText() {
	s.NewSearchText = ""
}

// Price history panel operations

// OpenPriceHistory replaces the panel contents and opens it in one
// transition. Re-opening while already open just swaps the contents.
func (s *AppState) OpenPriceHistory(term string, entries []domain.PriceEntry) {
	s.PriceHistory = entries
	s.HistoryTerm = term
	s.ShowPriceHistory = true
}

// ClosePriceHistory closes the panel and clears its contents together;
// there is no partially closed state.
func (s *AppState) ClosePriceHistory() {
	s.ShowPriceHistory = false
	s.PriceHistory = nil
	s.HistoryTerm = ""
}

// Selection operations

// MoveSelection moves the cursor by delta, clamped to the term list
func (s *AppState) MoveSelection(delta int) {
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.SearchTexts) {
		s.SelectedIndex = len(s.SearchTexts) - 1
		if s.SelectedIndex < 0 {
			s.SelectedIndex = 0
		}
	}
	s.scrollToSelection()
}

// SelectedTerm returns the term under the cursor, if any
func (s *AppState) SelectedTerm() (string, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.SearchTexts) {
		return "", false
	}
	return s.SearchTexts[s.SelectedIndex], true
}

// scrollToSelection keeps the cursor inside the viewport
func (s *AppState) scrollToSelection() {
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
}
