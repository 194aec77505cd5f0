package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch/internal/domain"
)

func TestReplaceSearchTextsKeepsServerOrder(t *testing.T) {
	s := NewAppState()
	s.ReplaceSearchTexts([]string{"kettle", "lamp"})
	assert.Equal(t, []string{"kettle", "lamp"}, s.SearchTexts)

	// A later load fully replaces the list
	s.ReplaceSearchTexts([]string{"mug"})
	assert.Equal(t, []string{"mug"}, s.SearchTexts)
}

func TestReplaceSearchTextsClampsSelection(t *testing.T) {
	s := NewAppState()
	s.ReplaceSearchTexts([]string{"a", "b", "c"})
	s.SelectedIndex = 2

	s.ReplaceSearchTexts([]string{"a"})
	assert.Equal(t, 0, s.SelectedIndex)

	s.ReplaceSearchTexts(nil)
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestAppendSearchTextDoesNotDeduplicate(t *testing.T) {
	s := NewAppState()
	s.ReplaceSearchTexts([]string{"kettle"})
	s.AppendSearchText("kettle")
	// Submitting the same term twice yields two identical entries
	assert.Equal(t, []string{"kettle", "kettle"}, s.SearchTexts)
}

func TestOpenAndClosePriceHistory(t *testing.T) {
	s := NewAppState()
	entries := []domain.PriceEntry{{"date": "2024-01-01", "price": 10.0}}

	s.OpenPriceHistory("kettle", entries)
	require.True(t, s.ShowPriceHistory)
	assert.Equal(t, entries, s.PriceHistory)
	assert.Equal(t, "kettle", s.HistoryTerm)

	// Re-opening while open swaps contents, stays open
	other := []domain.PriceEntry{{"date": "2024-02-01", "price": 12.0}}
	s.OpenPriceHistory("lamp", other)
	require.True(t, s.ShowPriceHistory)
	assert.Equal(t, other, s.PriceHistory)

	// Close clears both fields together
	s.ClosePriceHistory()
	assert.False(t, s.ShowPriceHistory)
	assert.Empty(t, s.PriceHistory)
	assert.Empty(t, s.HistoryTerm)
}

func TestClosePriceHistoryFromClosedIsHarmless(t *testing.T) {
	s := NewAppState()
	s.ClosePriceHistory()
	assert.False(t, s.ShowPriceHistory)
	assert.Empty(t, s.PriceHistory)
}

func TestMoveSelectionClamps(t *testing.T) {
	s := NewAppState()
	s.ReplaceSearchTexts([]string{"a", "b", "c"})

	s.MoveSelection(-1)
	assert.Equal(t, 0, s.SelectedIndex)

	s.MoveSelection(10)
	assert.Equal(t, 2, s.SelectedIndex)

	term, ok := s.SelectedTerm()
	require.True(t, ok)
	assert.Equal(t, "c", term)
}

func TestSelectedTermOnEmptyList(t *testing.T) {
	s := NewAppState()
	_, ok := s.SelectedTerm()
	assert.False(t, ok)

	s.MoveSelection(1) // must not panic on empty list
	assert.Equal(t, 0, s.SelectedIndex)
}

func TestMoveSelectionScrollsViewport(t *testing.T) {
	s := NewAppState()
	terms := make([]string, 30)
	for i := range terms {
		terms[i] = string(rune('a' + i%26))
	}
	s.ReplaceSearchTexts(terms)
	s.ViewportHeight = 5

	for i := 0; i < 10; i++ {
		s.MoveSelection(1)
	}
	assert.Equal(t, 10, s.SelectedIndex)
	assert.Equal(t, 6, s.ViewportOffset)

	s.MoveSelection(-10)
	assert.Equal(t, 0, s.SelectedIndex)
	assert.Equal(t, 0, s.ViewportOffset)
}

func TestSetNewSearchTextAcceptsAnything(t *testing.T) {
	s := NewAppState()
	s.SetNewSearchText("  ")
	assert.Equal(t, "  ", s.NewSearchText)
	s.SetNewSearchText("")
	assert.Equal(t, "", s.NewSearchText)
}
