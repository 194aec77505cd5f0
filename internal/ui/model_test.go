package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewatch/internal/config"
	"pricewatch/internal/domain"
	"pricewatch/internal/eventbus"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(eventbus.New(), config.DefaultConfig())
	m.Init()
	// Simulate the first WindowSizeMsg
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func deliver(m *Model, event eventbus.DomainEvent) {
	m.Update(EventMsg{Event: event})
}

func TestTermsLoadedReplacesList(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.State().LoadingTerms)

	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle", "lamp"}})
	assert.False(t, m.State().LoadingTerms)
	assert.Equal(t, []string{"kettle", "lamp"}, m.State().SearchTexts)
}

func TestTermsLoadFailureKeepsPreviousList(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle"}})

	deliver(m, eventbus.TermsLoadedEvent{Err: errors.New("backend down")})
	assert.Equal(t, []string{"kettle"}, m.State().SearchTexts)
}

func TestSelectTermOpensPanelOnSuccessOnly(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle", "lamp"}})

	m.Update(keyMsg("enter"))
	require.True(t, m.State().FetchingTerm)
	// Nothing opens until the fetch completes
	assert.False(t, m.State().ShowPriceHistory)

	deliver(m, eventbus.HistoryLoadedEvent{Err: errors.New("boom"), Term: "kettle"})
	assert.False(t, m.State().ShowPriceHistory)
	assert.Empty(t, m.State().PriceHistory)

	m.Update(keyMsg("enter"))
	entries := []domain.PriceEntry{{"date": "2024-01-01", "price": 10.0}}
	deliver(m, eventbus.HistoryLoadedEvent{Term: "kettle", Entries: entries})
	assert.True(t, m.State().ShowPriceHistory)
	assert.Equal(t, entries, m.State().PriceHistory)
}

func TestLastCompletedHistoryResponseWins(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle", "lamp"}})

	// Two fetches in flight; responses arrive out of click order
	first := []domain.PriceEntry{{"price": 1.0}}
	second := []domain.PriceEntry{{"price": 2.0}}
	deliver(m, eventbus.HistoryLoadedEvent{Term: "lamp", Entries: second})
	deliver(m, eventbus.HistoryLoadedEvent{Term: "kettle", Entries: first})

	assert.Equal(t, "kettle", m.State().HistoryTerm)
	assert.Equal(t, first, m.State().PriceHistory)
}

func TestEscClosesPanelAndClearsRows(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle"}})
	deliver(m, eventbus.HistoryLoadedEvent{Term: "kettle", Entries: []domain.PriceEntry{{"price": 10.0}}})
	require.True(t, m.State().ShowPriceHistory)

	m.Update(keyMsg("esc"))
	assert.False(t, m.State().ShowPriceHistory)
	assert.Empty(t, m.State().PriceHistory)
}

func TestSubmitSuccessAppendsAndClearsInput(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle", "lamp"}})

	m.Update(keyMsg("n"))
	require.True(t, m.State().InputFocused)
	m.Update(keyMsg("fan"))
	assert.Equal(t, "fan", m.State().NewSearchText)

	m.Update(keyMsg("enter"))
	require.True(t, m.State().SubmittingTerm)

	deliver(m, eventbus.ScrapeStartedEvent{Term: "fan"})
	assert.True(t, m.showPopup)
	assert.False(t, m.popupIsErr)
	assert.Equal(t, []string{"kettle", "lamp", "fan"}, m.State().SearchTexts)
	assert.Equal(t, "", m.State().NewSearchText)
}

func TestSubmitFailureKeepsInputAndList(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle", "lamp", "fan"}})

	m.Update(keyMsg("n"))
	m.Update(keyMsg("mug"))
	m.Update(keyMsg("enter"))

	deliver(m, eventbus.ScrapeStartedEvent{Term: "mug", Err: errors.New("500")})
	assert.True(t, m.showPopup)
	assert.True(t, m.popupIsErr)
	// The user can retry the same text
	assert.Equal(t, "mug", m.State().NewSearchText)
	assert.Len(t, m.State().SearchTexts, 3)
}

func TestPopupSwallowsKeysUntilDismissed(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle"}})
	deliver(m, eventbus.ScrapeStartedEvent{Term: "fan"})
	require.True(t, m.showPopup)

	// First key only dismisses, it does not move the cursor
	m.Update(keyMsg("j"))
	assert.False(t, m.showPopup)
	assert.Equal(t, 0, m.State().SelectedIndex)
}

func TestEmptySubmitIsAllowed(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle"}})

	m.Update(keyMsg("n"))
	m.Update(keyMsg("enter"))
	assert.True(t, m.State().SubmittingTerm)

	deliver(m, eventbus.ScrapeStartedEvent{Term: ""})
	assert.Equal(t, []string{"kettle", ""}, m.State().SearchTexts)
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m := newTestModel(t)
	deliver(m, eventbus.TermsLoadedEvent{Terms: []string{"kettle", "lamp"}})
	deliver(m, eventbus.HistoryLoadedEvent{Term: "kettle", Entries: []domain.PriceEntry{
		{"date": "2024-01-01", "price": 10.0},
	}})

	out := m.View()
	assert.Contains(t, out, "kettle")
	assert.Contains(t, out, "price history")

	deliver(m, eventbus.ScrapeStartedEvent{Term: "fan"})
	out = m.View()
	assert.Contains(t, out, "Scraper job started")
}
