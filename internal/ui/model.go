package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pricewatch/internal/config"
	"pricewatch/internal/eventbus"
	"pricewatch/internal/ui/state"
	"pricewatch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width  int
	height int

	input   textinput.Model
	spinner spinner.Model

	// Blocking modal shown after a scraper job submission
	showPopup    bool
	popupMessage string
	popupIsErr   bool

	statusSeq int // invalidates stale statusClearMsg timers

	renderer *views.Renderer
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.Placeholder = "product to track..."
	ti.CharLimit = 120
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	return &Model{
		bus:      bus,
		config:   cfg,
		state:    state.NewAppState(),
		input:    ti,
		spinner:  sp,
		renderer: views.NewRenderer(),
	}
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init requests the initial search-term list
func (m *Model) Init() tea.Cmd {
	m.state.LoadingTerms = true
	m.bus.Publish(eventbus.TermsRequestedEvent{})
	return m.spinner.Tick
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		// A visible popup swallows every key; dismissing it is the only action
		if m.showPopup {
			m.showPopup = false
			m.popupMessage = ""
			return m, nil
		}
		if m.state.InputFocused {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)

	case spinner.TickMsg:
		if m.state.LoadingTerms || m.state.FetchingTerm || m.state.SubmittingTerm {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.state.StatusMessage = ""
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// handleListKey processes keys while the term list has focus
func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc":
		if m.state.ShowPriceHistory {
			m.state.ClosePriceHistory()
		}
		return m, nil

	case "up", "k":
		m.state.MoveSelection(-1)
		return m, nil

	case "down", "j":
		m.state.MoveSelection(1)
		return m, nil

	case "enter":
		// Open (or refresh) the price history panel for the term under
		// the cursor. The panel only opens once the fetch succeeds.
		if term, ok := m.state.SelectedTerm(); ok {
			m.state.FetchingTerm = true
			m.bus.Publish(eventbus.HistoryRequestedEvent{Term: term})
			return m, m.spinner.Tick
		}
		return m, nil

	case "r":
		m.state.LoadingTerms = true
		m.bus.Publish(eventbus.TermsRequestedEvent{})
		return m, m.spinner.Tick

	case "n", "/":
		m.state.InputFocused = true
		m.input.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// handleInputKey processes keys while the new-search-text input has focus
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.state.InputFocused = false
		m.input.Blur()
		return m, nil

	case "enter":
		// Form submit: the value is sent as-is, empty included
		m.state.SubmittingTerm = true
		m.bus.Publish(eventbus.ScrapeRequestedEvent{Term: m.state.NewSearchText})
		return m, m.spinner.Tick
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.SetNewSearchText(m.input.Value())
	return m, cmd
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.TermsLoadedEvent:
		m.state.LoadingTerms = false
		if e.Err != nil {
			// Silent to the user; the list keeps its previous value
			log.Printf("UI: search term load failed: %v", e.Err)
			return m, nil
		}
		m.state.ReplaceSearchTexts(e.Terms)
		return m, nil

	case eventbus.HistoryLoadedEvent:
		m.state.FetchingTerm = false
		if e.Err != nil {
			// The panel neither opens nor closes on failure
			log.Printf("UI: price history fetch for %q failed: %v", e.Term, e.Err)
			return m, nil
		}
		// Whichever response lands last wins; no fencing by term
		m.state.OpenPriceHistory(e.Term, e.Entries)
		return m, nil

	case eventbus.ScrapeStartedEvent:
		m.state.SubmittingTerm = false
		if e.Err != nil {
			m.showPopup = true
			m.popupIsErr = true
			m.popupMessage = fmt.Sprintf("Could not start scraper job for %q.\nThe search text was kept - try again.", e.Term)
			return m, nil
		}
		m.showPopup = true
		m.popupIsErr = false
		m.popupMessage = fmt.Sprintf("Scraper job started for %q.", e.Term)
		// Optimistic append of the submitted value, then reset the form
		m.state.AppendSearchText(e.Term)
		m.state.ClearNewSearchText()
		m.input.SetValue("")
		m.state.InputFocused = false
		m.input.Blur()
		return m, m.setStatus(fmt.Sprintf("tracking %q", e.Term))

	case eventbus.ErrorEvent:
		// Already logged at the call site; nothing user-visible here
		return m, nil
	}

	return m, nil
}

// setStatus shows a transient status bar message
func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.StatusMessage = msg
	m.statusSeq++
	seq := m.statusSeq
	timeout := m.config.UISettings.StatusTimeout
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return tea.Tick(timeout, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

// updateViewportHeight recomputes how many list rows fit on screen
func (m *Model) updateViewportHeight() {
	// Title, input, status, help and padding take a fixed slice; the
	// history panel floats below the list and is not subtracted.
	h := m.height - 10
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(views.ViewState{
		Width:            m.width,
		Height:           m.height,
		SearchTexts:      m.state.SearchTexts,
		SelectedIndex:    m.state.SelectedIndex,
		ViewportOffset:   m.state.ViewportOffset,
		ViewportHeight:   m.state.ViewportHeight,
		ShowPriceHistory: m.state.ShowPriceHistory,
		PriceHistory:     m.state.PriceHistory,
		HistoryTerm:      m.state.HistoryTerm,
		InputView:        m.input.View(),
		InputFocused:     m.state.InputFocused,
		LoadingTerms:     m.state.LoadingTerms,
		FetchingTerm:     m.state.FetchingTerm,
		SubmittingTerm:   m.state.SubmittingTerm,
		SpinnerView:      m.spinner.View(),
		StatusMessage:    m.state.StatusMessage,
		ShowHelpBar:      m.config.UISettings.ShowHelpBar,
		ShowPopup:        m.showPopup,
		PopupMessage:     m.popupMessage,
		PopupIsErr:       m.popupIsErr,
	})
}
