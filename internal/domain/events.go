package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTermsRequested   EventType = "TermsRequested"
	EventTermsLoaded      EventType = "TermsLoaded"
	EventHistoryRequested EventType = "HistoryRequested"
	EventHistoryLoaded    EventType = "HistoryLoaded"
	EventScrapeRequested  EventType = "ScrapeRequested"
	EventScrapeStarted    EventType = "ScrapeStarted"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TermsRequestedEvent asks the backend service for the list of known search terms
type TermsRequestedEvent struct{}

func (e TermsRequestedEvent) Type() EventType { return EventTermsRequested }

// TermsLoadedEvent carries the result of a search-term list fetch
type TermsLoadedEvent struct {
	Terms []string
	Err   error
}

func (e TermsLoadedEvent) Type() EventType { return EventTermsLoaded }

// HistoryRequestedEvent asks the backend service for the price history of a term
type HistoryRequestedEvent struct {
	Term string
}

func (e HistoryRequestedEvent) Type() EventType { return EventHistoryRequested }

// HistoryLoadedEvent carries the result of a price-history fetch
type HistoryLoadedEvent struct {
	Term    string
	Entries []PriceEntry
	Err     error
}

func (e HistoryLoadedEvent) Type() EventType { return EventHistoryLoaded }

// ScrapeRequestedEvent asks the backend service to start a scraper job for a term
type ScrapeRequestedEvent struct {
	Term string
}

func (e ScrapeRequestedEvent) Type() EventType { return EventScrapeRequested }

// ScrapeStartedEvent carries the result of a scraper job submission
type ScrapeStartedEvent struct {
	Term string
	Err  error
}

func (e ScrapeStartedEvent) Type() EventType { return EventScrapeStarted }

// ErrorEvent is emitted when a backend call fails
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
