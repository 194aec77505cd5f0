package backend

import (
	"context"
	"log"

	"pricewatch/internal/eventbus"
)

// Service bridges the event bus and the backend client. Each request event
// is served by its own goroutine with no queueing, fencing or cancellation,
// so when two fetches for the same panel are in flight the one that
// completes last wins.
type Service struct {
	bus    eventbus.EventBus
	client *Client
}

// NewService creates a backend service and subscribes it to request events
func NewService(bus eventbus.EventBus, client *Client) *Service {
	s := &Service{
		bus:    bus,
		client: client,
	}

	// Subscribe to search-term list requests
	bus.Subscribe(eventbus.EventTermsRequested, func(e eventbus.DomainEvent) {
		if _, ok := e.(eventbus.TermsRequestedEvent); ok {
			go s.loadTerms()
		}
	})

	// Subscribe to price-history requests
	bus.Subscribe(eventbus.EventHistoryRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.HistoryRequestedEvent); ok {
			go s.loadHistory(event.Term)
		}
	})

	// Subscribe to scraper job requests
	bus.Subscribe(eventbus.EventScrapeRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScrapeRequestedEvent); ok {
			go s.startScrape(event.Term)
		}
	})

	return s
}

func (s *Service) loadTerms() {
	terms, err := s.client.ListSearchTexts(context.Background())
	if err != nil {
		log.Printf("BackendService: loading search terms failed: %v", err)
		s.bus.Publish(eventbus.ErrorEvent{Message: "loading search terms failed", Err: err})
	}
	s.bus.Publish(eventbus.TermsLoadedEvent{Terms: terms, Err: err})
}

func (s *Service) loadHistory(term string) {
	entries, err := s.client.FetchResults(context.Background(), term)
	if err != nil {
		log.Printf("BackendService: loading price history for %q failed: %v", term, err)
		s.bus.Publish(eventbus.ErrorEvent{Message: "loading price history failed", Err: err})
	}
	s.bus.Publish(eventbus.HistoryLoadedEvent{Term: term, Entries: entries, Err: err})
}

func (s *Service) startScrape(term string) {
	err := s.client.StartScraper(context.Background(), term)
	if err != nil {
		log.Printf("BackendService: starting scraper for %q failed: %v", term, err)
		s.bus.Publish(eventbus.ErrorEvent{Message: "starting scraper failed", Err: err})
	}
	s.bus.Publish(eventbus.ScrapeStartedEvent{Term: term, Err: err})
}
