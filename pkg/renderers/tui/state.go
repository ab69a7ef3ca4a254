package tui

import (
	"sync"

	"github.com/goliatone/go-forminput/pkg/input"
)

// EventKind names a field interaction.
type EventKind string

const (
	EventFocus  EventKind = "focus"
	EventChange EventKind = "change"
	EventBlur   EventKind = "blur"
)

// Event is one normalized interaction recorded during a prompt.
type Event struct {
	Kind    EventKind `json:"kind"`
	FieldID string    `json:"fieldId"`
	Value   any       `json:"value"`
}

// Session records the normalized events of one prompt and the latest change
// value.
type Session struct {
	mu      sync.Mutex
	fieldID string
	events  []Event
	value   any
	changed bool
}

// NewSession starts a session for fieldID seeded with its current value.
func NewSession(fieldID string, current any) *Session {
	return &Session{fieldID: fieldID, value: current}
}

// Events returns a copy of the recorded events in order.
func (s *Session) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event(nil), s.events...)
}

// Change returns the canonical change record. Changed is false when no change
// event was observed, in which case the value is the seeded one.
func (s *Session) Change() (input.CanonicalChangeEvent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return input.CanonicalChangeEvent{FieldID: s.fieldID, Value: s.value}, s.changed
}

// Handlers returns callbacks that record into the session and then forward to
// next.
func (s *Session) Handlers(next input.Handlers) input.Handlers {
	return input.Handlers{
		OnChange: func(value any) {
			s.mu.Lock()
			s.value = value
			s.changed = true
			s.events = append(s.events, Event{Kind: EventChange, FieldID: s.fieldID, Value: value})
			s.mu.Unlock()
			if next.OnChange != nil {
				next.OnChange(value)
			}
		},
		OnFocus: func(fieldID string, value any) {
			s.append(EventFocus, fieldID, value)
			if next.OnFocus != nil {
				next.OnFocus(fieldID, value)
			}
		},
		OnBlur: func(fieldID string, value any) {
			s.append(EventBlur, fieldID, value)
			if next.OnBlur != nil {
				next.OnBlur(fieldID, value)
			}
		},
	}
}

func (s *Session) append(kind EventKind, fieldID string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{Kind: kind, FieldID: fieldID, Value: value})
}
