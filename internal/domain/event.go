package domain

import "time"

// EventType names a view lifecycle or navigation event.
type EventType string

const (
	EventMounted   EventType = "mounted"
	EventLoaded    EventType = "loaded"
	EventFailed    EventType = "failed"
	EventAdvanced  EventType = "advanced"
	EventRetreated EventType = "retreated"
	EventUnmounted EventType = "unmounted"
)

// ViewEvent describes a change on one mounted view.
type ViewEvent struct {
	ViewID     string     `json:"view_id"`
	Component  string     `json:"component"`
	Type       EventType  `json:"type"`
	Index      int        `json:"index"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	Status     LoadStatus `json:"status,omitempty"`
	Error      string     `json:"error,omitempty"`
	At         time.Time  `json:"at"`
}
