package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventEntryDiscovered EventType = "EntryDiscovered"
	EventError           EventType = "Error"
	EventScanStarted     EventType = "ScanStarted"
	EventScanCompleted   EventType = "ScanCompleted"
	EventScanRequested   EventType = "ScanRequested"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventPageChanged     EventType = "PageChanged"
	EventMetadataLoaded  EventType = "MetadataLoaded"
	EventSessionSaved    EventType = "SessionSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// EntryDiscoveredEvent is emitted for every entry found, in collection order
type EntryDiscoveredEvent struct {
	Entry Entry
}

func (e EntryDiscoveredEvent) Type() EventType { return EventEntryDiscovered }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ScanStartedEvent is emitted when scanning begins
type ScanStartedEvent struct {
	Paths []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when scanning completes
type ScanCompletedEvent struct {
	Found int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent is emitted to request a new scan
type ScanRequestedEvent struct {
	Paths []string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// PageChangedEvent is emitted when the visible page moves
type PageChangedEvent struct {
	Level     int
	Levels    int
	Index     int // entry in the first real cell, -1 when none
	FlyLeaves int
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// MetadataLoadedEvent is emitted when the prefetcher decodes an entry
type MetadataLoadedEvent struct {
	Key      string
	Metadata Metadata
}

func (e MetadataLoadedEvent) Type() EventType { return EventMetadataLoaded }

// SessionSavedEvent is emitted after the session file is written
type SessionSavedEvent struct {
	Path string
}

func (e SessionSavedEvent) Type() EventType { return EventSessionSaved }
