package octane

import (
	"time"

	"github.com/fivetwenty-io/octane-zsr/pkg/zsr"
)

// EventSort is a sort field of ListEvents.
type EventSort string

const (
	EventSortName   EventSort = "name"
	EventSortTier   EventSort = "tier"
	EventSortRegion EventSort = "region"
	EventSortMode   EventSort = "mode"
	EventSortGroup  EventSort = "group"
)

// SortKey implements zsr.SortKey.
func (s EventSort) SortKey() string { return string(s) }

// GetEvent fetches one event by id.
type GetEvent struct {
	zsr.BaseEndpoint

	id EventID
}

// NewGetEvent builds a GetEvent descriptor.
func NewGetEvent(id EventID) (*GetEvent, error) {
	err := requireID("GetEvent", string(id))
	if err != nil {
		return nil, err
	}

	return &GetEvent{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *GetEvent) Path() string {
	return "/events/" + escapeID(string(e.id))
}

// EventMatches lists the matches of an event.
type EventMatches struct {
	zsr.BaseEndpoint

	id EventID
}

// NewEventMatches builds an EventMatches descriptor.
func NewEventMatches(id EventID) (*EventMatches, error) {
	err := requireID("EventMatches", string(id))
	if err != nil {
		return nil, err
	}

	return &EventMatches{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *EventMatches) Path() string {
	return "/events/" + escapeID(string(e.id)) + "/matches"
}

// EventParticipants lists the teams and players taking part in an event.
type EventParticipants struct {
	zsr.BaseEndpoint

	id EventID
}

// NewEventParticipants builds an EventParticipants descriptor.
func NewEventParticipants(id EventID) (*EventParticipants, error) {
	err := requireID("EventParticipants", string(id))
	if err != nil {
		return nil, err
	}

	return &EventParticipants{id: id}, nil
}

// Path implements zsr.Endpoint.
func (e *EventParticipants) Path() string {
	return "/events/" + escapeID(string(e.id)) + "/participants"
}

type listEventsParams struct {
	Filters

	Sort *zsr.Sort[EventSort] `url:"sort,omitempty"`
}

// ListEvents lists events. It is paginated.
type ListEvents struct {
	zsr.BaseEndpoint
	zsr.Paged

	params listEventsParams
}

// Path implements zsr.Endpoint.
func (e *ListEvents) Path() string {
	return "/events"
}

// QueryParameters implements zsr.Endpoint.
func (e *ListEvents) QueryParameters() (*zsr.QueryParams, error) {
	return zsr.ParamsFrom(e.params)
}

// ListEventsBuilder configures a ListEvents descriptor. Every field starts
// absent.
type ListEventsBuilder struct {
	params listEventsParams
}

// NewListEvents starts a ListEvents builder.
func NewListEvents() *ListEventsBuilder {
	return &ListEventsBuilder{}
}

// Sort orders the events by one field.
func (b *ListEventsBuilder) Sort(key EventSort, direction zsr.Direction) *ListEventsBuilder {
	b.params.Sort = zsr.SortBy(key, direction)

	return b
}

// Build validates the builder and returns the descriptor.
func (b *ListEventsBuilder) Build() (*ListEvents, error) {
	err := checkParams("ListEvents", b.params)
	if err != nil {
		return nil, err
	}

	return &ListEvents{params: b.params}, nil
}

// Name filters by name.
func (b *ListEventsBuilder) Name(name string) *ListEventsBuilder {
	b.params.Name = &name

	return b
}

// Tier filters by event tier.
func (b *ListEventsBuilder) Tier(tier Tier) *ListEventsBuilder {
	b.params.Tier = &tier

	return b
}

// Region filters by event region.
func (b *ListEventsBuilder) Region(region Region) *ListEventsBuilder {
	b.params.Region = &region

	return b
}

// Mode filters by team size.
func (b *ListEventsBuilder) Mode(mode Mode) *ListEventsBuilder {
	b.params.Mode = &mode

	return b
}

// Group filters by event group.
func (b *ListEventsBuilder) Group(group string) *ListEventsBuilder {
	b.params.Group = &group

	return b
}

// Before keeps results dated before t.
func (b *ListEventsBuilder) Before(t time.Time) *ListEventsBuilder {
	b.params.Before = utc(t)

	return b
}

// After keeps results dated after t.
func (b *ListEventsBuilder) After(t time.Time) *ListEventsBuilder {
	b.params.After = utc(t)

	return b
}

// Date keeps results dated on t.
func (b *ListEventsBuilder) Date(t time.Time) *ListEventsBuilder {
	b.params.Date = utc(t)

	return b
}
