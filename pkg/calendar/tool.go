package calendar

import (
	"context"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	tool "github.com/mutablelogic/go-tinyagent/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// EventsRequest defines the input for listing events
type EventsRequest struct {
	Date string `json:"date,omitempty" jsonschema:"The first day to list events for (YYYY-MM-DD), defaults to today"`
	Days int    `json:"days,omitempty" jsonschema:"The number of days to list events for, defaults to 1"`
}

// EventsResponse is the list of events in a date range
type EventsResponse struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Events []Event `json:"events"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	maxDays = 31
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the calendar tools for a file of events
func NewTools(path string, opts ...Opt) ([]tool.Tool, error) {
	c, err := New(path, opts...)
	if err != nil {
		return nil, err
	}
	return c.Tools()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns the tools which wrap the calendar
func (c *Calendar) Tools() ([]tool.Tool, error) {
	events, err := tool.New("get_events", "Get calendar events for one or more days, starting today or on a given date", c.getEvents, tool.WithRange("days", 1, maxDays))
	if err != nil {
		return nil, err
	}
	return []tool.Tool{events}, nil
}

// Validate checks the date and number of days
func (r *EventsRequest) Validate() error {
	if r.Days < 0 || r.Days > maxDays {
		return tinyagent.ErrBadParameter.Withf("days must be between 1 and %d", maxDays)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (c *Calendar) getEvents(_ context.Context, req EventsRequest) (*EventsResponse, error) {
	from := c.Today()
	if req.Date != "" {
		date, err := c.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		from = date
	}
	days := req.Days
	if days == 0 {
		days = 1
	}
	to := from.AddDate(0, 0, days)

	events, err := c.Events(from, to)
	if err != nil {
		return nil, err
	}
	return &EventsResponse{
		From:   from.Format("2006-01-02"),
		To:     to.AddDate(0, 0, -1).Format("2006-01-02"),
		Events: events,
	}, nil
}
