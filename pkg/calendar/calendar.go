/*
calendar implements a placeholder calendar, which reads events from a local
YAML file rather than a calendar service.
*/
package calendar

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	// Packages
	tinyagent "github.com/mutablelogic/go-tinyagent"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Calendar reads events from a file each time they are requested
type Calendar struct {
	path string
	loc  *time.Location
	now  func() time.Time
}

// Event is a calendar entry. An event without an end time lasts one hour,
// and an all-day event lasts until midnight.
type Event struct {
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	AllDay   bool      `json:"all_day,omitempty"`
	Location string    `json:"location,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

// Opt is an option for a calendar
type Opt func(*Calendar) error

type file struct {
	Events []struct {
		Title    string `yaml:"title"`
		Start    string `yaml:"start"`
		End      string `yaml:"end"`
		Location string `yaml:"location"`
		Notes    string `yaml:"notes"`
	} `yaml:"events"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultDuration = time.Hour
)

var timeFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	time.DateTime,
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New returns a calendar which reads events from a YAML file. The file does
// not need to exist.
func New(path string, opts ...Opt) (*Calendar, error) {
	if path = strings.TrimSpace(path); path == "" {
		return nil, tinyagent.ErrBadParameter.With("missing calendar path")
	}
	self := &Calendar{
		path: path,
		loc:  time.Local,
		now:  time.Now,
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}
	return self, nil
}

// WithLocation sets the time zone for times without an offset
func WithLocation(loc *time.Location) Opt {
	return func(c *Calendar) error {
		if loc == nil {
			return tinyagent.ErrBadParameter.With("missing location")
		}
		c.loc = loc
		return nil
	}
}

// WithClock sets the function which returns the current time
func WithClock(now func() time.Time) Opt {
	return func(c *Calendar) error {
		if now == nil {
			return tinyagent.ErrBadParameter.With("missing clock")
		}
		c.now = now
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Today returns midnight at the start of the current day
func (c *Calendar) Today() time.Time {
	now := c.now().In(c.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
}

// ParseDate parses a YYYY-MM-DD date in the calendar time zone
func (c *Calendar) ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, value, c.loc)
	if err != nil {
		return time.Time{}, tinyagent.ErrBadParameter.Withf("date must be YYYY-MM-DD: %q", value)
	}
	return t, nil
}

// Events returns the events which overlap [from, to), sorted by start time
func (c *Calendar) Events(from, to time.Time) ([]Event, error) {
	if !to.After(from) {
		return nil, tinyagent.ErrBadParameter.With("end of range must be after start")
	}
	events, err := c.read()
	if err != nil {
		return nil, err
	}
	result := make([]Event, 0, len(events))
	for _, event := range events {
		if event.Start.Before(to) && event.End.After(from) {
			result = append(result, event)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Before(result[j].Start)
	})
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// read all events from the file
func (c *Calendar) read() ([]Event, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, tinyagent.ErrInternalServerError.Withf("read: %v", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, tinyagent.ErrInternalServerError.Withf("%s: %v", c.path, err)
	}

	result := make([]Event, 0, len(f.Events))
	for i, e := range f.Events {
		event := Event{
			Title:    strings.TrimSpace(e.Title),
			Location: e.Location,
			Notes:    e.Notes,
		}
		start, allday, err := c.parseTime(e.Start)
		if err != nil {
			return nil, tinyagent.ErrInternalServerError.Withf("event %d: start: %v", i, err)
		}
		event.Start, event.AllDay = start, allday
		switch {
		case e.End != "":
			end, _, err := c.parseTime(e.End)
			if err != nil {
				return nil, tinyagent.ErrInternalServerError.Withf("event %d: end: %v", i, err)
			}
			event.End = end
		case allday:
			event.End = start.AddDate(0, 0, 1)
		default:
			event.End = start.Add(DefaultDuration)
		}
		if event.End.Before(event.Start) {
			return nil, tinyagent.ErrInternalServerError.Withf("event %d: ends before it starts", i)
		}
		result = append(result, event)
	}
	return result, nil
}

// parseTime parses a time, or a date which is returned as an all-day time
func (c *Calendar) parseTime(value string) (time.Time, bool, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation(time.DateOnly, value, c.loc); err == nil {
		return t, true, nil
	}
	for _, format := range timeFormats {
		if t, err := time.ParseInLocation(format, value, c.loc); err == nil {
			return t, false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("unrecognised time %q", value)
}
