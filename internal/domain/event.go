package domain

import (
	"sort"
	"strings"
	"time"
)

// Event date and time are kept as the strings users submit, composed
// into a sortable timestamp only when needed.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type Event struct {
	ID               string    `json:"id"`
	SportType        string    `json:"sport_type"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Location         string    `json:"location"`
	MaxParticipants  int       `json:"max_participants"`
	PerformanceLevel string    `json:"performance_level"`
	Equipment        string    `json:"equipment"`
	Description      string    `json:"description"`
	OrganizerEmail   string    `json:"organizer_email"`
	CreatedAt        time.Time `json:"created_at"`
}

// StartsAt parses the composed date and time. The zero time is returned
// for records with malformed date or time fields.
func (e Event) StartsAt() time.Time {
	t, err := time.ParseInLocation(DateLayout+"T"+TimeLayout, e.Date+"T"+e.Time, time.Local)
	if err != nil {
		return time.Time{}
	}

	return t
}

func (e Event) IsPast(now time.Time) bool {
	startsAt := e.StartsAt()
	if startsAt.IsZero() {
		return false
	}

	return startsAt.Before(now)
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// EventFilter mirrors the dashboard filter bar: a free-text query matched
// against the sport type, exact-match facets, and a date/time sort order.
type EventFilter struct {
	Query            string
	SportType        string
	PerformanceLevel string
	Date             string
	Sort             SortOrder
}

// FilterEvents applies the filter as a conjunction over the full list and
// sorts the survivors by composed date+time. The sort is stable so events
// with identical start times keep their input order.
func FilterEvents(events []Event, filter EventFilter) []Event {
	filtered := make([]Event, 0, len(events))

	query := strings.ToLower(filter.Query)
	for _, event := range events {
		if query != "" && !strings.Contains(strings.ToLower(event.SportType), query) {
			continue
		}
		if filter.SportType != "" && event.SportType != filter.SportType {
			continue
		}
		if filter.PerformanceLevel != "" && event.PerformanceLevel != filter.PerformanceLevel {
			continue
		}
		if filter.Date != "" && event.Date != filter.Date {
			continue
		}

		filtered = append(filtered, event)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		a := filtered[i].Date + "T" + filtered[i].Time
		b := filtered[j].Date + "T" + filtered[j].Time
		if filter.Sort == SortDesc {
			return a > b
		}

		return a < b
	})

	return filtered
}
