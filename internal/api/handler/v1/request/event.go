package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateEventRequest struct {
	SportType        string `json:"sport_type"`
	Date             string `json:"date" format:"YYYY-MM-DD"`
	Time             string `json:"time" format:"HH:MM"`
	Location         string `json:"location"`
	MaxParticipants  int    `json:"max_participants"`
	PerformanceLevel string `json:"performance_level"`
	Equipment        string `json:"equipment"`
	Description      string `json:"description"`
}

func (req *CreateEventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.SportType, validation.Required),
		validation.Field(&req.Date, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&req.Time, validation.Required, validation.Date("15:04")),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.MaxParticipants, validation.Required, validation.Min(2), validation.Max(200)),
		validation.Field(&req.PerformanceLevel, validation.Required),
		validation.Field(&req.Equipment, validation.Required, validation.Length(3, 0)),
		validation.Field(&req.Description, validation.Required, validation.Length(10, 500)),
	)
}

// ListEventsQuery carries the dashboard filter bar as query parameters.
type ListEventsQuery struct {
	Query            string `form:"query"`
	SportType        string `form:"sport_type"`
	PerformanceLevel string `form:"performance_level"`
	Date             string `form:"date"`
	Sort             string `form:"sort"`
}

func (req *ListEventsQuery) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Date, validation.Date("2006-01-02")),
		validation.Field(&req.Sort, validation.In("asc", "desc")),
	)
}

type MyEventsQuery struct {
	View string `form:"view"`
}

func (req *MyEventsQuery) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.View, validation.Required, validation.In("organized", "participating", "history")),
	)
}
