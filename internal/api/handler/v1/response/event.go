package response

import "github.com/sportmeet/sportmeet-api/internal/domain"

// UnknownOrganizer stands in when an event has no organizer link.
const UnknownOrganizer = "Organizator necunoscut"

// EventDetailResponse is everything the event detail page renders.
type EventDetailResponse struct {
	Event          domain.Event         `json:"event"`
	Organizer      string               `json:"organizer"`
	Participants   []domain.Participant `json:"participants"`
	Interested     []domain.Interest    `json:"interested"`
	Comments       []domain.Comment     `json:"comments"`
	AvailableSpots int                  `json:"available_spots"`
	IsOrganizer    bool                 `json:"is_organizer"`
	IsParticipant  bool                 `json:"is_participant"`
	IsInterested   bool                 `json:"is_interested"`
}

type ToggleInterestResponse struct {
	Interested bool `json:"interested"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type OptionsResponse struct {
	Sports            []string `json:"sports"`
	Locations         []string `json:"locations"`
	PerformanceLevels []string `json:"performance_levels"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
