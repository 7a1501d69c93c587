// Package queue defines message payloads exchanged over the message broker
// and the consumer that records them.
package queue

// SuggestionQueueName is the durable queue seat suggestions are published to.
const SuggestionQueueName = "seats.suggested"

// SeatsSuggestedEvent is published whenever seats are suggested for a show.
// It carries enough context for analytics consumers to work without
// querying the primary database.
type SeatsSuggestedEvent struct {
	EventID         string   `json:"event_id"`
	ShowID          uint64   `json:"show_id"`
	HallID          uint64   `json:"hall_id"`
	HallName        string   `json:"hall_name"`
	MovieTitle      string   `json:"movie_title"`
	GroupSize       int      `json:"group_size"`
	Preference      string   `json:"preference"`
	SeatLabels      []string `json:"seats"`
	Contiguous      bool     `json:"contiguous"`
	Score           int      `json:"score"`
	TotalPriceCents uint32   `json:"total_price_cents"`
	SuggestedAt     string   `json:"suggested_at"` // RFC 3339, UTC
}
