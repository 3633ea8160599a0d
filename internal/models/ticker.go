package models

import "time"

const (
	TickerKindNews   = "news"
	TickerKindSports = "sports"
)

// Ticker is one entry in the scrolling news ticker or the live sports
// banner. Active entries are the ones inside their display window.
type Ticker struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Kind      string    `bson:"kind" json:"kind"`
	Message   string    `bson:"message" json:"message"`
	LinkURL   string    `bson:"link_url" json:"link_url"`
	Priority  int       `bson:"priority" json:"priority"`
	StartsAt  time.Time `bson:"starts_at" json:"starts_at"`
	EndsAt    time.Time `bson:"ends_at" json:"ends_at"`
	Status    string    `bson:"status" json:"status"`
	CreatedBy string    `bson:"created_by" json:"created_by"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ActiveAt reports whether the entry should display at the given time.
func (t *Ticker) ActiveAt(now time.Time) bool {
	if t.Status == "deleted" {
		return false
	}
	if now.Before(t.StartsAt) {
		return false
	}
	return t.EndsAt.IsZero() || now.Before(t.EndsAt)
}
