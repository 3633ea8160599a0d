package models

import "time"

type Article struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Slug      string    `bson:"slug" json:"slug"`
	Summary   string    `bson:"summary" json:"summary"`
	Body      string    `bson:"body" json:"body"`
	Section   string    `bson:"section" json:"section"`
	Tags      []string  `bson:"tags" json:"tags"`
	AuthorID  string    `bson:"author_id" json:"author_id"`
	CoverURL  string    `bson:"cover_url" json:"cover_url"`
	Published bool      `bson:"published" json:"published"`
	Status    string    `bson:"status" json:"status"`
	Views     int64     `bson:"views" json:"views"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
