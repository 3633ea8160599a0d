package models

import "time"

type Video struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	VideoURL        string    `bson:"video_url" json:"video_url"`
	ThumbnailURL    string    `bson:"thumbnail_url" json:"thumbnail_url"`
	DurationSeconds int       `bson:"duration_seconds" json:"duration_seconds"`
	Section         string    `bson:"section" json:"section"`
	Tags            []string  `bson:"tags" json:"tags"`
	AuthorID        string    `bson:"author_id" json:"author_id"`
	Published       bool      `bson:"published" json:"published"`
	Status          string    `bson:"status" json:"status"`
	Views           int64     `bson:"views" json:"views"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
