package models

import "time"

// ResearchItem is a published research highlight: a paper, project, or
// faculty spotlight. PDFURL points at external blob storage.
type ResearchItem struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Abstract    string    `bson:"abstract" json:"abstract"`
	Authors     []string  `bson:"authors" json:"authors"`
	Department  string    `bson:"department" json:"department"`
	PDFURL      string    `bson:"pdf_url" json:"pdf_url"`
	Tags        []string  `bson:"tags" json:"tags"`
	PublishedAt time.Time `bson:"published_at" json:"published_at"`
	Published   bool      `bson:"published" json:"published"`
	Status      string    `bson:"status" json:"status"`
	Views       int64     `bson:"views" json:"views"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
