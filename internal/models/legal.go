package models

import "time"

// LegalPost is a legal-commentary column entry.
type LegalPost struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Body       string    `bson:"body" json:"body"`
	CaseRef    string    `bson:"case_ref" json:"case_ref"`
	Columnist  string    `bson:"columnist" json:"columnist"`
	Tags       []string  `bson:"tags" json:"tags"`
	Disclaimer string    `bson:"disclaimer" json:"disclaimer"`
	Published  bool      `bson:"published" json:"published"`
	Status     string    `bson:"status" json:"status"`
	Views      int64     `bson:"views" json:"views"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
