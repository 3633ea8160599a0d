package models

import "time"

// SiteSettings is a singleton document keyed by a fixed id.
type SiteSettings struct {
	ID              string            `bson:"_id,omitempty" json:"id"`
	SiteTitle       string            `bson:"site_title" json:"site_title"`
	Tagline         string            `bson:"tagline" json:"tagline"`
	TickerEnabled   bool              `bson:"ticker_enabled" json:"ticker_enabled"`
	SportsBannerOn  bool              `bson:"sports_banner_on" json:"sports_banner_on"`
	PlaygroundOn    bool              `bson:"playground_on" json:"playground_on"`
	SocialLinks     map[string]string `bson:"social_links" json:"social_links"`
	FooterText      string            `bson:"footer_text" json:"footer_text"`
	MaintenanceMode bool              `bson:"maintenance_mode" json:"maintenance_mode"`
	MaintenanceNote string            `bson:"maintenance_note" json:"maintenance_note"`
	UpdatedBy       string            `bson:"updated_by" json:"updated_by"`
	UpdatedAt       time.Time         `bson:"updated_at" json:"updated_at"`
}

const SiteSettingsID = "site"
