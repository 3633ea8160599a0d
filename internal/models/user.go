package models

import "time"

const (
	RoleReader = "reader"
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

type UserProfile struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	DisplayName string    `bson:"display_name" json:"display_name"`
	Email       string    `bson:"email" json:"email"`
	AvatarURL   string    `bson:"avatar_url" json:"avatar_url"`
	Role        string    `bson:"role" json:"role"`
	Bio         string    `bson:"bio" json:"bio"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CanEdit reports whether the profile may mutate content.
func (u *UserProfile) CanEdit() bool {
	return u.Role == RoleEditor || u.Role == RoleAdmin
}
