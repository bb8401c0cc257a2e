package users

import (
	"time"
)

type User struct {
	ID    string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name  string  `json:"name"`
	Email string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Image *string `json:"image,omitempty"`

	Password     *string `gorm:"" json:"-"`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`
	Role         string  `gorm:"not null;default:'user'" json:"role"`

	StreakLength int `gorm:"not null;default:0" json:"streak_length"`

	CreationDate time.Time `gorm:"autoCreateTime" json:"creation_date"`
}
