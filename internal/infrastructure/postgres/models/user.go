package models

import "time"

// UserModel shadows the identity platform's account table; this
// service only reads it.
type UserModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	Email     string `gorm:"uniqueIndex"`
	Name      string
	CreatedAt time.Time
}
