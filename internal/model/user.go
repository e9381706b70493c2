// Package model defines database models
package model

type User struct {
	ID           string  `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Email        string  `gorm:"unique;not null" json:"email"`
	PasswordHash string  `gorm:"not null" json:"-"`
	Avatar       *string `json:"avatar"`
	CreatedAt    int64   `gorm:"not null" json:"created_at"`

	Plants    []Plant    `gorm:"foreignKey:UserID" json:"-"`
	Reminders []Reminder `gorm:"foreignKey:UserID" json:"-"`
}
