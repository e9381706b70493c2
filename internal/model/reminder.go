package model

import "time"

// Reminder care types
const (
	ReminderWatering    = "watering"
	ReminderFertilizing = "fertilizing"
	ReminderRepotting   = "repotting"
	ReminderPruning     = "pruning"
	ReminderOther       = "other"
)

type Reminder struct {
	ID      uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	UserID  string `json:"-"`
	PlantID uint   `gorm:"not null;index" json:"plant_id"`

	Type      string    `gorm:"not null" json:"type"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	Completed bool      `gorm:"default:false" json:"completed"`
	Notes     string    `json:"notes"`
	CreatedAt int64     `gorm:"not null" json:"created_at"`

	Plant Plant `gorm:"foreignKey:PlantID" json:"-"`
}
