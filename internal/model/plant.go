package model

// Sunlight levels a plant can be registered with
const (
	SunlightLow    = "low"
	SunlightMedium = "medium"
	SunlightHigh   = "high"
)

type Plant struct {
	ID     uint   `gorm:"primaryKey;autoIncrement;index" json:"id"`
	UserID string `json:"-"`

	Name     string `gorm:"not null" json:"name"`
	Species  string `json:"species"`
	Location string `json:"location"`
	// Free text, e.g. "every 3 days". Kept as the user typed it
	WaterFrequency string `json:"waterFrequency"`
	Sunlight       string `json:"sunlight"`
	Notes          string `json:"notes"`
	// Bare filename under the upload store, served via /api/uploads/:filename.
	// Null when the plant has no photo
	Image *string `json:"image"`
	// Unix second timestamps
	LastWatered int64 `json:"last_watered"`
	CreatedAt   int64 `gorm:"not null" json:"created_at"`
}
