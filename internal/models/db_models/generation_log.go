package db_models

// GenerationLog records one itinerary generation for diagnostics. Itineraries
// themselves are never stored.
type GenerationLog struct {
	BaseModel
	TripID     string `gorm:"type:varchar(64);index"`
	TripName   string `gorm:"type:varchar(255)"`
	Provider   string `gorm:"type:varchar(32);not null"`
	Strategy   string `gorm:"type:varchar(32)"` // empty when recovery failed
	Attempts   int    `gorm:"not null"`
	Succeeded  bool   `gorm:"not null"`
	Failure    string `gorm:"type:text"`
	Warnings   string `gorm:"type:text"`
	RawLength  int
	DurationMs int64
}
