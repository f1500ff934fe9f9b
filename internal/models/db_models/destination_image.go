package db_models

// DestinationImage is one curated photo row. The URL is unique across the
// whole store; (city, landmark) is not — repeated landmarks get a numeric
// suffix at insert time. Rows are append-only, corrections are new rows.
type DestinationImage struct {
	BaseModel
	City        string `gorm:"index;not null" json:"city"`
	Landmark    string `gorm:"index;not null" json:"landmark"`
	ImageURL    string `gorm:"uniqueIndex;not null" json:"image_url"`
	Source      string `gorm:"not null" json:"source"`
	Quality     int    `gorm:"not null" json:"quality"`
	Description string `json:"description,omitempty"`
}

func (DestinationImage) TableName() string {
	return "destination_images"
}

const (
	SourceManual   = "manual"
	SourceAuto     = "auto"
	SourceUnsplash = "unsplash"
	SourcePexels   = "pexels"
	SourcePixabay  = "pixabay"
)
