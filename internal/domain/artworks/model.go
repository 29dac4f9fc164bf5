package artworks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Artwork is a single gallery piece. The image itself lives in object
// storage; the row only carries its public URL.
type Artwork struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	ImageURL    string    `gorm:"column:image_url;not null" json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *Artwork) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
