package entity

import "time"

// GalleryItem is a photo or video shown in the gallery. Inactive items are
// only visible to administrators.
type GalleryItem struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Type        string    `bson:"type" json:"type"`
	URL         string    `bson:"url" json:"url"`
	Description *string   `bson:"description,omitempty" json:"description"`
	Category    *string   `bson:"category,omitempty" json:"category"`
	Alt         *string   `bson:"alt,omitempty" json:"alt"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
