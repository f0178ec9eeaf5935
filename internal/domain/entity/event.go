package entity

import "time"

// Event is a dated club happening such as a competition or a stage.
type Event struct {
	ID          int64     `bson:"_id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Date        time.Time `bson:"date" json:"date"`
	Location    string    `bson:"location" json:"location"`
	ImageURL    *string   `bson:"image_url,omitempty" json:"imageUrl"`
	Type        string    `bson:"type" json:"type"`
}
