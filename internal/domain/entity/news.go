package entity

import "time"

// News is an article published on the club site. News carrying an EventDate
// announce something that takes place at that date.
type News struct {
	ID        int64      `bson:"_id" json:"id"`
	Title     string     `bson:"title" json:"title"`
	Content   string     `bson:"content" json:"content"`
	Excerpt   *string    `bson:"excerpt,omitempty" json:"excerpt"`
	ImageURL  *string    `bson:"image_url,omitempty" json:"imageUrl"`
	Category  *string    `bson:"category,omitempty" json:"category"`
	Important bool       `bson:"important" json:"important"`
	Author    *string    `bson:"author,omitempty" json:"author"`
	Tags      []string   `bson:"tags" json:"tags"`
	EventDate *time.Time `bson:"event_date,omitempty" json:"eventDate"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
}
