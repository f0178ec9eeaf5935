package entity

// Instructor is a coach referenced by schedules.
type Instructor struct {
	ID       int64   `bson:"_id" json:"id"`
	Name     string  `bson:"name" json:"name"`
	Bio      *string `bson:"bio,omitempty" json:"bio"`
	BeltRank string  `bson:"belt_rank" json:"beltRank"`
	PhotoURL *string `bson:"photo_url,omitempty" json:"photoUrl"`
}
