package mongodb

import (
	"github.com/judoclub/clubsite/internal/domain/contract"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositories wires every MongoDB repository onto db.
func NewRepositories(db *mongo.Database) contract.Repositories {
	seq := NewSequence(db)
	return contract.Repositories{
		Users:           NewMongoUserRepository(db.Collection("users"), seq),
		Instructors:     NewInstructorRepository(db, seq),
		Schedules:       NewScheduleRepository(db, seq),
		News:            NewNewsRepository(db, seq),
		Events:          NewEventRepository(db, seq),
		Gallery:         NewGalleryRepository(db, seq),
		Registrations:   NewRegistrationRepository(db, seq),
		ContactMessages: NewContactMessageRepository(db, seq),
	}
}
