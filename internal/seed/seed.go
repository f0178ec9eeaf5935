// Package seed loads the demonstration club data used in development.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

const (
	AdminEmail    = "admin@judoclubsaintpathus.fr"
	AdminPassword = "admin123"
	UserEmail     = "user@example.com"
	UserPassword  = "user123"
)

// Result counts what one run stored. Skipped is set when the store already
// held the fixture accounts.
type Result struct {
	Skipped       bool
	Users         int
	Instructors   int
	Schedules     int
	News          int
	Events        int
	GalleryItems  int
	Registrations int
	Messages      int
}

func str(s string) *string { return &s }

func date(layout, value string) time.Time {
	t, err := time.ParseInLocation(layout, value, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

// Seed stores the fixture data set. It does nothing when the admin account
// already exists, so it is safe to run on every start.
func Seed(ctx context.Context, repos contract.Repositories, hasher contract.IHasher) (*Result, error) {
	if _, err := repos.Users.GetUserByEmail(ctx, AdminEmail); err == nil {
		return &Result{Skipped: true}, nil
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, fmt.Errorf("checking seed state: %w", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	res := &Result{}

	adminHash, err := hasher.HashPassword(AdminPassword)
	if err != nil {
		return nil, err
	}
	userHash, err := hasher.HashPassword(UserPassword)
	if err != nil {
		return nil, err
	}
	dob := date("2006-01-02", "1985-05-15")
	admin := &entity.User{
		Email:        AdminEmail,
		PasswordHash: adminHash,
		FirstName:    "Admin",
		LastName:     "Club",
		Roles:        []entity.UserRole{entity.UserRoleAdmin, entity.UserRoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	member := &entity.User{
		Email:        UserEmail,
		PasswordHash: userHash,
		FirstName:    "Jean",
		LastName:     "Dupont",
		Phone:        str("06 12 34 56 78"),
		Address:      str("123 Rue de la Paix, 77178 Saint Pathus"),
		DateOfBirth:  &dob,
		Roles:        []entity.UserRole{entity.UserRoleUser},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, u := range []*entity.User{admin, member} {
		if err := repos.Users.CreateUser(ctx, u); err != nil {
			return nil, fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
		res.Users++
	}

	pierre := &entity.Instructor{
		Name:     "Pierre Durand",
		Bio:      str("Pratiquant depuis plus de 30 ans, Pierre est diplômé d'État et enseigne le judo avec passion depuis 15 ans."),
		BeltRank: "6e Dan",
		PhotoURL: str("https://images.pexels.com/photos/8611192/pexels-photo-8611192.jpeg"),
	}
	sophie := &entity.Instructor{
		Name:     "Sophie Martin",
		Bio:      str("Spécialisée dans l'enseignement aux enfants, Sophie développe la motricité et les valeurs du judo."),
		BeltRank: "4e Dan",
		PhotoURL: str("https://images.pexels.com/photos/8611230/pexels-photo-8611230.jpeg"),
	}
	for _, i := range []*entity.Instructor{pierre, sophie} {
		if err := repos.Instructors.CreateInstructor(ctx, i); err != nil {
			return nil, fmt.Errorf("seeding instructor %s: %w", i.Name, err)
		}
		res.Instructors++
	}

	kids := &entity.Schedule{
		DayOfWeek:    entity.Monday,
		StartTime:    "17:30",
		EndTime:      "18:30",
		Level:        entity.LevelKids,
		Description:  str("Baby Judo (4-6 ans) - Éveil corporel et initiation aux valeurs du judo"),
		Price:        str("25.00"),
		InstructorID: &sophie.ID,
	}
	adults := &entity.Schedule{
		DayOfWeek:    entity.Friday,
		StartTime:    "19:00",
		EndTime:      "20:30",
		Level:        entity.LevelAdults,
		Description:  str("Adultes débutants - Apprentissage des bases du judo"),
		Price:        str("45.00"),
		InstructorID: &pierre.ID,
	}
	for _, s := range []*entity.Schedule{kids, adults} {
		if err := repos.Schedules.CreateSchedule(ctx, s); err != nil {
			return nil, fmt.Errorf("seeding schedule: %w", err)
		}
		res.Schedules++
	}

	stageDate := date("2006-01-02", "2024-10-15")
	for _, n := range []*entity.News{
		{
			Title:     "Reprise des cours - Septembre 2024",
			Excerpt:   str("Les cours reprennent le lundi 2 septembre pour tous les niveaux. Inscriptions ouvertes !"),
			Content:   "Nous sommes ravis d'annoncer la reprise des cours pour la saison 2024-2025. Les inscriptions sont ouvertes et nous accueillons de nouveaux membres dans toutes les catégories d'âge.",
			Category:  str("Actualités"),
			Important: true,
			Author:    str("Direction du club"),
			ImageURL:  str("https://images.pexels.com/photos/7045754/pexels-photo-7045754.jpeg"),
			Tags:      []string{"rentrée", "inscriptions", "cours"},
			CreatedAt: now,
		},
		{
			Title:     "Stage avec Maître Tanaka",
			Excerpt:   str("Stage exceptionnel avec le maître japonais Hiroshi Tanaka les 15 et 16 octobre."),
			Content:   "Le club organise un stage exceptionnel avec Maître Hiroshi Tanaka, 8e dan, direct du Japon. Ce stage s'adresse à tous les niveaux à partir de ceinture verte.",
			Category:  str("Stages"),
			Important: true,
			Author:    str("Sensei Martin"),
			ImageURL:  str("https://images.pexels.com/photos/7045766/pexels-photo-7045766.jpeg"),
			Tags:      []string{"stage", "maître", "technique"},
			EventDate: &stageDate,
			CreatedAt: now,
		},
	} {
		if err := repos.News.CreateNews(ctx, n); err != nil {
			return nil, fmt.Errorf("seeding news: %w", err)
		}
		res.News++
	}

	if err := repos.Events.CreateEvent(ctx, &entity.Event{
		Title:       "Championnat régional",
		Description: "Championnat régional toutes catégories",
		Date:        date("2006-01-02 15:04:05", "2024-11-03 08:00:00"),
		Location:    "Gymnase Pierre de Coubertin, Meaux",
		Type:        "competition",
		ImageURL:    str("https://images.pexels.com/photos/7045758/pexels-photo-7045758.jpeg"),
	}); err != nil {
		return nil, fmt.Errorf("seeding event: %w", err)
	}
	res.Events++

	for _, g := range []*entity.GalleryItem{
		{
			Title:       "Entraînement enfants",
			Type:        "photo",
			URL:         "https://images.pexels.com/photos/7045754/pexels-photo-7045754.jpeg",
			Description: str("Cours des mini-poussins avec Sensei Sophie"),
			Category:    str("Entraînements"),
			Alt:         str("Enfants pratiquant le judo"),
			Active:      true,
			CreatedAt:   now,
		},
		{
			Title:       "Dojo principal",
			Type:        "photo",
			URL:         "https://images.pexels.com/photos/8611192/pexels-photo-8611192.jpeg",
			Description: str("Notre magnifique dojo de 400m²"),
			Category:    str("Installations"),
			Alt:         str("Dojo de judo"),
			Active:      true,
			CreatedAt:   now,
		},
	} {
		if err := repos.Gallery.CreateGalleryItem(ctx, g); err != nil {
			return nil, fmt.Errorf("seeding gallery item: %w", err)
		}
		res.GalleryItems++
	}

	if err := repos.Registrations.CreateRegistration(ctx, &entity.Registration{
		UserID:     member.ID,
		ScheduleID: adults.ID,
		Status:     entity.RegistrationPending,
		Experience: str("debutant"),
		Newsletter: true,
		CreatedAt:  now,
	}); err != nil {
		return nil, fmt.Errorf("seeding registration: %w", err)
	}
	res.Registrations++

	if err := repos.ContactMessages.CreateContactMessage(ctx, &entity.ContactMessage{
		Name:      "Marie Dubois",
		Email:     "marie.dubois@email.com",
		Phone:     str("06 12 34 56 78"),
		Subject:   "inscription",
		Message:   "Bonjour, je souhaiterais inscrire mon fils de 8 ans au judo. Pourriez-vous me donner plus d'informations sur les horaires et les tarifs ? Merci.",
		Status:    entity.MessageUnread,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("seeding contact message: %w", err)
	}
	res.Messages++

	return res, nil
}
