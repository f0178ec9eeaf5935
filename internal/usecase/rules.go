package usecase

import (
	"strings"

	"github.com/judoclub/clubsite/internal/domain/entity"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

type rule = usecasecontract.FieldRule

func choices[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return "oneof=" + strings.Join(parts, " ")
}

var (
	dayChoices                = choices(entity.Weekdays)
	levelChoices              = choices(entity.ClassLevels)
	registrationStatusChoices = choices(entity.RegistrationStatuses)
	messageStatusChoices      = choices(entity.MessageStatuses)
)

func userRules(u *entity.User) []rule {
	return []rule{
		{Field: "email", Value: u.Email, Tags: "notblank,email,max=180"},
		{Field: "firstName", Value: u.FirstName, Tags: "notblank,max=100"},
		{Field: "lastName", Value: u.LastName, Tags: "notblank,max=100"},
		{Field: "phone", Value: u.Phone, Tags: "max=20"},
		{Field: "address", Value: u.Address, Tags: "max=255"},
	}
}

func instructorRules(i *entity.Instructor) []rule {
	return []rule{
		{Field: "name", Value: i.Name, Tags: "notblank,max=255"},
		{Field: "bio", Value: i.Bio, Tags: "max=1000"},
		{Field: "beltRank", Value: i.BeltRank, Tags: "notblank,max=50"},
		{Field: "photoUrl", Value: i.PhotoURL, Tags: "url,max=500"},
	}
}

func scheduleRules(s *entity.Schedule) []rule {
	return []rule{
		{Field: "dayOfWeek", Value: string(s.DayOfWeek), Tags: "notblank," + dayChoices},
		{Field: "startTime", Value: present(s.StartTime), Tags: "notnull,timeofday"},
		{Field: "endTime", Value: present(s.EndTime), Tags: "notnull,timeofday"},
		{Field: "level", Value: string(s.Level), Tags: "notblank," + levelChoices},
		{Field: "description", Value: s.Description, Tags: "max=255"},
		{Field: "price", Value: s.Price, Tags: "numeric,positiveorzero"},
	}
}

func newsRules(n *entity.News) []rule {
	return []rule{
		{Field: "title", Value: n.Title, Tags: "notblank,max=255"},
		{Field: "content", Value: n.Content, Tags: "notblank"},
		{Field: "imageUrl", Value: n.ImageURL, Tags: "url,max=500"},
		{Field: "category", Value: n.Category, Tags: "max=100"},
		{Field: "excerpt", Value: n.Excerpt, Tags: "max=500"},
		{Field: "author", Value: n.Author, Tags: "max=100"},
	}
}

func eventRules(e *entity.Event) []rule {
	var date interface{}
	if !e.Date.IsZero() {
		date = e.Date
	}
	return []rule{
		{Field: "title", Value: e.Title, Tags: "notblank,max=255"},
		{Field: "description", Value: e.Description, Tags: "notblank"},
		{Field: "date", Value: date, Tags: "notnull"},
		{Field: "location", Value: e.Location, Tags: "notblank,max=255"},
		{Field: "imageUrl", Value: e.ImageURL, Tags: "url,max=500"},
		{Field: "type", Value: e.Type, Tags: "notblank,max=50"},
	}
}

func galleryItemRules(g *entity.GalleryItem) []rule {
	return []rule{
		{Field: "title", Value: g.Title, Tags: "notblank,max=255"},
		{Field: "type", Value: g.Type, Tags: "notblank,max=50"},
		{Field: "url", Value: g.URL, Tags: "notblank,url,max=500"},
		{Field: "description", Value: g.Description, Tags: "max=1000"},
		{Field: "category", Value: g.Category, Tags: "max=100"},
		{Field: "alt", Value: g.Alt, Tags: "max=255"},
	}
}

func registrationRules(r *entity.Registration) []rule {
	var scheduleID interface{}
	if r.ScheduleID != 0 {
		scheduleID = r.ScheduleID
	}
	return []rule{
		{Field: "scheduleId", Value: scheduleID, Tags: "notnull"},
		{Field: "status", Value: string(r.Status), Tags: registrationStatusChoices},
		{Field: "medicalCertificateFile", Value: r.MedicalCertificateFile, Tags: "max=500"},
		{Field: "notes", Value: r.Notes, Tags: "max=1000"},
		{Field: "experience", Value: r.Experience, Tags: "max=100"},
	}
}

func contactMessageRules(m *entity.ContactMessage) []rule {
	return []rule{
		{Field: "name", Value: m.Name, Tags: "notblank,max=255"},
		{Field: "email", Value: m.Email, Tags: "notblank,email,max=180"},
		{Field: "phone", Value: m.Phone, Tags: "max=20"},
		{Field: "subject", Value: m.Subject, Tags: "notblank,max=255"},
		{Field: "message", Value: m.Message, Tags: "notblank,max=5000"},
		{Field: "status", Value: string(m.Status), Tags: messageStatusChoices},
	}
}
