package dto

import (
	"time"

	"github.com/judoclub/clubsite/internal/domain/entity"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

func formatTimestamp(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(timestampLayout)
	return &s
}

func formatOptional(t *time.Time, layout string) *string {
	if t == nil {
		return nil
	}
	s := t.Format(layout)
	return &s
}

func roleNames(roles []entity.UserRole) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = string(r)
	}
	return out
}

// RegisteredUserResponse is returned right after sign-up.
type RegisteredUserResponse struct {
	ID        int64    `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
}

func ToRegisteredUserResponse(u *entity.User) RegisteredUserResponse {
	return RegisteredUserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Roles:     roleNames(u.Roles),
	}
}

// ProfileResponse is the caller's own account.
type ProfileResponse struct {
	ID          int64    `json:"id"`
	Email       string   `json:"email"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Phone       *string  `json:"phone"`
	Address     *string  `json:"address"`
	DateOfBirth *string  `json:"dateOfBirth"`
	Roles       []string `json:"roles"`
}

func ToProfileResponse(u *entity.User) ProfileResponse {
	return ProfileResponse{
		ID:          u.ID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		Address:     u.Address,
		DateOfBirth: formatOptional(u.DateOfBirth, dateLayout),
		Roles:       roleNames(u.Roles),
	}
}

type InstructorResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Bio      *string `json:"bio"`
	BeltRank string  `json:"beltRank"`
	PhotoURL *string `json:"photoUrl"`
}

func ToInstructorResponse(i *entity.Instructor) InstructorResponse {
	return InstructorResponse{ID: i.ID, Name: i.Name, Bio: i.Bio, BeltRank: i.BeltRank, PhotoURL: i.PhotoURL}
}

func ToInstructorResponses(items []*entity.Instructor) []InstructorResponse {
	out := make([]InstructorResponse, len(items))
	for i, item := range items {
		out[i] = ToInstructorResponse(item)
	}
	return out
}

// InstructorSummary is the instructor as embedded in a schedule.
type InstructorSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	BeltRank string `json:"beltRank"`
}

type ScheduleResponse struct {
	ID          int64              `json:"id"`
	DayOfWeek   string             `json:"dayOfWeek"`
	StartTime   string             `json:"startTime"`
	EndTime     string             `json:"endTime"`
	Level       string             `json:"level"`
	Description *string            `json:"description"`
	Price       *string            `json:"price"`
	Instructor  *InstructorSummary `json:"instructor"`
}

func ToScheduleResponse(d usecasecontract.ScheduleDetail) ScheduleResponse {
	s := d.Schedule
	resp := ScheduleResponse{
		ID:          s.ID,
		DayOfWeek:   string(s.DayOfWeek),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Level:       string(s.Level),
		Description: s.Description,
		Price:       s.Price,
	}
	if d.Instructor != nil {
		resp.Instructor = &InstructorSummary{ID: d.Instructor.ID, Name: d.Instructor.Name, BeltRank: d.Instructor.BeltRank}
	}
	return resp
}

func ToScheduleResponses(items []usecasecontract.ScheduleDetail) []ScheduleResponse {
	out := make([]ScheduleResponse, len(items))
	for i, d := range items {
		out[i] = ToScheduleResponse(d)
	}
	return out
}

type NewsResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Excerpt   *string  `json:"excerpt"`
	CreatedAt *string  `json:"createdAt"`
	ImageURL  *string  `json:"imageUrl"`
	Category  *string  `json:"category"`
	Important bool     `json:"important"`
	Author    *string  `json:"author"`
	Tags      []string `json:"tags"`
	EventDate *string  `json:"eventDate"`
}

func ToNewsResponse(n *entity.News) NewsResponse {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return NewsResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Excerpt:   n.Excerpt,
		CreatedAt: formatTimestamp(n.CreatedAt),
		ImageURL:  n.ImageURL,
		Category:  n.Category,
		Important: n.Important,
		Author:    n.Author,
		Tags:      tags,
		EventDate: formatOptional(n.EventDate, timestampLayout),
	}
}

func ToNewsResponses(items []*entity.News) []NewsResponse {
	out := make([]NewsResponse, len(items))
	for i, n := range items {
		out[i] = ToNewsResponse(n)
	}
	return out
}

type EventResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        *string `json:"date"`
	Location    string  `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	Type        string  `json:"type"`
}

func ToEventResponse(e *entity.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        formatTimestamp(e.Date),
		Location:    e.Location,
		ImageURL:    e.ImageURL,
		Type:        e.Type,
	}
}

func ToEventResponses(items []*entity.Event) []EventResponse {
	out := make([]EventResponse, len(items))
	for i, e := range items {
		out[i] = ToEventResponse(e)
	}
	return out
}

type GalleryItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Type        string  `json:"type"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Alt         *string `json:"alt"`
	Active      bool    `json:"active"`
	CreatedAt   *string `json:"createdAt"`
}

func ToGalleryItemResponse(g *entity.GalleryItem) GalleryItemResponse {
	return GalleryItemResponse{
		ID:          g.ID,
		Title:       g.Title,
		Type:        g.Type,
		URL:         g.URL,
		Description: g.Description,
		Category:    g.Category,
		Alt:         g.Alt,
		Active:      g.Active,
		CreatedAt:   formatTimestamp(g.CreatedAt),
	}
}

func ToGalleryItemResponses(items []*entity.GalleryItem) []GalleryItemResponse {
	out := make([]GalleryItemResponse, len(items))
	for i, g := range items {
		out[i] = ToGalleryItemResponse(g)
	}
	return out
}

type ContactMessageResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt *string `json:"createdAt"`
}

func ToContactMessageResponse(m *entity.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Subject:   m.Subject,
		Message:   m.Message,
		Status:    string(m.Status),
		CreatedAt: formatTimestamp(m.CreatedAt),
	}
}

func ToContactMessageResponses(items []*entity.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, len(items))
	for i, m := range items {
		out[i] = ToContactMessageResponse(m)
	}
	return out
}

// ScheduleSummary is the class as embedded in a registration.
type ScheduleSummary struct {
	ID        int64  `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Level     string `json:"level"`
}

// RegistrantSummary is the registration owner, shown to administrators only.
type RegistrantSummary struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
}

// RegistrationResponse is the member view of a registration.
type RegistrationResponse struct {
	ID         int64            `json:"id"`
	Status     string           `json:"status"`
	Experience *string          `json:"experience"`
	Newsletter bool             `json:"newsletter"`
	CreatedAt  *string          `json:"createdAt"`
	Schedule   *ScheduleSummary `json:"schedule"`
}

// AdminRegistrationResponse adds the owner and the back-office fields.
type AdminRegistrationResponse struct {
	RegistrationResponse
	User                   *RegistrantSummary `json:"user"`
	Notes                  *string            `json:"notes"`
	MedicalCertificateFile *string            `json:"medicalCertificateFile"`
}

func toRegistrationResponse(d usecasecontract.RegistrationDetail) RegistrationResponse {
	r := d.Registration
	resp := RegistrationResponse{
		ID:         r.ID,
		Status:     string(r.Status),
		Experience: r.Experience,
		Newsletter: r.Newsletter,
		CreatedAt:  formatTimestamp(r.CreatedAt),
	}
	if s := d.Schedule; s != nil {
		resp.Schedule = &ScheduleSummary{
			ID:        s.ID,
			DayOfWeek: string(s.DayOfWeek),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Level:     string(s.Level),
		}
	}
	return resp
}

// ToRegistrationResponse picks the projection for the caller's privilege.
func ToRegistrationResponse(d usecasecontract.RegistrationDetail, admin bool) interface{} {
	base := toRegistrationResponse(d)
	if !admin {
		return base
	}
	resp := AdminRegistrationResponse{
		RegistrationResponse:   base,
		Notes:                  d.Registration.Notes,
		MedicalCertificateFile: d.Registration.MedicalCertificateFile,
	}
	if u := d.User; u != nil {
		resp.User = &RegistrantSummary{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Email:       u.Email,
			Phone:       u.Phone,
			DateOfBirth: formatOptional(u.DateOfBirth, dateLayout),
		}
	}
	return resp
}

func ToRegistrationResponses(items []usecasecontract.RegistrationDetail, admin bool) []interface{} {
	out := make([]interface{}, len(items))
	for i, d := range items {
		out[i] = ToRegistrationResponse(d, admin)
	}
	return out
}
