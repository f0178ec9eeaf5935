package dto

import (
	"encoding/json"
	"fmt"

	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

// NumericString accepts a decimal sent either as a JSON number or a string.
type NumericString string

func (n *NumericString) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected a number: %w", err)
	}
	*n = NumericString(num.String())
	return nil
}

func (n *NumericString) ptr() *string {
	if n == nil {
		return nil
	}
	s := string(*n)
	return &s
}

// Every request field is a pointer: a missing or null key leaves the stored
// value untouched.

type RegisterRequest struct {
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth"`
}

func (r RegisterRequest) ToInput() usecasecontract.RegisterInput {
	return usecasecontract.RegisterInput{
		Email:       r.Email,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Address:     r.Address,
		DateOfBirth: r.DateOfBirth,
	}
}

// LoginRequest accepts the login form's username field or a plain email.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

type ProfileRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	DateOfBirth *string `json:"dateOfBirth"`
}

func (r ProfileRequest) ToInput() usecasecontract.ProfileInput {
	return usecasecontract.ProfileInput{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Phone:       r.Phone,
		Address:     r.Address,
		DateOfBirth: r.DateOfBirth,
	}
}

type InstructorRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	BeltRank *string `json:"beltRank"`
	PhotoURL *string `json:"photoUrl"`
}

func (r InstructorRequest) ToInput() usecasecontract.InstructorInput {
	return usecasecontract.InstructorInput{Name: r.Name, Bio: r.Bio, BeltRank: r.BeltRank, PhotoURL: r.PhotoURL}
}

type ScheduleRequest struct {
	DayOfWeek    *string        `json:"dayOfWeek"`
	StartTime    *string        `json:"startTime"`
	EndTime      *string        `json:"endTime"`
	Level        *string        `json:"level"`
	Description  *string        `json:"description"`
	Price        *NumericString `json:"price"`
	InstructorID *int64         `json:"instructorId"`
}

func (r ScheduleRequest) ToInput() usecasecontract.ScheduleInput {
	return usecasecontract.ScheduleInput{
		DayOfWeek:    r.DayOfWeek,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
		Level:        r.Level,
		Description:  r.Description,
		Price:        r.Price.ptr(),
		InstructorID: r.InstructorID,
	}
}

type NewsRequest struct {
	Title     *string  `json:"title"`
	Content   *string  `json:"content"`
	Excerpt   *string  `json:"excerpt"`
	ImageURL  *string  `json:"imageUrl"`
	Category  *string  `json:"category"`
	Important *bool    `json:"important"`
	Author    *string  `json:"author"`
	Tags      []string `json:"tags"`
	EventDate *string  `json:"eventDate"`
}

func (r NewsRequest) ToInput() usecasecontract.NewsInput {
	return usecasecontract.NewsInput{
		Title:     r.Title,
		Content:   r.Content,
		Excerpt:   r.Excerpt,
		ImageURL:  r.ImageURL,
		Category:  r.Category,
		Important: r.Important,
		Author:    r.Author,
		Tags:      r.Tags,
		EventDate: r.EventDate,
	}
}

type EventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	ImageURL    *string `json:"imageUrl"`
	Type        *string `json:"type"`
}

func (r EventRequest) ToInput() usecasecontract.EventInput {
	return usecasecontract.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		ImageURL:    r.ImageURL,
		Type:        r.Type,
	}
}

type GalleryItemRequest struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	URL         *string `json:"url"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Alt         *string `json:"alt"`
	Active      *bool   `json:"active"`
}

func (r GalleryItemRequest) ToInput() usecasecontract.GalleryItemInput {
	return usecasecontract.GalleryItemInput{
		Title:       r.Title,
		Type:        r.Type,
		URL:         r.URL,
		Description: r.Description,
		Category:    r.Category,
		Alt:         r.Alt,
		Active:      r.Active,
	}
}

type RegistrationRequest struct {
	ScheduleID             *int64  `json:"scheduleId"`
	Status                 *string `json:"status"`
	MedicalCertificateFile *string `json:"medicalCertificateFile"`
	Notes                  *string `json:"notes"`
	Experience             *string `json:"experience"`
	Newsletter             *bool   `json:"newsletter"`
}

func (r RegistrationRequest) ToInput() usecasecontract.RegistrationInput {
	return usecasecontract.RegistrationInput{
		ScheduleID:             r.ScheduleID,
		Status:                 r.Status,
		MedicalCertificateFile: r.MedicalCertificateFile,
		Notes:                  r.Notes,
		Experience:             r.Experience,
		Newsletter:             r.Newsletter,
	}
}

type ContactMessageRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Message *string `json:"message"`
}

func (r ContactMessageRequest) ToInput() usecasecontract.ContactMessageInput {
	return usecasecontract.ContactMessageInput{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Subject: r.Subject,
		Message: r.Message,
	}
}

type StatusRequest struct {
	Status *string `json:"status"`
}
