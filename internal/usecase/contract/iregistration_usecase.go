package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/utils"
)

// RegistrationInput carries a registration write. Status and Notes are only
// applied for administrators.
type RegistrationInput struct {
	ScheduleID             *int64
	Status                 *string
	MedicalCertificateFile *string
	Notes                  *string
	Experience             *string
	Newsletter             *bool
}

type RegistrationQuery struct {
	Status *string
	Page   int
	Limit  int
}

// RegistrationDetail is a registration with its schedule and owner resolved.
// User is only loaded for administrators.
type RegistrationDetail struct {
	Registration *entity.Registration
	Schedule     *entity.Schedule
	User         *entity.User
}

// RegistrationList is the admin paginated view when Pagination is set, and a
// member's own registrations otherwise.
type RegistrationList struct {
	Registrations []RegistrationDetail
	Pagination    *utils.PageMeta
}

type RegistrationExport struct {
	Filename    string
	ContentType string
	Content     []byte
}

type IRegistrationUseCase interface {
	ListRegistrations(ctx context.Context, caller entity.Caller, q RegistrationQuery) (*RegistrationList, error)
	GetRegistration(ctx context.Context, caller entity.Caller, id int64) (*RegistrationDetail, error)
	CreateRegistration(ctx context.Context, caller entity.Caller, in RegistrationInput) (*RegistrationDetail, error)
	UpdateRegistration(ctx context.Context, caller entity.Caller, id int64, in RegistrationInput) (*RegistrationDetail, error)
	DeleteRegistration(ctx context.Context, caller entity.Caller, id int64) error
	ExportRegistrations(ctx context.Context, caller entity.Caller) (*RegistrationExport, error)
}
