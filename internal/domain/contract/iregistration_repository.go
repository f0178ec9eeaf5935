package contract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

type RegistrationFilterOptions struct {
	Status     *entity.RegistrationStatus
	UserID     *int64
	ScheduleID *int64
}

// IRegistrationRepository lists registrations newest first.
type IRegistrationRepository interface {
	CreateRegistration(ctx context.Context, registration *entity.Registration) error
	GetRegistrationByID(ctx context.Context, id int64) (*entity.Registration, error)
	ListRegistrations(ctx context.Context, opts RegistrationFilterOptions) ([]*entity.Registration, error)
	ListRegistrationsPage(ctx context.Context, opts RegistrationFilterOptions, page Page) ([]*entity.Registration, int64, error)
	UpdateRegistration(ctx context.Context, registration *entity.Registration) error
	DeleteRegistration(ctx context.Context, id int64) error
	// DeleteRegistrationsBySchedule removes every registration of a schedule and
	// returns how many were removed.
	DeleteRegistrationsBySchedule(ctx context.Context, scheduleID int64) (int64, error)
	CountRegistrationsByStatus(ctx context.Context) (map[entity.RegistrationStatus]int64, error)
}
