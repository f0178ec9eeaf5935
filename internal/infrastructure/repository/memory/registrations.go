package memory

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type RegistrationRepository struct {
	s *Store
}

var _ contract.IRegistrationRepository = (*RegistrationRepository)(nil)

func registrationMatch(opts contract.RegistrationFilterOptions) func(*entity.Registration) bool {
	return func(r *entity.Registration) bool {
		return eqPtr(opts.Status, r.Status) && eqPtr(opts.UserID, r.UserID) && eqPtr(opts.ScheduleID, r.ScheduleID)
	}
}

func registrationLess(a, b *entity.Registration) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func (r *RegistrationRepository) CreateRegistration(ctx context.Context, registration *entity.Registration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	registration.ID = r.s.nextID("registrations")
	r.s.registrations[registration.ID] = clone(registration)
	return nil
}

func (r *RegistrationRepository) GetRegistrationByID(ctx context.Context, id int64) (*entity.Registration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	reg, ok := r.s.registrations[id]
	if !ok {
		return nil, notFound("registration", id)
	}
	return clone(reg), nil
}

func (r *RegistrationRepository) ListRegistrations(ctx context.Context, opts contract.RegistrationFilterOptions) ([]*entity.Registration, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return collect(r.s.registrations, registrationMatch(opts), registrationLess), nil
}

func (r *RegistrationRepository) ListRegistrationsPage(ctx context.Context, opts contract.RegistrationFilterOptions, page contract.Page) ([]*entity.Registration, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	all := collect(r.s.registrations, registrationMatch(opts), registrationLess)
	return window(all, page), int64(len(all)), nil
}

func (r *RegistrationRepository) UpdateRegistration(ctx context.Context, registration *entity.Registration) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.registrations[registration.ID]; !ok {
		return notFound("registration", registration.ID)
	}
	r.s.registrations[registration.ID] = clone(registration)
	return nil
}

func (r *RegistrationRepository) DeleteRegistration(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.registrations[id]; !ok {
		return notFound("registration", id)
	}
	delete(r.s.registrations, id)
	return nil
}

func (r *RegistrationRepository) DeleteRegistrationsBySchedule(ctx context.Context, scheduleID int64) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, reg := range r.s.registrations {
		if reg.ScheduleID == scheduleID {
			delete(r.s.registrations, id)
			n++
		}
	}
	return n, nil
}

func (r *RegistrationRepository) CountRegistrationsByStatus(ctx context.Context) (map[entity.RegistrationStatus]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[entity.RegistrationStatus]int64, len(entity.RegistrationStatuses))
	for _, st := range entity.RegistrationStatuses {
		counts[st] = 0
	}
	for _, reg := range r.s.registrations {
		counts[reg.Status]++
	}
	return counts, nil
}
