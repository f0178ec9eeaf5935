package memory

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type EventRepository struct {
	s *Store
}

var _ contract.IEventRepository = (*EventRepository)(nil)

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	event.ID = r.s.nextID("events")
	r.s.events[event.ID] = clone(event)
	return nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.events[id]
	if !ok {
		return nil, notFound("event", id)
	}
	return clone(e), nil
}

func (r *EventRepository) ListEvents(ctx context.Context, opts contract.EventFilterOptions) ([]*entity.Event, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	match := func(e *entity.Event) bool {
		if !eqPtr(opts.Type, e.Type) {
			return false
		}
		return opts.UpcomingAfter == nil || e.Date.After(*opts.UpcomingAfter)
	}
	less := func(a, b *entity.Event) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	}
	return collect(r.s.events, match, less), nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[event.ID]; !ok {
		return notFound("event", event.ID)
	}
	r.s.events[event.ID] = clone(event)
	return nil
}

func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.events[id]; !ok {
		return notFound("event", id)
	}
	delete(r.s.events, id)
	return nil
}
