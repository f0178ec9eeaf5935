package contract

import (
	"context"
	"time"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

type EventFilterOptions struct {
	Type          *string
	UpcomingAfter *time.Time
}

// IEventRepository lists events by ascending date.
type IEventRepository interface {
	CreateEvent(ctx context.Context, event *entity.Event) error
	GetEventByID(ctx context.Context, id int64) (*entity.Event, error)
	ListEvents(ctx context.Context, opts EventFilterOptions) ([]*entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id int64) error
}
