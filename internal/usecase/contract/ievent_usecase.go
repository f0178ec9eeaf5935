package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

type EventInput struct {
	Title       *string
	Description *string
	Date        *string
	Location    *string
	ImageURL    *string
	Type        *string
}

type EventQuery struct {
	Type     *string
	Upcoming bool
}

type IEventUseCase interface {
	ListEvents(ctx context.Context, caller entity.Caller, q EventQuery) ([]*entity.Event, error)
	GetEvent(ctx context.Context, caller entity.Caller, id int64) (*entity.Event, error)
	CreateEvent(ctx context.Context, caller entity.Caller, in EventInput) (*entity.Event, error)
	UpdateEvent(ctx context.Context, caller entity.Caller, id int64, in EventInput) (*entity.Event, error)
	DeleteEvent(ctx context.Context, caller entity.Caller, id int64) error
}
