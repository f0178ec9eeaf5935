package contract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

type ContactMessageFilterOptions struct {
	Status *entity.MessageStatus
}

// IContactMessageRepository lists messages newest first.
type IContactMessageRepository interface {
	CreateContactMessage(ctx context.Context, message *entity.ContactMessage) error
	GetContactMessageByID(ctx context.Context, id int64) (*entity.ContactMessage, error)
	ListContactMessages(ctx context.Context, opts ContactMessageFilterOptions, page Page) ([]*entity.ContactMessage, int64, error)
	UpdateContactMessage(ctx context.Context, message *entity.ContactMessage) error
	DeleteContactMessage(ctx context.Context, id int64) error
	CountContactMessagesByStatus(ctx context.Context) (map[entity.MessageStatus]int64, error)
}
