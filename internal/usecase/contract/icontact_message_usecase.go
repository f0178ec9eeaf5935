package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/utils"
)

type ContactMessageInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Subject *string
	Message *string
}

type ContactMessageQuery struct {
	Status *string
	Page   int
	Limit  int
}

type ContactMessagePage struct {
	Messages   []*entity.ContactMessage
	Pagination utils.PageMeta
}

type IContactMessageUseCase interface {
	ListContactMessages(ctx context.Context, caller entity.Caller, q ContactMessageQuery) (*ContactMessagePage, error)
	// GetContactMessage marks an unread message as read.
	GetContactMessage(ctx context.Context, caller entity.Caller, id int64) (*entity.ContactMessage, error)
	CreateContactMessage(ctx context.Context, caller entity.Caller, in ContactMessageInput) (*entity.ContactMessage, error)
	UpdateContactMessageStatus(ctx context.Context, caller entity.Caller, id int64, status *string) (*entity.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, caller entity.Caller, id int64) error
}
