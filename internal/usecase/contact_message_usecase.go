package usecase

import (
	"context"
	"strings"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	"github.com/judoclub/clubsite/internal/infrastructure/metrics"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

const DefaultContactMessageLimit = 20

// ContactMessageUseCaseImpl handles the public contact form and its inbox.
type ContactMessageUseCaseImpl struct {
	messageRepo contract.IContactMessageRepository
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
}

var _ usecasecontract.IContactMessageUseCase = (*ContactMessageUseCaseImpl)(nil)

func NewContactMessageUseCase(messageRepo contract.IContactMessageRepository, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *ContactMessageUseCaseImpl {
	return &ContactMessageUseCaseImpl{messageRepo: messageRepo, validator: validator, logger: logger}
}

func (uc *ContactMessageUseCaseImpl) ListContactMessages(ctx context.Context, caller entity.Caller, q usecasecontract.ContactMessageQuery) (*usecasecontract.ContactMessagePage, error) {
	if err := policy.Authorize(caller, policy.ActionList, policy.ResourceContactMessage); err != nil {
		return nil, err
	}
	page, limit := utils.NormalizePage(q.Page, q.Limit)
	var opts contract.ContactMessageFilterOptions
	if q.Status != nil && *q.Status != "" {
		status := entity.MessageStatus(*q.Status)
		opts.Status = &status
	}
	messages, total, err := uc.messageRepo.ListContactMessages(ctx, opts, contract.Page{Offset: utils.Offset(page, limit), Limit: limit})
	if err != nil {
		uc.logger.Errorf("failed to list contact messages: %v", err)
		return nil, err
	}
	return &usecasecontract.ContactMessagePage{Messages: messages, Pagination: utils.Paginate(page, limit, total)}, nil
}

// GetContactMessage returns the message and marks it read if it was unread.
func (uc *ContactMessageUseCaseImpl) GetContactMessage(ctx context.Context, caller entity.Caller, id int64) (*entity.ContactMessage, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceContactMessage); err != nil {
		return nil, err
	}
	message, err := uc.messageRepo.GetContactMessageByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Contact message", err)
	}
	if message.Status == entity.MessageUnread {
		message.Status = entity.MessageRead
		if err := uc.messageRepo.UpdateContactMessage(ctx, message); err != nil {
			uc.logger.Errorf("failed to mark contact message %d read: %v", id, err)
			return nil, orNotFound("Contact message", err)
		}
	}
	return message, nil
}

func (uc *ContactMessageUseCaseImpl) CreateContactMessage(ctx context.Context, caller entity.Caller, in usecasecontract.ContactMessageInput) (*entity.ContactMessage, error) {
	if err := policy.Authorize(caller, policy.ActionCreate, policy.ResourceContactMessage); err != nil {
		return nil, err
	}
	message := &entity.ContactMessage{Status: entity.MessageUnread, CreatedAt: now()}
	setString(&message.Name, in.Name)
	if in.Email != nil {
		message.Email = strings.TrimSpace(*in.Email)
	}
	setOptional(&message.Phone, in.Phone)
	setString(&message.Subject, in.Subject)
	setString(&message.Message, in.Message)

	if err := entity.NewValidationError(uc.validator.Validate(contactMessageRules(message))); err != nil {
		return nil, err
	}
	if err := uc.messageRepo.CreateContactMessage(ctx, message); err != nil {
		uc.logger.Errorf("failed to create contact message: %v", err)
		return nil, err
	}
	go metrics.IncContactMessage()
	return message, nil
}

func (uc *ContactMessageUseCaseImpl) UpdateContactMessageStatus(ctx context.Context, caller entity.Caller, id int64, status *string) (*entity.ContactMessage, error) {
	if err := policy.Authorize(caller, policy.ActionUpdateStatus, policy.ResourceContactMessage); err != nil {
		return nil, err
	}
	message, err := uc.messageRepo.GetContactMessageByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Contact message", err)
	}
	if status != nil {
		message.Status = entity.MessageStatus(*status)
	}
	if err := entity.NewValidationError(uc.validator.Validate(contactMessageRules(message))); err != nil {
		return nil, err
	}
	if err := uc.messageRepo.UpdateContactMessage(ctx, message); err != nil {
		return nil, orNotFound("Contact message", err)
	}
	return message, nil
}

func (uc *ContactMessageUseCaseImpl) DeleteContactMessage(ctx context.Context, caller entity.Caller, id int64) error {
	if err := policy.Authorize(caller, policy.ActionDelete, policy.ResourceContactMessage); err != nil {
		return err
	}
	if err := uc.messageRepo.DeleteContactMessage(ctx, id); err != nil {
		return orNotFound("Contact message", err)
	}
	return nil
}
