package memory

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type ContactMessageRepository struct {
	s *Store
}

var _ contract.IContactMessageRepository = (*ContactMessageRepository)(nil)

func (r *ContactMessageRepository) CreateContactMessage(ctx context.Context, message *entity.ContactMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	message.ID = r.s.nextID("contact_messages")
	r.s.contactMessages[message.ID] = clone(message)
	return nil
}

func (r *ContactMessageRepository) GetContactMessageByID(ctx context.Context, id int64) (*entity.ContactMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.contactMessages[id]
	if !ok {
		return nil, notFound("contact message", id)
	}
	return clone(m), nil
}

func (r *ContactMessageRepository) ListContactMessages(ctx context.Context, opts contract.ContactMessageFilterOptions, page contract.Page) ([]*entity.ContactMessage, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	match := func(m *entity.ContactMessage) bool { return eqPtr(opts.Status, m.Status) }
	less := func(a, b *entity.ContactMessage) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	}
	all := collect(r.s.contactMessages, match, less)
	return window(all, page), int64(len(all)), nil
}

func (r *ContactMessageRepository) UpdateContactMessage(ctx context.Context, message *entity.ContactMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contactMessages[message.ID]; !ok {
		return notFound("contact message", message.ID)
	}
	r.s.contactMessages[message.ID] = clone(message)
	return nil
}

func (r *ContactMessageRepository) DeleteContactMessage(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.contactMessages[id]; !ok {
		return notFound("contact message", id)
	}
	delete(r.s.contactMessages, id)
	return nil
}

func (r *ContactMessageRepository) CountContactMessagesByStatus(ctx context.Context) (map[entity.MessageStatus]int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	counts := make(map[entity.MessageStatus]int64, len(entity.MessageStatuses))
	for _, st := range entity.MessageStatuses {
		counts[st] = 0
	}
	for _, m := range r.s.contactMessages {
		counts[m.Status]++
	}
	return counts, nil
}
