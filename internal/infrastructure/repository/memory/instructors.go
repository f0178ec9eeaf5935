package memory

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

type InstructorRepository struct {
	s *Store
}

var _ contract.IInstructorRepository = (*InstructorRepository)(nil)

func (r *InstructorRepository) CreateInstructor(ctx context.Context, instructor *entity.Instructor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	instructor.ID = r.s.nextID("instructors")
	r.s.instructors[instructor.ID] = clone(instructor)
	return nil
}

func (r *InstructorRepository) GetInstructorByID(ctx context.Context, id int64) (*entity.Instructor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	i, ok := r.s.instructors[id]
	if !ok {
		return nil, notFound("instructor", id)
	}
	return clone(i), nil
}

func (r *InstructorRepository) GetInstructorsByIDs(ctx context.Context, ids []int64) (map[int64]*entity.Instructor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64]*entity.Instructor, len(ids))
	for _, id := range ids {
		if i, ok := r.s.instructors[id]; ok {
			out[id] = clone(i)
		}
	}
	return out, nil
}

func (r *InstructorRepository) ListInstructors(ctx context.Context) ([]*entity.Instructor, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return collect(r.s.instructors, nil, func(a, b *entity.Instructor) bool { return a.ID < b.ID }), nil
}

func (r *InstructorRepository) UpdateInstructor(ctx context.Context, instructor *entity.Instructor) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.instructors[instructor.ID]; !ok {
		return notFound("instructor", instructor.ID)
	}
	r.s.instructors[instructor.ID] = clone(instructor)
	return nil
}

func (r *InstructorRepository) DeleteInstructor(ctx context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.instructors[id]; !ok {
		return notFound("instructor", id)
	}
	delete(r.s.instructors, id)
	return nil
}
