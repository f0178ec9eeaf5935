// Package memory keeps every entity in per-type maps keyed by id. It backs
// the development mode and the tests; relations are plain ids resolved through
// the maps.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
)

// Store is the shared arena behind the in-memory repositories. Entities are
// copied on the way in and out so callers never alias stored records.
type Store struct {
	mu  sync.RWMutex
	seq map[string]int64

	users           map[int64]*entity.User
	instructors     map[int64]*entity.Instructor
	schedules       map[int64]*entity.Schedule
	news            map[int64]*entity.News
	events          map[int64]*entity.Event
	gallery         map[int64]*entity.GalleryItem
	registrations   map[int64]*entity.Registration
	contactMessages map[int64]*entity.ContactMessage
}

func NewStore() *Store {
	return &Store{
		seq:             make(map[string]int64),
		users:           make(map[int64]*entity.User),
		instructors:     make(map[int64]*entity.Instructor),
		schedules:       make(map[int64]*entity.Schedule),
		news:            make(map[int64]*entity.News),
		events:          make(map[int64]*entity.Event),
		gallery:         make(map[int64]*entity.GalleryItem),
		registrations:   make(map[int64]*entity.Registration),
		contactMessages: make(map[int64]*entity.ContactMessage),
	}
}

// NewRepositories wires every in-memory repository onto one store.
func NewRepositories(s *Store) contract.Repositories {
	return contract.Repositories{
		Users:           &UserRepository{s: s},
		Instructors:     &InstructorRepository{s: s},
		Schedules:       &ScheduleRepository{s: s},
		News:            &NewsRepository{s: s},
		Events:          &EventRepository{s: s},
		Gallery:         &GalleryRepository{s: s},
		Registrations:   &RegistrationRepository{s: s},
		ContactMessages: &ContactMessageRepository{s: s},
	}
}

// nextID must be called with the write lock held.
func (s *Store) nextID(name string) int64 {
	s.seq[name]++
	return s.seq[name]
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, entity.ErrNotFound)
}

// collect copies the matching values of m and sorts them with less.
func collect[T any](m map[int64]*T, match func(*T) bool, less func(a, b *T) bool) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		if match == nil || match(v) {
			out = append(out, clone(v))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// window applies an offset/limit page to an ordered slice. A negative offset
// selects nothing.
func window[T any](items []*T, p contract.Page) []*T {
	if p.Offset < 0 || p.Offset >= len(items) {
		return []*T{}
	}
	end := len(items)
	if p.Limit > 0 && p.Limit < end-p.Offset {
		end = p.Offset + p.Limit
	}
	return items[p.Offset:end]
}

func eqPtr[T comparable](want *T, got T) bool {
	return want == nil || *want == got
}

func eqOptional(want *string, got *string) bool {
	if want == nil {
		return true
	}
	return got != nil && *got == *want
}
