package usecase_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/infrastructure/export"
	"github.com/judoclub/clubsite/internal/infrastructure/jwt"
	"github.com/judoclub/clubsite/internal/infrastructure/logger"
	passwordservice "github.com/judoclub/clubsite/internal/infrastructure/password_service"
	"github.com/judoclub/clubsite/internal/infrastructure/repository/memory"
	"github.com/judoclub/clubsite/internal/infrastructure/uuidgen"
	"github.com/judoclub/clubsite/internal/infrastructure/validator"
	"github.com/judoclub/clubsite/internal/usecase"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	admin  = entity.NewCaller(1, []entity.UserRole{entity.UserRoleAdmin, entity.UserRoleUser})
	member = entity.NewCaller(2, []entity.UserRole{entity.UserRoleUser})
	other  = entity.NewCaller(3, []entity.UserRole{entity.UserRoleUser})
	anon   = entity.Anonymous()
)

type fixture struct {
	repos         contract.Repositories
	users         *usecase.UserUsecase
	instructors   *usecase.InstructorUseCaseImpl
	schedules     *usecase.ScheduleUseCaseImpl
	news          *usecase.NewsUseCaseImpl
	events        *usecase.EventUseCaseImpl
	gallery       *usecase.GalleryUseCaseImpl
	registrations *usecase.RegistrationUseCaseImpl
	messages      *usecase.ContactMessageUseCaseImpl
	stats         *usecase.StatsUseCaseImpl
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := memory.NewRepositories(memory.NewStore())
	log := logger.NewSlogLoggerTo(io.Discard, "error")
	v := validator.NewValidator()
	tokens := jwt.NewJWTService(jwt.NewJWTManager("test-secret", time.Hour, uuidgen.NewGenerator()))

	return &fixture{
		repos:         repos,
		users:         usecase.NewUserUsecase(repos.Users, passwordservice.NewHasherWithCost(bcrypt.MinCost), tokens, log, v),
		instructors:   usecase.NewInstructorUseCase(repos.Instructors, repos.Schedules, v, log),
		schedules:     usecase.NewScheduleUseCase(repos.Schedules, repos.Instructors, repos.Registrations, v, log),
		news:          usecase.NewNewsUseCase(repos.News, v, log),
		events:        usecase.NewEventUseCase(repos.Events, v, log),
		gallery:       usecase.NewGalleryUseCase(repos.Gallery, v, log),
		registrations: usecase.NewRegistrationUseCase(repos.Registrations, repos.Schedules, repos.Users, export.NewXLSXExporter(), v, log),
		messages:      usecase.NewContactMessageUseCase(repos.ContactMessages, v, log),
		stats:         usecase.NewStatsUseCase(repos, log),
	}
}

// seedUsers stores accounts matching the admin, member and other callers.
func (f *fixture) seedUsers(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, u := range []*entity.User{
		{Email: "admin@example.com", FirstName: "Ada", LastName: "Admin", Roles: admin.Roles},
		{Email: "member@example.com", FirstName: "Jean", LastName: "Dupont", Roles: member.Roles},
		{Email: "other@example.com", FirstName: "Paul", LastName: "Other", Roles: other.Roles},
	} {
		require.NoError(t, f.repos.Users.CreateUser(ctx, u))
	}
}

func (f *fixture) seedSchedule(t *testing.T, day entity.DayOfWeek, start string) *entity.Schedule {
	t.Helper()
	s := &entity.Schedule{DayOfWeek: day, StartTime: start, EndTime: "21:00", Level: entity.LevelAdults}
	require.NoError(t, f.repos.Schedules.CreateSchedule(context.Background(), s))
	return s
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func int64Ptr(i int64) *int64 { return &i }

func violations(t *testing.T, err error) []string {
	t.Helper()
	var verr *entity.ValidationError
	require.ErrorAs(t, err, &verr)
	return verr.Violations
}
