package usecase

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

// StatsUseCaseImpl computes the back-office dashboard counters.
type StatsUseCaseImpl struct {
	repos  contract.Repositories
	logger usecasecontract.IAppLogger
}

var _ usecasecontract.IStatsUseCase = (*StatsUseCaseImpl)(nil)

func NewStatsUseCase(repos contract.Repositories, logger usecasecontract.IAppLogger) *StatsUseCaseImpl {
	return &StatsUseCaseImpl{repos: repos, logger: logger}
}

func (uc *StatsUseCaseImpl) GetDashboardStats(ctx context.Context, caller entity.Caller) (*usecasecontract.DashboardStats, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceDashboard); err != nil {
		return nil, err
	}
	totalNews, err := uc.repos.News.CountNews(ctx)
	if err != nil {
		return nil, err
	}
	totalPhotos, err := uc.repos.Gallery.CountGalleryItems(ctx)
	if err != nil {
		return nil, err
	}
	messages, err := uc.repos.ContactMessages.CountContactMessagesByStatus(ctx)
	if err != nil {
		return nil, err
	}
	registrations, err := uc.repos.Registrations.CountRegistrationsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &usecasecontract.DashboardStats{
		TotalNews:             totalNews,
		TotalPhotos:           totalPhotos,
		PendingMessages:       messages[entity.MessageUnread],
		PendingRegistrations:  registrations[entity.RegistrationPending],
		RegistrationsByStatus: registrations,
		MessagesByStatus:      messages,
	}
	for _, n := range messages {
		stats.TotalMessages += n
	}
	for _, n := range registrations {
		stats.TotalRegistrations += n
	}
	return stats, nil
}
