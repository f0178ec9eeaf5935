package usecasecontract

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/entity"
)

// DashboardStats are the back-office counters.
type DashboardStats struct {
	TotalNews             int64                               `json:"totalNews"`
	TotalPhotos           int64                               `json:"totalPhotos"`
	TotalMessages         int64                               `json:"totalMessages"`
	PendingMessages       int64                               `json:"pendingMessages"`
	TotalRegistrations    int64                               `json:"totalRegistrations"`
	PendingRegistrations  int64                               `json:"pendingRegistrations"`
	RegistrationsByStatus map[entity.RegistrationStatus]int64 `json:"registrationsByStatus"`
	MessagesByStatus      map[entity.MessageStatus]int64      `json:"messagesByStatus"`
}

type IStatsUseCase interface {
	GetDashboardStats(ctx context.Context, caller entity.Caller) (*DashboardStats, error)
}
