package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

type ScheduleHandlerInterface interface {
	ListSchedules(*gin.Context)
	GetSchedule(*gin.Context)
	CreateSchedule(*gin.Context)
	UpdateSchedule(*gin.Context)
	DeleteSchedule(*gin.Context)
}

var _ ScheduleHandlerInterface = (*ScheduleHandler)(nil)

type ScheduleHandler struct {
	scheduleUsecase usecasecontract.IScheduleUseCase
	logger          usecasecontract.IAppLogger
}

func NewScheduleHandler(scheduleUsecase usecasecontract.IScheduleUseCase, logger usecasecontract.IAppLogger) *ScheduleHandler {
	return &ScheduleHandler{scheduleUsecase: scheduleUsecase, logger: logger}
}

// ListSchedules handles GET /schedules?dayOfWeek=&level=
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	q := usecasecontract.ScheduleQuery{
		DayOfWeek: queryString(c, "dayOfWeek"),
		Level:     queryString(c, "level"),
	}
	items, err := h.scheduleUsecase.ListSchedules(c.Request.Context(), caller(c), q)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToScheduleResponses(items))
}

func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, ok := PathID(c, "Schedule")
	if !ok {
		return
	}
	d, err := h.scheduleUsecase.GetSchedule(c.Request.Context(), caller(c), id)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToScheduleResponse(*d))
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if !BindJSON(c, &req) {
		return
	}
	d, err := h.scheduleUsecase.CreateSchedule(c.Request.Context(), caller(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToScheduleResponse(*d))
}

func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, ok := PathID(c, "Schedule")
	if !ok {
		return
	}
	var req dto.ScheduleRequest
	if !BindJSON(c, &req) {
		return
	}
	d, err := h.scheduleUsecase.UpdateSchedule(c.Request.Context(), caller(c), id, req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToScheduleResponse(*d))
}

// DeleteSchedule also removes the class's registrations.
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	id, ok := PathID(c, "Schedule")
	if !ok {
		return
	}
	if err := h.scheduleUsecase.DeleteSchedule(c.Request.Context(), caller(c), id); err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
