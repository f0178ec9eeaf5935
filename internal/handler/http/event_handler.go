package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

type EventHandlerInterface interface {
	ListEvents(*gin.Context)
	GetEvent(*gin.Context)
	CreateEvent(*gin.Context)
	UpdateEvent(*gin.Context)
	DeleteEvent(*gin.Context)
}

var _ EventHandlerInterface = (*EventHandler)(nil)

type EventHandler struct {
	eventUsecase usecasecontract.IEventUseCase
	logger       usecasecontract.IAppLogger
}

func NewEventHandler(eventUsecase usecasecontract.IEventUseCase, logger usecasecontract.IAppLogger) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase, logger: logger}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	q := usecasecontract.EventQuery{
		Type:     queryString(c, "type"),
		Upcoming: queryBool(c, "upcoming"),
	}
	events, err := h.eventUsecase.ListEvents(c.Request.Context(), caller(c), q)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponses(events))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	id, ok := PathID(c, "Event")
	if !ok {
		return
	}
	event, err := h.eventUsecase.GetEvent(c.Request.Context(), caller(c), id)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.EventRequest
	if !BindJSON(c, &req) {
		return
	}
	event, err := h.eventUsecase.CreateEvent(c.Request.Context(), caller(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := PathID(c, "Event")
	if !ok {
		return
	}
	var req dto.EventRequest
	if !BindJSON(c, &req) {
		return
	}
	event, err := h.eventUsecase.UpdateEvent(c.Request.Context(), caller(c), id, req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, ok := PathID(c, "Event")
	if !ok {
		return
	}
	if err := h.eventUsecase.DeleteEvent(c.Request.Context(), caller(c), id); err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
