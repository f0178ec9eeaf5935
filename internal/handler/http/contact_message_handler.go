package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	"github.com/judoclub/clubsite/internal/usecase"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

type ContactMessageHandlerInterface interface {
	ListContactMessages(*gin.Context)
	GetContactMessage(*gin.Context)
	CreateContactMessage(*gin.Context)
	UpdateContactMessageStatus(*gin.Context)
	DeleteContactMessage(*gin.Context)
}

var _ ContactMessageHandlerInterface = (*ContactMessageHandler)(nil)

type ContactMessageHandler struct {
	messageUsecase usecasecontract.IContactMessageUseCase
	logger         usecasecontract.IAppLogger
}

func NewContactMessageHandler(messageUsecase usecasecontract.IContactMessageUseCase, logger usecasecontract.IAppLogger) *ContactMessageHandler {
	return &ContactMessageHandler{messageUsecase: messageUsecase, logger: logger}
}

func (h *ContactMessageHandler) ListContactMessages(c *gin.Context) {
	q := usecasecontract.ContactMessageQuery{
		Status: queryString(c, "status"),
		Page:   utils.ParseIntOr(c.Query("page"), 1),
		Limit:  utils.ParseIntOr(c.Query("limit"), usecase.DefaultContactMessageLimit),
	}
	page, err := h.messageUsecase.ListContactMessages(c.Request.Context(), caller(c), q)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PageResponse{Data: dto.ToContactMessageResponses(page.Messages), Pagination: page.Pagination})
}

// GetContactMessage returns the message and marks it read.
func (h *ContactMessageHandler) GetContactMessage(c *gin.Context) {
	id, ok := PathID(c, "Contact message")
	if !ok {
		return
	}
	m, err := h.messageUsecase.GetContactMessage(c.Request.Context(), caller(c), id)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToContactMessageResponse(m))
}

// CreateContactMessage is open to anonymous visitors.
func (h *ContactMessageHandler) CreateContactMessage(c *gin.Context) {
	var req dto.ContactMessageRequest
	if !BindJSON(c, &req) {
		return
	}
	m, err := h.messageUsecase.CreateContactMessage(c.Request.Context(), caller(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToContactMessageResponse(m))
}

func (h *ContactMessageHandler) UpdateContactMessageStatus(c *gin.Context) {
	id, ok := PathID(c, "Contact message")
	if !ok {
		return
	}
	var req dto.StatusRequest
	if !BindJSON(c, &req) {
		return
	}
	m, err := h.messageUsecase.UpdateContactMessageStatus(c.Request.Context(), caller(c), id, req.Status)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToContactMessageResponse(m))
}

func (h *ContactMessageHandler) DeleteContactMessage(c *gin.Context) {
	id, ok := PathID(c, "Contact message")
	if !ok {
		return
	}
	if err := h.messageUsecase.DeleteContactMessage(c.Request.Context(), caller(c), id); err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
