package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

type InstructorHandlerInterface interface {
	ListInstructors(*gin.Context)
	GetInstructor(*gin.Context)
	CreateInstructor(*gin.Context)
	UpdateInstructor(*gin.Context)
	DeleteInstructor(*gin.Context)
}

var _ InstructorHandlerInterface = (*InstructorHandler)(nil)

type InstructorHandler struct {
	instructorUsecase usecasecontract.IInstructorUseCase
	logger            usecasecontract.IAppLogger
}

func NewInstructorHandler(instructorUsecase usecasecontract.IInstructorUseCase, logger usecasecontract.IAppLogger) *InstructorHandler {
	return &InstructorHandler{instructorUsecase: instructorUsecase, logger: logger}
}

func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	items, err := h.instructorUsecase.ListInstructors(c.Request.Context(), caller(c))
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToInstructorResponses(items))
}

func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id, ok := PathID(c, "Instructor")
	if !ok {
		return
	}
	item, err := h.instructorUsecase.GetInstructor(c.Request.Context(), caller(c), id)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToInstructorResponse(item))
}

func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.InstructorRequest
	if !BindJSON(c, &req) {
		return
	}
	item, err := h.instructorUsecase.CreateInstructor(c.Request.Context(), caller(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToInstructorResponse(item))
}

func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id, ok := PathID(c, "Instructor")
	if !ok {
		return
	}
	var req dto.InstructorRequest
	if !BindJSON(c, &req) {
		return
	}
	item, err := h.instructorUsecase.UpdateInstructor(c.Request.Context(), caller(c), id, req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToInstructorResponse(item))
}

func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id, ok := PathID(c, "Instructor")
	if !ok {
		return
	}
	if err := h.instructorUsecase.DeleteInstructor(c.Request.Context(), caller(c), id); err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
