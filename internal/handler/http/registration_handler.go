package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	"github.com/judoclub/clubsite/internal/usecase"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

type RegistrationHandlerInterface interface {
	ListRegistrations(*gin.Context)
	GetRegistration(*gin.Context)
	CreateRegistration(*gin.Context)
	UpdateRegistration(*gin.Context)
	DeleteRegistration(*gin.Context)
	ExportRegistrations(*gin.Context)
}

var _ RegistrationHandlerInterface = (*RegistrationHandler)(nil)

type RegistrationHandler struct {
	registrationUsecase usecasecontract.IRegistrationUseCase
	logger              usecasecontract.IAppLogger
}

func NewRegistrationHandler(registrationUsecase usecasecontract.IRegistrationUseCase, logger usecasecontract.IAppLogger) *RegistrationHandler {
	return &RegistrationHandler{registrationUsecase: registrationUsecase, logger: logger}
}

// ListRegistrations answers administrators with a page of every registration
// and members with a bare array of their own.
func (h *RegistrationHandler) ListRegistrations(c *gin.Context) {
	who := caller(c)
	q := usecasecontract.RegistrationQuery{
		Status: queryString(c, "status"),
		Page:   utils.ParseIntOr(c.Query("page"), 1),
		Limit:  utils.ParseIntOr(c.Query("limit"), usecase.DefaultRegistrationLimit),
	}
	list, err := h.registrationUsecase.ListRegistrations(c.Request.Context(), who, q)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	data := dto.ToRegistrationResponses(list.Registrations, who.IsAdmin())
	if list.Pagination == nil {
		SuccessHandler(c, http.StatusOK, data)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PageResponse{Data: data, Pagination: *list.Pagination})
}

func (h *RegistrationHandler) GetRegistration(c *gin.Context) {
	id, ok := PathID(c, "Registration")
	if !ok {
		return
	}
	who := caller(c)
	d, err := h.registrationUsecase.GetRegistration(c.Request.Context(), who, id)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRegistrationResponse(*d, who.IsAdmin()))
}

func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var req dto.RegistrationRequest
	if !BindJSON(c, &req) {
		return
	}
	who := caller(c)
	d, err := h.registrationUsecase.CreateRegistration(c.Request.Context(), who, req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToRegistrationResponse(*d, who.IsAdmin()))
}

func (h *RegistrationHandler) UpdateRegistration(c *gin.Context) {
	id, ok := PathID(c, "Registration")
	if !ok {
		return
	}
	var req dto.RegistrationRequest
	if !BindJSON(c, &req) {
		return
	}
	who := caller(c)
	d, err := h.registrationUsecase.UpdateRegistration(c.Request.Context(), who, id, req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRegistrationResponse(*d, who.IsAdmin()))
}

func (h *RegistrationHandler) DeleteRegistration(c *gin.Context) {
	id, ok := PathID(c, "Registration")
	if !ok {
		return
	}
	if err := h.registrationUsecase.DeleteRegistration(c.Request.Context(), caller(c), id); err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportRegistrations streams every registration as a spreadsheet.
func (h *RegistrationHandler) ExportRegistrations(c *gin.Context) {
	export, err := h.registrationUsecase.ExportRegistrations(c.Request.Context(), caller(c))
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK, export.ContentType, export.Content)
}
