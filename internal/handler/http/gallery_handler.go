package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	"github.com/judoclub/clubsite/internal/usecase"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

type GalleryHandlerInterface interface {
	ListGalleryItems(*gin.Context)
	GetGalleryItem(*gin.Context)
	CreateGalleryItem(*gin.Context)
	UpdateGalleryItem(*gin.Context)
	DeleteGalleryItem(*gin.Context)
}

var _ GalleryHandlerInterface = (*GalleryHandler)(nil)

type GalleryHandler struct {
	galleryUsecase usecasecontract.IGalleryUseCase
	logger         usecasecontract.IAppLogger
}

func NewGalleryHandler(galleryUsecase usecasecontract.IGalleryUseCase, logger usecasecontract.IAppLogger) *GalleryHandler {
	return &GalleryHandler{galleryUsecase: galleryUsecase, logger: logger}
}

// ListGalleryItems handles GET /gallery?page=&limit=&category=&type=
func (h *GalleryHandler) ListGalleryItems(c *gin.Context) {
	q := usecasecontract.GalleryQuery{
		Category: queryString(c, "category"),
		Type:     queryString(c, "type"),
		Page:     utils.ParseIntOr(c.Query("page"), 1),
		Limit:    utils.ParseIntOr(c.Query("limit"), usecase.DefaultGalleryLimit),
	}
	page, err := h.galleryUsecase.ListGalleryItems(c.Request.Context(), caller(c), q)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PageResponse{Data: dto.ToGalleryItemResponses(page.Items), Pagination: page.Pagination})
}

func (h *GalleryHandler) GetGalleryItem(c *gin.Context) {
	id, ok := PathID(c, "Gallery item")
	if !ok {
		return
	}
	item, err := h.galleryUsecase.GetGalleryItem(c.Request.Context(), caller(c), id)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToGalleryItemResponse(item))
}

func (h *GalleryHandler) CreateGalleryItem(c *gin.Context) {
	var req dto.GalleryItemRequest
	if !BindJSON(c, &req) {
		return
	}
	item, err := h.galleryUsecase.CreateGalleryItem(c.Request.Context(), caller(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToGalleryItemResponse(item))
}

func (h *GalleryHandler) UpdateGalleryItem(c *gin.Context) {
	id, ok := PathID(c, "Gallery item")
	if !ok {
		return
	}
	var req dto.GalleryItemRequest
	if !BindJSON(c, &req) {
		return
	}
	item, err := h.galleryUsecase.UpdateGalleryItem(c.Request.Context(), caller(c), id, req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToGalleryItemResponse(item))
}

func (h *GalleryHandler) DeleteGalleryItem(c *gin.Context) {
	id, ok := PathID(c, "Gallery item")
	if !ok {
		return
	}
	if err := h.galleryUsecase.DeleteGalleryItem(c.Request.Context(), caller(c), id); err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
