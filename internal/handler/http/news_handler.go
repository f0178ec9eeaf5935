package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	"github.com/judoclub/clubsite/internal/usecase"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

type NewsHandlerInterface interface {
	ListNews(*gin.Context)
	GetNews(*gin.Context)
	CreateNews(*gin.Context)
	UpdateNews(*gin.Context)
	DeleteNews(*gin.Context)
}

var _ NewsHandlerInterface = (*NewsHandler)(nil)

type NewsHandler struct {
	newsUsecase usecasecontract.INewsUseCase
	logger      usecasecontract.IAppLogger
}

func NewNewsHandler(newsUsecase usecasecontract.INewsUseCase, logger usecasecontract.IAppLogger) *NewsHandler {
	return &NewsHandler{newsUsecase: newsUsecase, logger: logger}
}

// ListNews handles GET /news?page=&limit=&category=&upcoming=
func (h *NewsHandler) ListNews(c *gin.Context) {
	q := usecasecontract.NewsQuery{
		Category: queryString(c, "category"),
		Upcoming: queryBool(c, "upcoming"),
		Page:     utils.ParseIntOr(c.Query("page"), 1),
		Limit:    utils.ParseIntOr(c.Query("limit"), usecase.DefaultNewsLimit),
	}
	page, err := h.newsUsecase.ListNews(c.Request.Context(), caller(c), q)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PageResponse{Data: dto.ToNewsResponses(page.News), Pagination: page.Pagination})
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	id, ok := PathID(c, "News")
	if !ok {
		return
	}
	news, err := h.newsUsecase.GetNews(c.Request.Context(), caller(c), id)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToNewsResponse(news))
}

func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req dto.NewsRequest
	if !BindJSON(c, &req) {
		return
	}
	news, err := h.newsUsecase.CreateNews(c.Request.Context(), caller(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToNewsResponse(news))
}

func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := PathID(c, "News")
	if !ok {
		return
	}
	var req dto.NewsRequest
	if !BindJSON(c, &req) {
		return
	}
	news, err := h.newsUsecase.UpdateNews(c.Request.Context(), caller(c), id, req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToNewsResponse(news))
}

func (h *NewsHandler) DeleteNews(c *gin.Context) {
	id, ok := PathID(c, "News")
	if !ok {
		return
	}
	if err := h.newsUsecase.DeleteNews(c.Request.Context(), caller(c), id); err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
