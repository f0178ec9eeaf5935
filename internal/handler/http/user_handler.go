package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/judoclub/clubsite/internal/handler/http/dto"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	logger      usecasecontract.IAppLogger
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, logger usecasecontract.IAppLogger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

// Register handles user registration (signup)
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !BindJSON(c, &req) {
		return
	}

	user, err := h.userUsecase.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, dto.UserMessageResponse{
		Message: "User registered successfully",
		User:    dto.ToRegisteredUserResponse(user),
	})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !BindJSON(c, &req) {
		return
	}

	token, err := h.userUsecase.Login(c.Request.Context(), req.Identifier(), req.Password)
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.TokenResponse{Token: token})
}

// GetProfile returns the authenticated user's account
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUsecase.GetProfile(c.Request.Context(), caller(c))
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToProfileResponse(user))
}

// UpdateProfile handles updating the authenticated user's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.ProfileRequest
	if !BindJSON(c, &req) {
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.Request.Context(), caller(c), req.ToInput())
	if err != nil {
		ErrorHandler(c, h.logger, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.UserMessageResponse{
		Message: "Profile updated successfully",
		User:    dto.ToProfileResponse(user),
	})
}
