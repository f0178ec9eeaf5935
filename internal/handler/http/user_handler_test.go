package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	handler "github.com/judoclub/clubsite/internal/handler/http"
	dto "github.com/judoclub/clubsite/internal/handler/http/dto"
	"github.com/judoclub/clubsite/internal/handler/http/middleware"
	mocks "github.com/judoclub/clubsite/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(mockUsecase *mocks.MockUserUsecase) *gin.Engine {
	h := handler.NewUserHandler(mockUsecase, nil)
	r := gin.New()
	r.Use(middleware.AuthMiddleWare(mockUsecase, nil))
	r.POST("/register", h.Register)
	r.POST("/login_check", h.Login)
	r.GET("/profile", h.GetProfile)
	r.PUT("/profile", h.UpdateProfile)
	return r
}

func doJSON(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(mockUsecase)

	w := doJSON(r, http.MethodPost, "/register", map[string]string{
		"email":     "new@example.com",
		"password":  "secret1",
		"firstName": "Ana",
		"lastName":  "Silva",
	}, "")

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully")
	assert.Contains(t, w.Body.String(), "new@example.com")
	require.NotNil(t, mockUsecase.LastRegisterInput.FirstName)
	assert.Equal(t, "Ana", *mockUsecase.LastRegisterInput.FirstName)
	assert.Nil(t, mockUsecase.LastRegisterInput.Phone)
}

func TestRegister_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailRegister = true
	mockUsecase.RegisterViolations = []string{"firstName: This value should not be blank.", "lastName: This value should not be blank."}
	r := setupRouter(mockUsecase)

	w := doJSON(r, http.MethodPost, "/register", map[string]string{"email": "new@example.com"}, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp dto.ErrorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, mockUsecase.RegisterViolations, resp.Errors)
}

func TestRegister_MalformedJSON(t *testing.T) {
	r := setupRouter(mocks.NewMockUserUsecase())

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid JSON body")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(mockUsecase)

	w := doJSON(r, http.MethodPost, "/login_check", map[string]string{"username": "user@example.com", "password": "user123"}, "")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "mock_access_token", resp.Token)
	assert.Equal(t, "user@example.com", mockUsecase.LastLoginEmail)
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailLogin = true
	r := setupRouter(mockUsecase)

	w := doJSON(r, http.MethodPost, "/login_check", map[string]string{"username": "user@example.com", "password": "wrong"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials.")
}

func TestGetProfile(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(mockUsecase)

	w := doJSON(r, http.MethodGet, "/profile", nil, "mock_access_token")

	assert.Equal(t, http.StatusOK, w.Code)
	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(2), resp.ID)
	assert.Equal(t, []string{"user"}, resp.Roles)
	assert.Equal(t, int64(2), mockUsecase.LastProfileCaller.UserID)
}

func TestGetProfile_Anonymous(t *testing.T) {
	r := setupRouter(mocks.NewMockUserUsecase())

	w := doJSON(r, http.MethodGet, "/profile", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestGetProfile_BadToken(t *testing.T) {
	r := setupRouter(mocks.NewMockUserUsecase())

	w := doJSON(r, http.MethodGet, "/profile", nil, "forged")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestUpdateProfile(t *testing.T) {
	r := setupRouter(mocks.NewMockUserUsecase())

	w := doJSON(r, http.MethodPut, "/profile", map[string]string{"firstName": "Jeanne"}, "mock_access_token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Profile updated successfully")
	assert.Contains(t, w.Body.String(), "Jeanne")
}

func TestUpdateProfile_InternalError(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ShouldFailUpdateProfile = true
	r := setupRouter(mockUsecase)

	w := doJSON(r, http.MethodPut, "/profile", map[string]string{"firstName": "Jeanne"}, "mock_access_token")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}
