package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	handler "github.com/judoclub/clubsite/internal/handler/http"
	"github.com/judoclub/clubsite/internal/infrastructure/export"
	"github.com/judoclub/clubsite/internal/infrastructure/jwt"
	"github.com/judoclub/clubsite/internal/infrastructure/logger"
	passwordservice "github.com/judoclub/clubsite/internal/infrastructure/password_service"
	"github.com/judoclub/clubsite/internal/infrastructure/repository/memory"
	"github.com/judoclub/clubsite/internal/infrastructure/uuidgen"
	"github.com/judoclub/clubsite/internal/infrastructure/validator"
	"github.com/judoclub/clubsite/internal/seed"
	"github.com/judoclub/clubsite/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	engine      *gin.Engine
	adminToken  string
	memberToken string
}

// newTestServer wires the full router over seeded in-memory storage.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repos := memory.NewRepositories(memory.NewStore())
	hasher := passwordservice.NewHasherWithCost(bcrypt.MinCost)
	_, err := seed.Seed(context.Background(), repos, hasher)
	require.NoError(t, err)

	log := logger.NewSlogLoggerTo(io.Discard, "error")
	v := validator.NewValidator()
	tokens := jwt.NewJWTService(jwt.NewJWTManager("test-secret", time.Hour, uuidgen.NewGenerator()))

	uc := handler.Usecases{
		User:           usecase.NewUserUsecase(repos.Users, hasher, tokens, log, v),
		Instructor:     usecase.NewInstructorUseCase(repos.Instructors, repos.Schedules, v, log),
		Schedule:       usecase.NewScheduleUseCase(repos.Schedules, repos.Instructors, repos.Registrations, v, log),
		News:           usecase.NewNewsUseCase(repos.News, v, log),
		Event:          usecase.NewEventUseCase(repos.Events, v, log),
		Gallery:        usecase.NewGalleryUseCase(repos.Gallery, v, log),
		Registration:   usecase.NewRegistrationUseCase(repos.Registrations, repos.Schedules, repos.Users, export.NewXLSXExporter(), v, log),
		ContactMessage: usecase.NewContactMessageUseCase(repos.ContactMessages, v, log),
		Stats:          usecase.NewStatsUseCase(repos, log),
	}
	engine := gin.New()
	handler.NewRouter(uc, log, handler.Options{AllowedOrigins: []string{"http://localhost:5173"}}).SetupRoutes(engine)

	s := &testServer{engine: engine}
	s.adminToken = s.login(t, seed.AdminEmail, seed.AdminPassword)
	s.memberToken = s.login(t, seed.UserEmail, seed.UserPassword)
	return s
}

func (s *testServer) login(t *testing.T, email, password string) string {
	t.Helper()
	w := doJSON(s.engine, http.MethodPost, "/api/login_check", map[string]string{"username": email, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func doRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeObject(t *testing.T, body []byte) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func decodeArray(t *testing.T, body []byte) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodGet, "/healthz", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = doJSON(s.engine, http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "clubsite_http_requests_total")
}

func TestCreateScheduleAsAdmin(t *testing.T) {
	s := newTestServer(t)
	payload := map[string]interface{}{
		"dayOfWeek": "monday",
		"startTime": "17:30",
		"endTime":   "18:30",
		"level":     "kids",
		"price":     "25.00",
	}

	w := doJSON(s.engine, http.MethodPost, "/api/schedules", payload, s.adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeObject(t, w.Body.Bytes())
	assert.Greater(t, body["id"].(float64), float64(0))
	assert.Equal(t, "monday", body["dayOfWeek"])
	assert.Equal(t, "17:30", body["startTime"])
	assert.Equal(t, "18:30", body["endTime"])
	assert.Equal(t, "kids", body["level"])
	assert.Equal(t, "25.00", body["price"])

	w = doJSON(s.engine, http.MethodGet, fmt.Sprintf("/api/schedules/%d", int64(body["id"].(float64))), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	payload["dayOfWeek"] = "someday"
	w = doJSON(s.engine, http.MethodPost, "/api/schedules", payload, s.adminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeObject(t, w.Body.Bytes())["errors"].([]interface{})
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0].(string), "dayOfWeek:"), errs[0])
}

func TestScheduleWritesRequireAdmin(t *testing.T) {
	s := newTestServer(t)
	payload := map[string]string{"dayOfWeek": "monday", "startTime": "17:30", "endTime": "18:30", "level": "kids"}

	w := doJSON(s.engine, http.MethodPost, "/api/schedules", payload, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(s.engine, http.MethodPost, "/api/schedules", payload, s.memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Access denied"}`, w.Body.String())
}

func TestUnknownIDIsNotFound(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodGet, "/api/schedules/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Schedule not found"}`, w.Body.String())

	w = doJSON(s.engine, http.MethodGet, "/api/schedules/abc", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedJSONIsBadRequest(t *testing.T) {
	s := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPost, "/api/news", strings.NewReader(`{"title":`))
	req.Header.Set("Authorization", "Bearer "+s.adminToken)
	w := doRequest(s.engine, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNewsValidationReportsEveryViolation(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodPost, "/api/news", map[string]string{
		"title":    "",
		"content":  "Body",
		"category": strings.Repeat("x", 101),
	}, s.adminToken)
	require.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeObject(t, w.Body.Bytes())["errors"].([]interface{})
	var fields []string
	for _, e := range errs {
		fields = append(fields, strings.SplitN(e.(string), ":", 2)[0])
	}
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "category")
}

func TestNewsPaginationClamps(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodGet, "/api/news?limit=1000&page=-3", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	pagination := decodeObject(t, w.Body.Bytes())["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["page"])
	assert.Equal(t, float64(50), pagination["limit"])
	assert.Equal(t, float64(2), pagination["total"])
	assert.Equal(t, float64(1), pagination["pages"])

	w = doJSON(s.engine, http.MethodGet, "/api/news?limit=0", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeObject(t, w.Body.Bytes())
	pagination = body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["limit"])
	assert.Equal(t, float64(2), pagination["pages"])
	assert.Len(t, body["data"], 1)
}

func TestGalleryHidesInactiveItems(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodPost, "/api/gallery", map[string]interface{}{
		"title":  "Archive",
		"type":   "photo",
		"url":    "https://example.com/archive.jpg",
		"active": false,
	}, s.adminToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	path := fmt.Sprintf("/api/gallery/%d", int64(decodeObject(t, w.Body.Bytes())["id"].(float64)))

	w = doJSON(s.engine, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(s.engine, http.MethodGet, path, nil, s.memberToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(s.engine, http.MethodGet, path, nil, s.adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s.engine, http.MethodGet, "/api/gallery", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeObject(t, w.Body.Bytes())["pagination"].(map[string]interface{})["total"])
	w = doJSON(s.engine, http.MethodGet, "/api/gallery", nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), decodeObject(t, w.Body.Bytes())["pagination"].(map[string]interface{})["total"])
}

func TestContactMessageIsMarkedRead(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodPost, "/api/contact-messages", map[string]string{
		"name":    "Luc",
		"email":   "luc@example.com",
		"subject": "cours",
		"message": "Bonjour",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeObject(t, w.Body.Bytes())
	assert.Equal(t, "unread", created["status"])
	path := fmt.Sprintf("/api/contact-messages/%d", int64(created["id"].(float64)))

	w = doJSON(s.engine, http.MethodGet, path, nil, s.memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	for i := 0; i < 2; i++ {
		w = doJSON(s.engine, http.MethodGet, path, nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "read", decodeObject(t, w.Body.Bytes())["status"])
	}

	w = doJSON(s.engine, http.MethodPatch, path+"/status", map[string]string{"status": "replied"}, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "replied", decodeObject(t, w.Body.Bytes())["status"])
}

func TestMemberRegistrationIgnoresStatus(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodPost, "/api/registrations", map[string]interface{}{
		"scheduleId": 2,
		"status":     "validated",
		"notes":      "vip",
	}, s.memberToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeObject(t, w.Body.Bytes())
	assert.Equal(t, "pending", body["status"])
	assert.NotContains(t, body, "notes")
	assert.NotContains(t, body, "medicalCertificateFile")

	w = doJSON(s.engine, http.MethodGet, fmt.Sprintf("/api/registrations/%d", int64(body["id"].(float64))), nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	adminView := decodeObject(t, w.Body.Bytes())
	assert.Equal(t, "pending", adminView["status"])
	assert.Contains(t, adminView, "notes")
	assert.Nil(t, adminView["notes"])
	assert.Contains(t, adminView, "medicalCertificateFile")
}

func TestRegistrationListsByCaller(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodPost, "/api/register", map[string]string{
		"email": "paul@example.com", "password": "secret1", "firstName": "Paul", "lastName": "Other",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	otherToken := s.login(t, "paul@example.com", "secret1")

	w = doJSON(s.engine, http.MethodGet, "/api/registrations", nil, s.memberToken)
	require.Equal(t, http.StatusOK, w.Code)
	own := decodeArray(t, w.Body.Bytes())
	require.Len(t, own, 1)
	assert.NotContains(t, own[0], "notes")

	w = doJSON(s.engine, http.MethodGet, "/api/registrations", nil, otherToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeArray(t, w.Body.Bytes()))

	w = doJSON(s.engine, http.MethodGet, "/api/registrations/1", nil, otherToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(s.engine, http.MethodGet, "/api/registrations?status=pending", nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	page := decodeObject(t, w.Body.Bytes())
	data := page["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Contains(t, first, "notes")
	assert.Equal(t, seed.UserEmail, first["user"].(map[string]interface{})["email"])

	w = doJSON(s.engine, http.MethodGet, "/api/registrations", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeleteScheduleCascadesToRegistrations(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodGet, "/api/registrations/1", nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(s.engine, http.MethodDelete, "/api/schedules/2", nil, s.adminToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(s.engine, http.MethodGet, "/api/registrations/1", nil, s.adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(s.engine, http.MethodDelete, "/api/schedules/2", nil, s.adminToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportRegistrations(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodGet, "/api/registrations/export", nil, s.memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(s.engine, http.MethodGet, "/api/registrations/export", nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "registrations-")
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestDashboardStats(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodGet, "/api/admin/stats", nil, s.memberToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(s.engine, http.MethodGet, "/api/admin/stats", nil, s.adminToken)
	require.Equal(t, http.StatusOK, w.Code)
	stats := decodeObject(t, w.Body.Bytes())
	assert.Equal(t, float64(2), stats["totalNews"])
	assert.Equal(t, float64(2), stats["totalPhotos"])
	assert.Equal(t, float64(1), stats["pendingMessages"])
	assert.Equal(t, float64(1), stats["pendingRegistrations"])
}

func TestListsKeepTheirShape(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(s.engine, http.MethodGet, "/api/schedules?dayOfWeek=Friday", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	schedules := decodeArray(t, w.Body.Bytes())
	require.Len(t, schedules, 1)
	assert.Equal(t, "Pierre Durand", schedules[0]["instructor"].(map[string]interface{})["name"])

	w = doJSON(s.engine, http.MethodGet, "/api/instructors", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeArray(t, w.Body.Bytes()), 2)

	w = doJSON(s.engine, http.MethodGet, "/api/events", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	events := decodeArray(t, w.Body.Bytes())
	require.Len(t, events, 1)
	assert.Equal(t, "2024-11-03 08:00:00", events[0]["date"])
}

func TestHugePageReturnsEmptyPage(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/news", "/api/gallery", "/api/contact-messages", "/api/registrations"} {
		w := doJSON(s.engine, http.MethodGet, path+"?page=9223372036854775807", nil, s.adminToken)
		require.Equal(t, http.StatusOK, w.Code, path)
		body := decodeObject(t, w.Body.Bytes())
		assert.Empty(t, body["data"], path)
		assert.Contains(t, body, "pagination", path)
	}

	w := doJSON(s.engine, http.MethodGet, "/api/gallery?page=461168601842738791&limit=20", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeObject(t, w.Body.Bytes())["data"])
}
