package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/igloo_sync/internal/config"
	"github.com/shenikar/igloo_sync/internal/models"
	"github.com/shenikar/igloo_sync/internal/position"
	"github.com/shenikar/igloo_sync/internal/service"
	"github.com/shenikar/igloo_sync/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockSyncService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockSyncService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func TestRoutes_RequireAPIKey(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Members().Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "GET", "/api/v1/members", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetFamily_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	state := models.GroupState{
		FamilyID:    "POLAR-1337",
		FamilyName:  "My Igloo",
		Members:     []models.Member{{ID: models.SelfID, Name: "YOU"}},
		Automations: []models.GeofenceRule{},
	}
	mockService.EXPECT().Family().Return(state).Times(1)

	w := makeRequest(router, "GET", "/api/v1/family", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.GroupState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "POLAR-1337", got.FamilyID)
	assert.Len(t, got.Members, 1)
}

func TestCreateFamily_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CreateFamily(gomock.Any()).Return("SNOWY-4242", nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/family/create", nil, apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"familyId":"SNOWY-4242"}`, w.Body.String())
}

func TestJoinFamily_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().JoinFamily(gomock.Any(), "snowy-4242").Return(nil).Times(1)
	mockService.EXPECT().Family().Return(models.GroupState{FamilyID: "SNOWY-4242"}).Times(1)

	w := makeRequest(router, "POST", "/api/v1/family/join", jsonBody(t, JoinFamilyRequest{Code: "snowy-4242"}), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"familyId":"SNOWY-4242"}`, w.Body.String())
}

func TestJoinFamily_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().JoinFamily(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/family/join", jsonBody(t, JoinFamilyRequest{Code: "ab"}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinFamily_InvalidCode(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		JoinFamily(gomock.Any(), "    a").
		Return(fmt.Errorf("%w: too short", service.ErrInvalidFamilyCode)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/family/join", jsonBody(t, JoinFamilyRequest{Code: "    a"}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid family code")
}

func TestGetMember_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	member := models.Member{ID: "member-b", Name: "BOB", Latitude: 1, Longitude: 2, Status: models.StatusHome}
	mockService.EXPECT().Member("member-b").Return(member, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/members/member-b", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.Member
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, member, got)
}

func TestGetMember_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		Member("ghost").
		Return(models.Member{}, fmt.Errorf("%w: ghost", service.ErrMemberNotFound)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/members/ghost", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitFix_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		SubmitFix(gomock.Any(), position.Fix{Latitude: 0, Longitude: 37.6, Accuracy: 5}).
		Return(nil).
		Times(1)

	body := bytes.NewBufferString(`{"latitude": 0, "longitude": 37.6, "accuracy": 5}`)
	w := makeRequest(router, "POST", "/api/v1/location/fix", body, apiKeyHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestSubmitFix_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SubmitFix(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	for _, body := range []string{
		`{"longitude": 37.6}`,
		`{"latitude": 91, "longitude": 37.6}`,
		`{"latitude": 10, "longitude": 181}`,
		`{"latitude": 10`,
	} {
		w := makeRequest(router, "POST", "/api/v1/location/fix", bytes.NewBufferString(body), apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestSubmitFix_ServiceErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("service: could not accept fix: %w", position.ErrStaleFix), http.StatusConflict},
		{fmt.Errorf("service: could not accept fix: %w", position.ErrNotTracking), http.StatusConflict},
		{service.ErrSensorUnsupported, http.StatusNotImplemented},
		{fmt.Errorf("service: could not accept fix: %w", position.ErrSensorBusy), http.StatusServiceUnavailable},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().SubmitFix(gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

		body := bytes.NewBufferString(`{"latitude": 10, "longitude": 20}`)
		w := makeRequest(router, "POST", "/api/v1/location/fix", body, apiKeyHeader)
		assert.Equal(t, tc.code, w.Code, tc.err.Error())
	}
}

func TestReportSensorError_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ReportSensorError(gomock.Any(), position.PermissionDenied).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/location/error", jsonBody(t, SensorErrorRequest{Kind: "PERMISSION_DENIED"}), apiKeyHeader)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestReportSensorError_UnknownKind(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().ReportSensorError(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/location/error", jsonBody(t, SensorErrorRequest{Kind: "EXPLODED"}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTracking(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	gomock.InOrder(
		mockService.EXPECT().StartTracking(gomock.Any()).Return(nil),
		mockService.EXPECT().TrackingStatus().Return(position.Status{Active: true}),
		mockService.EXPECT().StopTracking(gomock.Any()),
		mockService.EXPECT().TrackingStatus().Return(position.Status{LastError: position.Timeout}),
	)

	w := makeRequest(router, "POST", "/api/v1/tracking/start", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active":true,"ready":false}`, w.Body.String())

	w = makeRequest(router, "POST", "/api/v1/tracking/stop", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "GET", "/api/v1/tracking/status", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active":false,"ready":false,"last_error":"TIMEOUT"}`, w.Body.String())
}

func TestStartTracking_Unsupported(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		StartTracking(gomock.Any()).
		Return(fmt.Errorf("%w: UNSUPPORTED", service.ErrSensorUnsupported)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/tracking/start", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestListReports(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reports := []models.ActivityReport{
		{ID: "r-2", SenderID: "member-b", Type: models.ReportArrived, Timestamp: "09:06"},
		{ID: "r-1", SenderID: models.SelfID, Type: models.ReportOnRoad, Timestamp: "09:05"},
	}
	mockService.EXPECT().Reports().Return(reports).Times(1)

	w := makeRequest(router, "GET", "/api/v1/reports", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []models.ActivityReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, reports, got)
}

func TestBroadcast_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	report := models.ActivityReport{ID: "r-1", SenderID: models.SelfID, Type: models.ReportOnRoad, Timestamp: "09:05"}
	mockService.EXPECT().Broadcast(gomock.Any(), models.ReportOnRoad).Return(report, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/reports", jsonBody(t, BroadcastRequest{Type: "on_road"}), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"on_road"`)
}

func TestBroadcast_AutomationNotAllowed(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().Broadcast(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/reports", jsonBody(t, BroadcastRequest{Type: "automation"}), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAutomation_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		AddAutomation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, rule models.GeofenceRule) (models.GeofenceRule, error) {
			assert.Equal(t, "SCHOOL", rule.Name)
			assert.Equal(t, []string{models.SelfID}, rule.TriggerMemberIDs.IDs())
			assert.True(t, rule.ReceiverMemberIDs.IsAll())
			rule.ID = "rule-1"
			rule.Enabled = true
			return rule, nil
		}).
		Times(1)

	reqBody := CreateAutomationRequest{
		Name:             "SCHOOL",
		Latitude:         float64Ptr(55.75),
		Longitude:        float64Ptr(37.61),
		RadiusMeters:     150,
		TriggerMemberIDs: []string{models.SelfID},
	}
	w := makeRequest(router, "POST", "/api/v1/automations", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got models.GeofenceRule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "rule-1", got.ID)
	assert.True(t, got.Enabled)
	assert.Contains(t, w.Body.String(), `"receiverMemberIds":["all"]`)
}

func TestCreateAutomation_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().AddAutomation(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	reqBody := CreateAutomationRequest{Name: "NOWHERE", RadiusMeters: 100}
	w := makeRequest(router, "POST", "/api/v1/automations", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func float64Ptr(v float64) *float64 {
	return &v
}

func TestCreateAutomation_ZeroCoordinatesAreValid(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lng  float64
	}{
		{name: "prime meridian", lat: 51.4779, lng: 0},
		{name: "equator", lat: 0, lng: 32.58},
		{name: "null island", lat: 0, lng: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().
				AddAutomation(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, rule models.GeofenceRule) (models.GeofenceRule, error) {
					assert.Equal(t, tt.lat, rule.Latitude)
					assert.Equal(t, tt.lng, rule.Longitude)
					rule.ID = "rule-1"
					return rule, nil
				}).
				Times(1)

			body := bytes.NewBufferString(fmt.Sprintf(`{"name":"GREENWICH","lat":%v,"lng":%v,"radius":100}`, tt.lat, tt.lng))
			w := makeRequest(router, "POST", "/api/v1/automations", body, apiKeyHeader)

			assert.Equal(t, http.StatusCreated, w.Code)
		})
	}
}

func TestCreateAutomation_CentreOutOfRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().AddAutomation(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	reqBody := CreateAutomationRequest{Latitude: float64Ptr(91), Longitude: float64Ptr(0), RadiusMeters: 100}
	w := makeRequest(router, "POST", "/api/v1/automations", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleAutomation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		ToggleAutomation(gomock.Any(), "rule-1").
		Return(models.GeofenceRule{ID: "rule-1", Enabled: false}, nil).
		Times(1)
	mockService.EXPECT().
		ToggleAutomation(gomock.Any(), "missing").
		Return(models.GeofenceRule{}, fmt.Errorf("%w: missing", service.ErrRuleNotFound)).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/automations/rule-1/toggle", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"enabled":false`)

	w = makeRequest(router, "POST", "/api/v1/automations/missing/toggle", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToggleAutomationMember(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		ToggleAutomationMember(gomock.Any(), "rule-1", models.TargetReceiver, "member-b").
		Return(models.GeofenceRule{ID: "rule-1", ReceiverMemberIDs: models.NewSelector("member-b")}, nil).
		Times(1)

	reqBody := ToggleAutomationMemberRequest{Target: "receiver", MemberID: "member-b"}
	w := makeRequest(router, "POST", "/api/v1/automations/rule-1/members", jsonBody(t, reqBody), apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"receiverMemberIds":["member-b"]`)
}

func TestDeleteAutomation(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().DeleteAutomation(gomock.Any(), "rule-1").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/automations/rule-1", nil, apiKeyHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().
		UpdateProfile(gomock.Any(), "", "Seal").
		Return(models.Member{ID: models.SelfID, Name: "YOU", AvatarIcon: "Seal"}, nil).
		Times(1)

	w := makeRequest(router, "PUT", "/api/v1/profile", jsonBody(t, UpdateProfileRequest{Icon: "Seal"}), apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"avatarIcon":"Seal"`)

	w = makeRequest(router, "PUT", "/api/v1/profile", jsonBody(t, UpdateProfileRequest{}), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPalette(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	palette := `{"primary":"#6366f1","accent":"#38bdf8"}`
	gomock.InOrder(
		mockService.EXPECT().Palette(gomock.Any()).Return(nil, nil),
		mockService.EXPECT().SetPalette(gomock.Any(), json.RawMessage(palette)).Return(nil),
		mockService.EXPECT().Palette(gomock.Any()).Return(json.RawMessage(palette), nil),
	)

	w := makeRequest(router, "GET", "/api/v1/settings/palette", nil, apiKeyHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "PUT", "/api/v1/settings/palette", bytes.NewBufferString(palette), apiKeyHeader)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = makeRequest(router, "GET", "/api/v1/settings/palette", nil, apiKeyHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, palette, w.Body.String())
}

func TestSetPalette_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().SetPalette(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "PUT", "/api/v1/settings/palette", bytes.NewBufferString(`{"primary":`), apiKeyHeader)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetStats(gomock.Any()).Return(3, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"active_members":3}`, w.Body.String())
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetStats(gomock.Any()).Return(0, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/stats", nil, apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestAPIKeyAuthMiddleware_NoKeysConfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	router.Use(APIKeyAuthMiddleware(&config.Config{}, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
