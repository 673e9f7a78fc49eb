package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"indodjija/models"
	"indodjija/services/booking"
	"indodjija/utils"
)

// stubService answers every call with err, or a minimal response.
type stubService struct {
	err          error
	lastRef      string
	lastChange   models.DraftChange
	calYear      int
	calMonth     int
	reservations []models.Reservation
}

func (s *stubService) resp(id string) (*models.BookingResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingResponse{Session: models.BookingSession{SessionID: id, State: models.StateDraft}}, nil
}

func (s *stubService) StartSession(ctx context.Context, pkg models.PackageID) (*models.BookingResponse, error) {
	return s.resp("new")
}

func (s *stubService) UpdateSession(ctx context.Context, id string, ch models.DraftChange) (*models.BookingResponse, error) {
	s.lastChange = ch
	return s.resp(id)
}

func (s *stubService) GetSession(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.resp(id)
}

func (s *stubService) Checkout(ctx context.Context, id string) (*models.BookingResponse, error) {
	return s.resp(id)
}

func (s *stubService) Approve(ctx context.Context, id, ref string) (*models.BookingResponse, error) {
	s.lastRef = ref
	return s.resp(id)
}

func (s *stubService) CancelSession(ctx context.Context, id string) error { return s.err }

func (s *stubService) Catalog() models.Catalog { return models.Catalog{Deposit: 4000} }

func (s *stubService) Availability(ctx context.Context, pkg models.PackageID, date string) (*models.AvailableSlots, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.AvailableSlots{}, nil
}

func (s *stubService) Calendar(ctx context.Context, year, month int) (*models.CalendarMonth, error) {
	s.calYear, s.calMonth = year, month
	if s.err != nil {
		return nil, s.err
	}
	return &models.CalendarMonth{}, nil
}

func (s *stubService) ListReservations(ctx context.Context, date string) ([]models.Reservation, error) {
	return s.reservations, s.err
}

func newBookingRouter(svc booking.BookingSessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(svc)
	r.POST("/session", h.InitiateSession)
	r.PATCH("/session/:sessionID", h.UpdateSession)
	r.GET("/session/:sessionID", h.GetSession)
	r.DELETE("/session/:sessionID", h.CancelSession)
	r.POST("/session/:sessionID/checkout", h.Checkout)
	r.POST("/session/:sessionID/approve", h.ApprovePayment)
	r.GET("/catalog", h.GetCatalog)
	r.GET("/availability", h.GetAvailability)
	r.GET("/calendar", h.GetCalendar)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestInitiateSession(t *testing.T) {
	r := newBookingRouter(&stubService{})

	w := do(r, http.MethodPost, "/session", `{"packageId":"kids"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/session", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, booking.CodeValidation, body.Code)
	assert.Equal(t, []string{"packageId"}, body.Fields)
}

func TestBookingErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{booking.CodeValidation, http.StatusBadRequest},
		{booking.CodeUnknownPackage, http.StatusBadRequest},
		{booking.CodeSessionNotFound, http.StatusNotFound},
		{booking.CodeSlotConflict, http.StatusConflict},
		{booking.CodeInvalidTransition, http.StatusConflict},
		{booking.CodePaymentFailed, http.StatusBadGateway},
		{booking.CodePersistenceUnavailable, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			svc := &stubService{err: &booking.BookingError{Code: tc.code, Message: "boom", Fields: []string{"date"}}}
			w := do(newBookingRouter(svc), http.MethodPost, "/session/abc/checkout", "")
			assert.Equal(t, tc.status, w.Code)

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.Equal(t, models.NoticeError, body.Notice.Type)
			assert.Equal(t, "boom", body.Notice.Message)
		})
	}
}

func TestUnexpectedErrorIsInternal(t *testing.T) {
	svc := &stubService{err: assert.AnError}
	w := do(newBookingRouter(svc), http.MethodGet, "/session/abc", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateSession_BindsChange(t *testing.T) {
	svc := &stubService{}
	w := do(newBookingRouter(svc), http.MethodPatch, "/session/abc", `{"date":"2025-06-20","children":12}`)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastChange.Date)
	assert.Equal(t, "2025-06-20", *svc.lastChange.Date)
	require.NotNil(t, svc.lastChange.Children)
	assert.Equal(t, 12, *svc.lastChange.Children)

	w = do(newBookingRouter(svc), http.MethodPatch, "/session/abc", `{"date":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApprovePayment_OptionalBody(t *testing.T) {
	svc := &stubService{}
	r := newBookingRouter(svc)

	w := do(r, http.MethodPost, "/session/abc/approve", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.lastRef)

	w = do(r, http.MethodPost, "/session/abc/approve", `{"paymentRef":"pi_123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pi_123", svc.lastRef)
}

func TestGetAvailability_RequiresPackage(t *testing.T) {
	r := newBookingRouter(&stubService{})
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/availability?date=2025-06-20", "").Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/availability?package=kids&date=2025-06-20", "").Code)
}

func TestGetCalendar_ParsesQuery(t *testing.T) {
	svc := &stubService{}
	r := newBookingRouter(svc)

	w := do(r, http.MethodGet, "/calendar?year=2025&month=7", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2025, svc.calYear)
	assert.Equal(t, 7, svc.calMonth)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/calendar?month=july", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/calendar?month=13", "").Code)

	// the service resolves the current month in venue time
	w = do(r, http.MethodGet, "/calendar", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.calYear)
	assert.Equal(t, 0, svc.calMonth)
}

func TestCancelSession(t *testing.T) {
	r := newBookingRouter(&stubService{})
	assert.Equal(t, http.StatusOK, do(r, http.MethodDelete, "/session/abc", "").Code)

	missing := &stubService{err: &booking.BookingError{Code: booking.CodeSessionNotFound, Message: "gone"}}
	assert.Equal(t, http.StatusNotFound, do(newBookingRouter(missing), http.MethodDelete, "/session/abc", "").Code)
}
