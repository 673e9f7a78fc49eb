package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"indodjija/models"
	"indodjija/services/booking"
	"indodjija/utils"
)

// BookingHandler exposes the public booking flow.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(svc booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

type startSessionInput struct {
	PackageID models.PackageID `json:"packageId" binding:"required"`
}

type approveInput struct {
	PaymentRef string `json:"paymentRef"`
}

// InitiateSession handles POST /api/booking/session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var input startSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.CodeValidation, "packageId is required", []string{"packageId"})
		return
	}
	resp, err := h.Service.StartSession(c.Request.Context(), input.PackageID)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// UpdateSession handles PATCH /api/booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var change models.DraftChange
	if err := c.ShouldBindJSON(&change); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.CodeValidation, "invalid booking change", nil)
		return
	}
	resp, err := h.Service.UpdateSession(c.Request.Context(), c.Param("sessionID"), change)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	resp, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Checkout handles POST /api/booking/session/:sessionID/checkout.
func (h *BookingHandler) Checkout(c *gin.Context) {
	resp, err := h.Service.Checkout(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ApprovePayment handles POST /api/booking/session/:sessionID/approve.
func (h *BookingHandler) ApprovePayment(c *gin.Context) {
	var input approveInput
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&input); err != nil {
			utils.JSONError(c, http.StatusBadRequest, booking.CodeValidation, "invalid approval payload", nil)
			return
		}
	}
	resp, err := h.Service.Approve(c.Request.Context(), c.Param("sessionID"), input.PaymentRef)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notice": models.InfoNotice("Booking discarded.")})
}

// GetCatalog handles GET /api/catalog.
func (h *BookingHandler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Catalog())
}

// GetAvailability handles GET /api/availability?package=&date=.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	pkg := models.PackageID(c.Query("package"))
	if pkg == "" {
		utils.JSONError(c, http.StatusBadRequest, booking.CodeValidation, "package is required", []string{"package"})
		return
	}
	slots, err := h.Service.Availability(c.Request.Context(), pkg, c.Query("date"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetCalendar handles GET /api/calendar?year=&month=. Missing parameters
// default to the current month in the venue timezone.
func (h *BookingHandler) GetCalendar(c *gin.Context) {
	var year, month int
	var err error
	if y := c.Query("year"); y != "" {
		if year, err = strconv.Atoi(y); err != nil || year < 1 {
			utils.JSONError(c, http.StatusBadRequest, booking.CodeValidation, "year must be a positive number", []string{"year"})
			return
		}
	}
	if m := c.Query("month"); m != "" {
		if month, err = strconv.Atoi(m); err != nil || month < 1 || month > 12 {
			utils.JSONError(c, http.StatusBadRequest, booking.CodeValidation, "month must be between 1 and 12", []string{"month"})
			return
		}
	}
	cal, err := h.Service.Calendar(c.Request.Context(), year, month)
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

// bookingErrorStatus maps a booking error code to its HTTP status.
func bookingErrorStatus(code string) int {
	switch code {
	case booking.CodeValidation, booking.CodeUnknownPackage:
		return http.StatusBadRequest
	case booking.CodeSessionNotFound:
		return http.StatusNotFound
	case booking.CodeSlotConflict, booking.CodeInvalidTransition:
		return http.StatusConflict
	case booking.CodePaymentFailed:
		return http.StatusBadGateway
	case booking.CodePersistenceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeBookingError(c *gin.Context, err error) {
	var be *booking.BookingError
	if errors.As(err, &be) {
		if be.Code == booking.CodePersistenceUnavailable || be.Code == booking.CodePaymentFailed {
			getLogger(c).Error("Booking request failed", zap.String("code", be.Code), zap.Error(err))
		}
		utils.JSONError(c, bookingErrorStatus(be.Code), be.Code, be.Message, be.Fields)
		return
	}
	getLogger(c).Error("Unexpected booking failure", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "internal", "Something went wrong, please try again.", nil)
}
