// File: indodjija/handlers/admin.go
package handlers

import (
	"crypto/subtle"
	"net/http"

	"indodjija/models"
	"indodjija/services/booking"
	"indodjija/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminCredentials is the single venue admin account.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AdminHandler serves the read-only admin portal.
type AdminHandler struct {
	Service booking.BookingSessionService
	Tokens  *utils.TokenIssuer
	Admin   AdminCredentials
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc booking.BookingSessionService, tokens *utils.TokenIssuer, admin AdminCredentials) *AdminHandler {
	return &AdminHandler{Service: svc, Tokens: tokens, Admin: admin}
}

// LoginHandler handles POST /api/admin/login.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var req models.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, booking.CodeValidation, "username and password are required", []string{"username", "password"})
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(ah.Admin.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(ah.Admin.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil || ah.Admin.PasswordHash == "" {
		zap.L().Warn("Admin login failed", zap.String("username", req.Username))
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "invalid credentials", nil)
		return
	}

	token, err := ah.Tokens.GenerateToken(req.Username, models.RoleAdmin)
	if err != nil {
		zap.L().Error("Failed to sign admin token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", "could not sign in", nil)
		return
	}
	c.JSON(http.StatusOK, models.AdminLoginResponse{
		Token:     token,
		ExpiresIn: int64(ah.Tokens.TTL().Seconds()),
	})
}

// ListReservationsHandler handles GET /api/admin/reservations?date=.
func (ah *AdminHandler) ListReservationsHandler(c *gin.Context) {
	reservations, err := ah.Service.ListReservations(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}
