// File: indodjija/handlers/bundle.go
package handlers

import (
	"indodjija/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Tokens *utils.TokenIssuer

	// Catalog and read endpoints
	GetCatalog      gin.HandlerFunc
	GetAvailability gin.HandlerFunc
	GetCalendar     gin.HandlerFunc

	// Booking session endpoints
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	GetSession      gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	Checkout        gin.HandlerFunc
	ApprovePayment  gin.HandlerFunc

	// Admin endpoints
	AdminLogin            gin.HandlerFunc
	AdminListReservations gin.HandlerFunc
}

// NewHandlerBundle wires the booking and admin handlers.
func NewHandlerBundle(bh *BookingHandler, ah *AdminHandler) *HandlerBundle {
	return &HandlerBundle{
		Tokens: ah.Tokens,

		GetCatalog:      bh.GetCatalog,
		GetAvailability: bh.GetAvailability,
		GetCalendar:     bh.GetCalendar,

		InitiateSession: bh.InitiateSession,
		UpdateSession:   bh.UpdateSession,
		GetSession:      bh.GetSession,
		CancelSession:   bh.CancelSession,
		Checkout:        bh.Checkout,
		ApprovePayment:  bh.ApprovePayment,

		AdminLogin:            ah.LoginHandler,
		AdminListReservations: ah.ListReservationsHandler,
	}
}
