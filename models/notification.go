package models

// NoticeType mirrors the toast colours of the booking page.
type NoticeType string

const (
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
	NoticeInfo    NoticeType = "info"
)

// Notice is a user-facing message produced by a booking operation.
type Notice struct {
	Type    NoticeType `json:"type"`
	Message string     `json:"message"`
}

func InfoNotice(msg string) Notice    { return Notice{Type: NoticeInfo, Message: msg} }
func SuccessNotice(msg string) Notice { return Notice{Type: NoticeSuccess, Message: msg} }
func ErrorNotice(msg string) Notice   { return Notice{Type: NoticeError, Message: msg} }

// ReminderPayload is the body of a reservation reminder task.
type ReminderPayload struct {
	ReservationID string    `json:"reservationId"`
	PackageID     PackageID `json:"packageId"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"timeSlot"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
}
