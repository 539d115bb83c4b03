package notifyservice

// Вид события уведомления
type EventKind string

const (
	EventBookingCreated   EventKind = "booking_created"
	EventBookingConfirmed EventKind = "booking_confirmed"
	EventBookingCancelled EventKind = "booking_cancelled"
	EventBookingReminder  EventKind = "booking_reminder"
)

// Payload содержимое уведомления
// Текст для конкретного чат-канала и языка рендерит сервис уведомлений
type Payload struct {
	BookingID      int64  `json:"bookingId"`
	BarbershopName string `json:"barbershopName"`
	BarberName     string `json:"barberName"`
	Date           string `json:"date"` // "2006-01-02"
	Time           string `json:"time"` // "15:04"
	LeadMinutes    int    `json:"leadMinutes,omitempty"`
}

// notificationRequest тело запроса к сервису уведомлений
type notificationRequest struct {
	EventID     string    `json:"eventId"`
	RecipientID int64     `json:"recipientId"`
	EventKind   EventKind `json:"eventKind"`
	Payload     Payload   `json:"payload"`
}

// ErrorResponse модель ошибки от сервиса уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
