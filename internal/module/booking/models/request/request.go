package request

import "time"

type CreateBooking struct {
	ListingID        string     `json:"listing_id" validate:"required,uuid4"`
	EntryDate        *time.Time `json:"entry_date"`
	DepartureDate    *time.Time `json:"departure_date"`
	ScheduledAt      *time.Time `json:"scheduled_at"`
	Time             string     `json:"time"`
	DurationMins     int64      `json:"duration_mins" validate:"omitempty,gt=0"`
	PriceCents       *int64     `json:"price_cents" validate:"omitempty,gt=0"`
	InterventionType string     `json:"intervention_type"`
	ProviderNotes    string     `json:"provider_notes"`
}

type UpdateBooking struct {
	ListingID        string     `json:"listing_id" validate:"omitempty,uuid4"`
	EntryDate        *time.Time `json:"entry_date"`
	DepartureDate    *time.Time `json:"departure_date"`
	ScheduledAt      *time.Time `json:"scheduled_at"`
	Time             *string    `json:"time"`
	DurationMins     *int64     `json:"duration_mins" validate:"omitempty,gt=0"`
	PriceCents       *int64     `json:"price_cents" validate:"omitempty,gt=0"`
	InterventionType *string    `json:"intervention_type"`
	ProviderNotes    *string    `json:"provider_notes"`
}

type UpdateStatus struct {
	Status     string `json:"status" validate:"required,oneof=CONFIRMED CANCELLED REJECTED COMPLETED"`
	PriceCents *int64 `json:"price_cents" validate:"omitempty,gt=0"`
}

type CheckAvailability struct {
	ListingID        string    `json:"listing_id" validate:"required,uuid4"`
	EntryDate        time.Time `json:"entry_date" validate:"required"`
	DepartureDate    time.Time `json:"departure_date" validate:"required"`
	ExcludeBookingID string    `json:"exclude_booking_id" validate:"omitempty,uuid4"`
}

type RateBooking struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type Params struct {
	Page  int `query:"page" json:"page"`
	Limit int `query:"limit" json:"limit"`
}

type Calendar struct {
	Year      int    `query:"year" json:"year"`
	Month     int    `query:"month" json:"month" validate:"omitempty,min=1,max=12"`
	ListingID string `query:"listing_id" json:"listing_id" validate:"omitempty,uuid4"`
}

// BookingExpiration is the payload of the delayed task that auto rejects a
// booking request nobody answered.
type BookingExpiration struct {
	BookingID string `json:"booking_id" validate:"required"`
}

type NotificationMessage struct {
	BookingID   string `json:"booking_id" validate:"required"`
	RecipientID string `json:"recipient_id" validate:"required"`
	Event       string `json:"event" validate:"required"`
	Message     string `json:"message" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}
