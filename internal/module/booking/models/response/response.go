package response

type UserServiceValidate struct {
	IsValid bool   `json:"is_valid"`
	UserID  string `json:"user_id"`
}

type Booking struct {
	ID               string  `json:"id"`
	ListingID        string  `json:"listing_id"`
	ClientID         string  `json:"client_id"`
	ProviderID       string  `json:"provider_id"`
	EntryDate        *string `json:"entry_date"`
	DepartureDate    *string `json:"departure_date"`
	Nights           *int64  `json:"nights"`
	ScheduledAt      *string `json:"scheduled_at"`
	Time             *string `json:"time"`
	DurationMins     *int64  `json:"duration_mins"`
	PriceCents       *int64  `json:"price_cents"`
	Status           string  `json:"status"`
	InterventionType *string `json:"intervention_type"`
	TransactionID    *string `json:"transaction_id"`
	ProviderNotes    *string `json:"provider_notes"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        *string `json:"updated_at"`
}

type Availability struct {
	Available     bool   `json:"available"`
	ConflictCount int    `json:"conflict_count"`
	Nights        int64  `json:"nights"`
	EntryDate     string `json:"entry_date"`
	DepartureDate string `json:"departure_date"`
}

type Rating struct {
	BookingID string  `json:"booking_id"`
	ClientID  string  `json:"client_id"`
	Rating    int     `json:"rating"`
	Comment   *string `json:"comment"`
}

type CalendarStats struct {
	Total     int `json:"total"`
	Requested int `json:"requested"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Completed int `json:"completed"`
}

type CalendarPeriod struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Calendar struct {
	BookingsByDay map[string][]Booking `json:"bookings_by_day"`
	BlockedDates  []string             `json:"blocked_dates"`
	Period        CalendarPeriod       `json:"period"`
	Stats         CalendarStats        `json:"stats"`
}
