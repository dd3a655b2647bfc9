package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	StatusRequested BookingStatus = "REQUESTED"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusRejected  BookingStatus = "REJECTED"
	StatusCompleted BookingStatus = "COMPLETED"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCancelled, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed out of s.
func (s BookingStatus) Terminal() bool {
	switch s {
	case StatusCancelled, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

type Role string

const (
	RoleClient   Role = "CLIENT"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
	RoleSeller   Role = "SELLER"
)

// BookingKind distinguishes the two mutually exclusive booking shapes: a
// fixed-slot appointment and a date-range stay.
type BookingKind int

const (
	KindFixedSlot BookingKind = iota
	KindDateRange
)

type Booking struct {
	ID               uuid.UUID      `db:"id"`
	ListingID        uuid.UUID      `db:"listing_id"`
	ClientID         uuid.UUID      `db:"client_id"`
	ProviderID       uuid.UUID      `db:"provider_id"`
	EntryDate        sql.NullTime   `db:"entry_date"`
	DepartureDate    sql.NullTime   `db:"departure_date"`
	Nights           sql.NullInt64  `db:"nights"`
	ScheduledAt      sql.NullTime   `db:"scheduled_at"`
	Time             sql.NullString `db:"time"`
	DurationMins     sql.NullInt64  `db:"duration_mins"`
	PriceCents       sql.NullInt64  `db:"price_cents"`
	Status           BookingStatus  `db:"status"`
	InterventionType sql.NullString `db:"intervention_type"`
	TransactionID    uuid.NullUUID  `db:"transaction_id"`
	ProviderNotes    sql.NullString `db:"provider_notes"`
	ExpireTaskID     sql.NullString `db:"expire_task_id"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
	DeletedAt        sql.NullTime   `db:"deleted_at"`
}

// Kind derives the booking shape from the stored row. Rows with both stay
// dates set are date-range bookings, everything else is a fixed slot.
func (b *Booking) Kind() BookingKind {
	if b.EntryDate.Valid && b.DepartureDate.Valid {
		return KindDateRange
	}
	return KindFixedSlot
}

type Listing struct {
	ID             uuid.UUID `db:"id"`
	ProviderID     uuid.UUID `db:"provider_id"`
	Title          string    `db:"title"`
	BasePriceCents int64     `db:"base_price_cents"`
	CreatedAt      time.Time `db:"created_at"`
}

type User struct {
	ID    uuid.UUID `db:"id"`
	Role  Role      `db:"role"`
	Name  string    `db:"name"`
	Email string    `db:"email"`
	Phone string    `db:"phone"`
}

type Wallet struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	BalanceCents int64     `db:"balance_cents"`
}

type Transaction struct {
	ID          uuid.UUID    `db:"id"`
	UserID      uuid.UUID    `db:"user_id"`
	WalletID    uuid.UUID    `db:"wallet_id"`
	AmountCents int64        `db:"amount_cents"`
	Currency    string       `db:"currency"`
	Status      string       `db:"status"`
	Description []byte       `db:"description"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   sql.NullTime `db:"updated_at"`
}

type Rating struct {
	BookingID uuid.UUID      `db:"booking_id"`
	ClientID  uuid.UUID      `db:"client_id"`
	Rating    int            `db:"rating"`
	Comment   sql.NullString `db:"comment"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
}
