package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"reservation-service/config"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/models/response"
	"reservation-service/internal/module/booking/repositories"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"
	"reservation-service/internal/pkg/log"
	"sort"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const TopicBookingNotification = "booking_notification"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	cfg     *config.BookingConfig
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, payload *request.CreateBooking, clientID string) (response.Booking, error)
	GetBooking(ctx context.Context, bookingID, callerID string) (response.Booking, error)
	ListBookings(ctx context.Context, userID string, params *request.Params) ([]response.Booking, helpers.PaginationMeta, error)
	UpdateBooking(ctx context.Context, bookingID string, payload *request.UpdateBooking, callerID string) (response.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, payload *request.UpdateStatus, callerID string) (response.Booking, error)
	CheckAvailability(ctx context.Context, payload *request.CheckAvailability) (response.Availability, error)
	RateBooking(ctx context.Context, bookingID string, payload *request.RateBooking, callerID string) (response.Rating, error)
	GetCalendar(ctx context.Context, userID string, payload *request.Calendar) (response.Calendar, error)
	DeleteBooking(ctx context.Context, bookingID, callerID string) (response.Booking, error)
	// queue
	DispatchNotification(ctx context.Context, payload *request.NotificationMessage) error
	// scheduler
	ExpireBookingRequest(ctx context.Context, payload *request.BookingExpiration) error
}

func New(repo repositories.Repositories, log log.Logger, publisher message.Publisher, cfg *config.BookingConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publisher,
		cfg:     cfg,
	}
}

// validateDateRange checks the stay window of a booking. Both dates must be
// present together and the departure must be strictly after the entry. Returns
// the night count, always >= 1 when a range is present.
func validateDateRange(entryDate, departureDate *time.Time) (int64, bool, error) {
	if entryDate == nil && departureDate == nil {
		return 0, false, nil
	}
	if entryDate == nil || departureDate == nil {
		return 0, false, errors.BadRequest("entry date and departure date must be provided together")
	}
	if !departureDate.After(*entryDate) {
		return 0, false, errors.BadRequest("departure date must be after entry date")
	}

	nights := int64(math.Ceil(departureDate.Sub(*entryDate).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights, true, nil
}

// settlementAmount resolves the amount credited to the provider wallet on
// completion: price per night times nights for stays, the flat price for
// fixed-slot appointments.
func settlementAmount(booking *entity.Booking, priceCents int64) int64 {
	if booking.Kind() == entity.KindDateRange && booking.Nights.Valid && booking.Nights.Int64 > 0 {
		return priceCents * booking.Nights.Int64
	}
	return priceCents
}

// validateTransition enforces the booking state machine and who may drive it.
func validateTransition(current, next entity.BookingStatus, isClient, isProvider, hasExplicitPrice bool) error {
	if !next.Valid() || next == entity.StatusRequested {
		return errors.BadRequest("invalid target status")
	}
	if current.Terminal() {
		return errors.BadRequest(fmt.Sprintf("booking is already %s", current))
	}

	switch next {
	case entity.StatusConfirmed:
		if !isProvider {
			return errors.ForbiddenError("only the listing provider can confirm a booking")
		}
		if current != entity.StatusRequested {
			return errors.BadRequest("only a requested booking can be confirmed")
		}
	case entity.StatusCancelled:
		// the provider can cancel at any pre-terminal state, the client only
		// while the request is unanswered
		if !isProvider && current != entity.StatusRequested {
			return errors.ForbiddenError("a confirmed booking can only be cancelled by the provider")
		}
	case entity.StatusRejected:
		if !isProvider {
			return errors.ForbiddenError("only the listing provider can reject a booking")
		}
	case entity.StatusCompleted:
		if current != entity.StatusConfirmed && !hasExplicitPrice {
			return errors.BadRequest("an unconfirmed booking can only be completed with an explicit price")
		}
	}
	return nil
}

// CreateBooking implements Usecase.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, clientID string) (response.Booking, error) {
	listing, err := u.repo.FindListingByID(ctx, payload.ListingID)
	if err != nil {
		return response.Booking{}, err
	}

	if listing.ProviderID.String() == clientID {
		return response.Booking{}, errors.ForbiddenError("cannot book your own listing")
	}

	clientUUID, err := uuid.Parse(clientID)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid client id")
	}

	nights, hasRange, err := validateDateRange(payload.EntryDate, payload.DepartureDate)
	if err != nil {
		return response.Booking{}, err
	}
	if hasRange && payload.ScheduledAt != nil {
		return response.Booking{}, errors.BadRequest("a booking is either a date-range stay or a fixed slot, not both")
	}

	booking := entity.Booking{
		ID:               uuid.New(),
		ListingID:        listing.ID,
		ClientID:         clientUUID,
		ProviderID:       listing.ProviderID,
		Status:           entity.StatusRequested,
		InterventionType: toNullString(payload.InterventionType),
		ProviderNotes:    toNullString(payload.ProviderNotes),
		CreatedAt:        time.Now().UTC(),
	}
	if payload.PriceCents != nil {
		booking.PriceCents = sql.NullInt64{Int64: *payload.PriceCents, Valid: true}
	}

	if hasRange {
		booking.EntryDate = sql.NullTime{Time: payload.EntryDate.UTC(), Valid: true}
		booking.DepartureDate = sql.NullTime{Time: payload.DepartureDate.UTC(), Valid: true}
		booking.Nights = sql.NullInt64{Int64: nights, Valid: true}

		unlock, err := u.repo.AcquireListingLock(ctx, listing.ID.String())
		if err != nil {
			return response.Booking{}, err
		}
		conflicts, err := u.repo.InsertBookingIfAvailable(ctx, &booking)
		if unlockErr := unlock(); unlockErr != nil {
			u.log.Warn(ctx, "error release listing lock", unlockErr)
		}
		if err != nil {
			return response.Booking{}, err
		}
		if conflicts > 0 {
			return response.Booking{}, errors.ConflictError("selected dates are not available", conflicts)
		}
	} else {
		if payload.ScheduledAt != nil {
			booking.ScheduledAt = sql.NullTime{Time: payload.ScheduledAt.UTC(), Valid: true}
		}
		booking.Time = toNullString(payload.Time)
		if payload.DurationMins > 0 {
			booking.DurationMins = sql.NullInt64{Int64: payload.DurationMins, Valid: true}
		}
		if err := u.repo.InsertBooking(ctx, &booking); err != nil {
			return response.Booking{}, err
		}
	}

	u.scheduleExpiry(ctx, &booking)
	u.invalidateCalendar(ctx, booking.ListingID.String())
	u.notify(ctx, &booking, booking.ProviderID.String(), "booking_requested", "new booking request received")

	return toBookingResponse(&booking), nil
}

// GetBooking implements Usecase.
func (u *usecase) GetBooking(ctx context.Context, bookingID, callerID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if booking.ClientID.String() != callerID && booking.ProviderID.String() != callerID {
		return response.Booking{}, errors.ForbiddenError("not a party to this booking")
	}
	return toBookingResponse(&booking), nil
}

// ListBookings implements Usecase. Scope follows the caller's role: clients
// see their own requests, providers see bookings on their listings.
func (u *usecase) ListBookings(ctx context.Context, userID string, params *request.Params) ([]response.Booking, helpers.PaginationMeta, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, helpers.PaginationMeta{}, err
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var (
		bookings []entity.Booking
		total    int
	)
	switch user.Role {
	case entity.RoleClient:
		bookings, total, err = u.repo.FindBookingsByClient(ctx, userID, page, limit)
	case entity.RoleProvider:
		bookings, total, err = u.repo.FindBookingsByProvider(ctx, userID, page, limit)
	case entity.RoleAdmin, entity.RoleSeller:
		return nil, helpers.PaginationMeta{}, errors.ForbiddenError("role not allowed for this operation")
	default:
		return nil, helpers.PaginationMeta{}, errors.ForbiddenError("role not allowed for this operation")
	}
	if err != nil {
		return nil, helpers.PaginationMeta{}, err
	}

	resp := make([]response.Booking, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}
	return resp, helpers.BuildPaginationMeta(page, limit, total), nil
}

// UpdateBooking implements Usecase. Changing the stay dates re-runs the
// availability check with the booking itself excluded.
func (u *usecase) UpdateBooking(ctx context.Context, bookingID string, payload *request.UpdateBooking, callerID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	isClient := booking.ClientID.String() == callerID
	isProvider := booking.ProviderID.String() == callerID
	if !isClient && !isProvider {
		return response.Booking{}, errors.ForbiddenError("not a party to this booking")
	}
	if booking.Status.Terminal() {
		return response.Booking{}, errors.BadRequest(fmt.Sprintf("cannot modify a booking that is %s", booking.Status))
	}
	if booking.Status == entity.StatusRequested && !isClient {
		return response.Booking{}, errors.ForbiddenError("only the client can modify a request before confirmation")
	}

	previousListing := booking.ListingID.String()
	if payload.ListingID != "" && payload.ListingID != previousListing {
		listing, err := u.repo.FindListingByID(ctx, payload.ListingID)
		if err != nil {
			return response.Booking{}, err
		}
		booking.ListingID = listing.ID
		booking.ProviderID = listing.ProviderID
	}

	if payload.ScheduledAt != nil {
		booking.ScheduledAt = sql.NullTime{Time: payload.ScheduledAt.UTC(), Valid: true}
	}
	if payload.Time != nil {
		booking.Time = toNullString(*payload.Time)
	}
	if payload.DurationMins != nil {
		booking.DurationMins = sql.NullInt64{Int64: *payload.DurationMins, Valid: true}
	}
	if payload.PriceCents != nil {
		booking.PriceCents = sql.NullInt64{Int64: *payload.PriceCents, Valid: true}
	}
	if payload.InterventionType != nil {
		booking.InterventionType = toNullString(*payload.InterventionType)
	}
	if payload.ProviderNotes != nil {
		booking.ProviderNotes = toNullString(*payload.ProviderNotes)
	}

	nights, hasRange, err := validateDateRange(payload.EntryDate, payload.DepartureDate)
	if err != nil {
		return response.Booking{}, err
	}

	if hasRange {
		booking.EntryDate = sql.NullTime{Time: payload.EntryDate.UTC(), Valid: true}
		booking.DepartureDate = sql.NullTime{Time: payload.DepartureDate.UTC(), Valid: true}
		booking.Nights = sql.NullInt64{Int64: nights, Valid: true}

		unlock, err := u.repo.AcquireListingLock(ctx, booking.ListingID.String())
		if err != nil {
			return response.Booking{}, err
		}
		conflicts, err := u.repo.UpdateBookingIfAvailable(ctx, &booking)
		if unlockErr := unlock(); unlockErr != nil {
			u.log.Warn(ctx, "error release listing lock", unlockErr)
		}
		if err != nil {
			return response.Booking{}, err
		}
		if conflicts > 0 {
			return response.Booking{}, errors.ConflictError("new dates are not available", conflicts)
		}
	} else {
		if err := u.repo.UpdateBooking(ctx, &booking); err != nil {
			return response.Booking{}, err
		}
	}

	u.invalidateCalendar(ctx, previousListing)
	if booking.ListingID.String() != previousListing {
		u.invalidateCalendar(ctx, booking.ListingID.String())
	}

	return toBookingResponse(&booking), nil
}

// UpdateStatus implements Usecase. The COMPLETED path settles money into the
// provider wallet; status update and ledger insert commit as one unit in the
// repository.
func (u *usecase) UpdateStatus(ctx context.Context, bookingID string, payload *request.UpdateStatus, callerID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	isClient := booking.ClientID.String() == callerID
	isProvider := booking.ProviderID.String() == callerID
	if !isClient && !isProvider {
		return response.Booking{}, errors.ForbiddenError("not a party to this booking")
	}

	next := entity.BookingStatus(payload.Status)
	if err := validateTransition(booking.Status, next, isClient, isProvider, payload.PriceCents != nil); err != nil {
		return response.Booking{}, err
	}

	if next == entity.StatusCompleted {
		if booking.TransactionID.Valid {
			return response.Booking{}, errors.ConflictError("booking already settled", 0)
		}

		var priceCents int64
		switch {
		case payload.PriceCents != nil:
			priceCents = *payload.PriceCents
		case booking.PriceCents.Valid:
			priceCents = booking.PriceCents.Int64
		default:
			return response.Booking{}, errors.BadRequest("a price must be set to complete this booking")
		}
		booking.PriceCents = sql.NullInt64{Int64: priceCents, Valid: true}

		amount := settlementAmount(&booking, priceCents)
		description, _ := json.Marshal(map[string]interface{}{
			"type":       "BOOKING_COMPLETED",
			"booking_id": booking.ID.String(),
			"listing_id": booking.ListingID.String(),
			"nights":     booking.Nights.Int64,
		})

		trx, err := u.repo.CompleteBookingWithSettlement(ctx, &booking, amount, u.cfg.Currency, description)
		if err != nil {
			return response.Booking{}, err
		}
		booking.Status = entity.StatusCompleted
		booking.TransactionID = uuid.NullUUID{UUID: trx.ID, Valid: true}
	} else {
		if err := u.repo.UpdateBookingStatus(ctx, bookingID, next, payload.PriceCents); err != nil {
			return response.Booking{}, err
		}
		booking.Status = next
		if payload.PriceCents != nil {
			booking.PriceCents = sql.NullInt64{Int64: *payload.PriceCents, Valid: true}
		}
	}

	u.dropExpiry(ctx, &booking)
	u.invalidateCalendar(ctx, booking.ListingID.String())

	recipient := booking.ClientID.String()
	if isClient {
		recipient = booking.ProviderID.String()
	}
	u.notify(ctx, &booking, recipient, "booking_status_changed", fmt.Sprintf("booking is now %s", booking.Status))

	return toBookingResponse(&booking), nil
}

// CheckAvailability implements Usecase. Read only; repeated calls with no
// intervening writes return the same result.
func (u *usecase) CheckAvailability(ctx context.Context, payload *request.CheckAvailability) (response.Availability, error) {
	nights, _, err := validateDateRange(&payload.EntryDate, &payload.DepartureDate)
	if err != nil {
		return response.Availability{}, err
	}

	conflicts, err := u.repo.CountConflictingBookings(ctx, payload.ListingID, payload.EntryDate, payload.DepartureDate, payload.ExcludeBookingID)
	if err != nil {
		return response.Availability{}, err
	}

	return response.Availability{
		Available:     conflicts == 0,
		ConflictCount: conflicts,
		Nights:        nights,
		EntryDate:     payload.EntryDate.UTC().Format(time.RFC3339),
		DepartureDate: payload.DepartureDate.UTC().Format(time.RFC3339),
	}, nil
}

// RateBooking implements Usecase. One rating per booking, create-or-update.
func (u *usecase) RateBooking(ctx context.Context, bookingID string, payload *request.RateBooking, callerID string) (response.Rating, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Rating{}, err
	}

	if booking.ClientID.String() != callerID && booking.ProviderID.String() != callerID {
		return response.Rating{}, errors.ForbiddenError("not a party to this booking")
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		return response.Rating{}, errors.BadRequest("rating must be between 1 and 5")
	}

	callerUUID, err := uuid.Parse(callerID)
	if err != nil {
		return response.Rating{}, errors.BadRequest("invalid caller id")
	}

	rating := entity.Rating{
		BookingID: booking.ID,
		ClientID:  callerUUID,
		Rating:    payload.Rating,
		Comment:   toNullString(payload.Comment),
	}
	saved, err := u.repo.UpsertRating(ctx, &rating)
	if err != nil {
		return response.Rating{}, err
	}

	return response.Rating{
		BookingID: saved.BookingID.String(),
		ClientID:  saved.ClientID.String(),
		Rating:    saved.Rating,
		Comment:   nullStringPtr(saved.Comment),
	}, nil
}

// GetCalendar implements Usecase. Read-only projection: bookings grouped by
// day, blocked dates expanded from confirmed stays, counts per status.
func (u *usecase) GetCalendar(ctx context.Context, userID string, payload *request.Calendar) (response.Calendar, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.Calendar{}, err
	}

	now := time.Now().UTC()
	year := payload.Year
	if year == 0 {
		year = now.Year()
	}
	month := payload.Month
	if month == 0 {
		month = int(now.Month())
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)

	var clientID, providerID string
	switch user.Role {
	case entity.RoleClient:
		clientID = userID
	case entity.RoleProvider:
		providerID = userID
	case entity.RoleAdmin, entity.RoleSeller:
		return response.Calendar{}, errors.ForbiddenError("role not allowed for calendar")
	default:
		return response.Calendar{}, errors.ForbiddenError("role not allowed for calendar")
	}

	cacheKey := ""
	if payload.ListingID != "" {
		version, err := u.repo.GetCalendarVersion(ctx, payload.ListingID)
		if err == nil {
			cacheKey = fmt.Sprintf("calendar:%s:%s:%d-%02d:v%d", userID, payload.ListingID, year, month, version)
			if cached, ok, err := u.repo.GetCalendarCache(ctx, cacheKey); err == nil && ok {
				return cached, nil
			}
		}
	}

	bookings, err := u.repo.FindBookingsInWindow(ctx, clientID, providerID, payload.ListingID, start, end)
	if err != nil {
		return response.Calendar{}, err
	}

	bookingsByDay := make(map[string][]response.Booking)
	stats := response.CalendarStats{Total: len(bookings)}
	for i := range bookings {
		b := &bookings[i]

		var anchor time.Time
		switch {
		case b.ScheduledAt.Valid:
			anchor = b.ScheduledAt.Time
		case b.EntryDate.Valid:
			anchor = b.EntryDate.Time
		default:
			continue
		}
		key := anchor.UTC().Format("2006-01-02")
		bookingsByDay[key] = append(bookingsByDay[key], toBookingResponse(b))

		switch b.Status {
		case entity.StatusRequested:
			stats.Requested++
		case entity.StatusConfirmed:
			stats.Confirmed++
		case entity.StatusCancelled, entity.StatusRejected:
			stats.Cancelled++
		case entity.StatusCompleted:
			stats.Completed++
		}
	}

	confirmed, err := u.repo.FindConfirmedRanges(ctx, payload.ListingID, providerID)
	if err != nil {
		return response.Calendar{}, err
	}
	blockedDates := expandBlockedDates(confirmed)

	calendar := response.Calendar{
		BookingsByDay: bookingsByDay,
		BlockedDates:  blockedDates,
		Period: response.CalendarPeriod{
			Year:      year,
			Month:     month,
			StartDate: start.Format(time.RFC3339),
			EndDate:   end.Format(time.RFC3339),
		},
		Stats: stats,
	}

	if cacheKey != "" {
		if err := u.repo.SetCalendarCache(ctx, cacheKey, calendar); err != nil {
			u.log.Warn(ctx, "error cache calendar", err)
		}
	}
	return calendar, nil
}

// expandBlockedDates turns every confirmed stay range into the calendar days
// it covers, inclusive on both ends, de-duplicated and sorted.
func expandBlockedDates(confirmed []entity.Booking) []string {
	seen := make(map[string]struct{})
	for i := range confirmed {
		b := &confirmed[i]
		if !b.EntryDate.Valid || !b.DepartureDate.Valid {
			continue
		}
		day := b.EntryDate.Time.UTC().Truncate(24 * time.Hour)
		last := b.DepartureDate.Time.UTC().Truncate(24 * time.Hour)
		for !day.After(last) {
			seen[day.Format("2006-01-02")] = struct{}{}
			day = day.AddDate(0, 0, 1)
		}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// DeleteBooking implements Usecase. Confirmed and completed bookings cannot be
// removed.
func (u *usecase) DeleteBooking(ctx context.Context, bookingID, callerID string) (response.Booking, error) {
	booking, err := u.repo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if booking.ClientID.String() != callerID && booking.ProviderID.String() != callerID {
		return response.Booking{}, errors.ForbiddenError("not a party to this booking")
	}
	if booking.Status == entity.StatusConfirmed || booking.Status == entity.StatusCompleted {
		return response.Booking{}, errors.ForbiddenError("cannot delete a confirmed or completed booking")
	}

	if err := u.repo.SoftDeleteBooking(ctx, bookingID); err != nil {
		return response.Booking{}, err
	}

	u.dropExpiry(ctx, &booking)
	u.invalidateCalendar(ctx, booking.ListingID.String())

	return toBookingResponse(&booking), nil
}

// DispatchNotification implements Usecase. Invoked by the queue consumer.
func (u *usecase) DispatchNotification(ctx context.Context, payload *request.NotificationMessage) error {
	return u.repo.SendPushNotification(ctx, payload)
}

// ExpireBookingRequest implements Usecase. Runs from the delayed task; a
// request still unanswered after the TTL is rejected automatically.
func (u *usecase) ExpireBookingRequest(ctx context.Context, payload *request.BookingExpiration) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		if errors.GetCode(err) == 404 {
			return nil
		}
		return err
	}
	if booking.Status != entity.StatusRequested {
		return nil
	}

	if err := u.repo.UpdateBookingStatus(ctx, payload.BookingID, entity.StatusRejected, nil); err != nil {
		return err
	}
	booking.Status = entity.StatusRejected

	u.invalidateCalendar(ctx, booking.ListingID.String())
	u.notify(ctx, &booking, booking.ClientID.String(), "booking_request_expired", "booking request expired without an answer")
	return nil
}

func (u *usecase) scheduleExpiry(ctx context.Context, booking *entity.Booking) {
	payload, err := json.Marshal(request.BookingExpiration{BookingID: booking.ID.String()})
	if err != nil {
		u.log.Warn(ctx, "error marshal expiry payload", err)
		return
	}

	executionTime := time.Now().Add(time.Duration(u.cfg.RequestTTLHours) * time.Hour)
	taskID, err := u.repo.SetTaskScheduler(ctx, executionTime, payload)
	if err != nil {
		u.log.Warn(ctx, "error schedule booking expiry", err)
		return
	}

	if err := u.repo.UpdateBookingExpireTask(ctx, booking.ID.String(), taskID); err != nil {
		u.log.Warn(ctx, "error persist expiry task id", err)
		return
	}
	booking.ExpireTaskID = sql.NullString{String: taskID, Valid: true}
}

func (u *usecase) dropExpiry(ctx context.Context, booking *entity.Booking) {
	if !booking.ExpireTaskID.Valid {
		return
	}
	if err := u.repo.DeleteTaskScheduler(ctx, booking.ExpireTaskID.String); err != nil {
		u.log.Warn(ctx, "error delete expiry task", err)
	}
}

func (u *usecase) invalidateCalendar(ctx context.Context, listingID string) {
	if err := u.repo.BumpCalendarVersion(ctx, listingID); err != nil {
		u.log.Warn(ctx, "error invalidate calendar cache", err)
	}
}

// notify publishes a notification event for the push dispatcher. Failures are
// logged and never fail the booking operation.
func (u *usecase) notify(ctx context.Context, booking *entity.Booking, recipientID, event, text string) {
	payload, err := json.Marshal(request.NotificationMessage{
		BookingID:   booking.ID.String(),
		RecipientID: recipientID,
		Event:       event,
		Message:     text,
	})
	if err != nil {
		u.log.Warn(ctx, "error marshal notification", err)
		return
	}

	if err := u.publish.Publish(TopicBookingNotification, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Warn(ctx, "error publish notification", err)
	}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullInt64Ptr(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}

func nullTimePtr(nt sql.NullTime, layout string) *string {
	if !nt.Valid {
		return nil
	}
	s := nt.Time.UTC().Format(layout)
	return &s
}

func toBookingResponse(b *entity.Booking) response.Booking {
	resp := response.Booking{
		ID:               b.ID.String(),
		ListingID:        b.ListingID.String(),
		ClientID:         b.ClientID.String(),
		ProviderID:       b.ProviderID.String(),
		EntryDate:        nullTimePtr(b.EntryDate, "2006-01-02"),
		DepartureDate:    nullTimePtr(b.DepartureDate, "2006-01-02"),
		Nights:           nullInt64Ptr(b.Nights),
		ScheduledAt:      nullTimePtr(b.ScheduledAt, time.RFC3339),
		Time:             nullStringPtr(b.Time),
		DurationMins:     nullInt64Ptr(b.DurationMins),
		PriceCents:       nullInt64Ptr(b.PriceCents),
		Status:           string(b.Status),
		InterventionType: nullStringPtr(b.InterventionType),
		ProviderNotes:    nullStringPtr(b.ProviderNotes),
		CreatedAt:        b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        nullTimePtr(b.UpdatedAt, time.RFC3339),
	}
	if b.TransactionID.Valid {
		id := b.TransactionID.UUID.String()
		resp.TransactionID = &id
	}
	return resp
}
