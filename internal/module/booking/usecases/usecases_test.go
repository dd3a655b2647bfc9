package usecases_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"reservation-service/config"
	"reservation-service/internal/module/booking/mocks"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/models/response"
	"reservation-service/internal/module/booking/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logZap := log.SetupLogger()
	log.Init(logZap)
	logMock = log.GetLogger()
	cfg := config.BookingConfig{
		RequestTTLHours:  72,
		Currency:         "FCFA",
		CalendarCacheTTL: 10,
	}
	uc = usecases.New(repoMock, logMock, p, &cfg)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func makeCachedCalendar() response.Calendar {
	return response.Calendar{
		BookingsByDay: map[string][]response.Booking{},
		BlockedDates:  []string{"2026-02-14"},
		Period: response.CalendarPeriod{
			Year:  2026,
			Month: 2,
		},
		Stats: response.CalendarStats{Total: 0},
	}
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()

	listingID := uuid.New()
	providerID := uuid.New()
	clientID := uuid.New()
	listingMock := entity.Listing{
		ID:             listingID,
		ProviderID:     providerID,
		Title:          "lakeside cottage",
		BasePriceCents: 1500,
	}

	t.Run("success date range", func(t *testing.T) {
		ctx := context.Background()
		entryDate := date(2025, time.December, 20)
		departureDate := date(2025, time.December, 25)
		payloadMock := request.CreateBooking{
			ListingID:     listingID.String(),
			EntryDate:     &entryDate,
			DepartureDate: &departureDate,
		}

		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)
		repoMock.On("AcquireListingLock", ctx, listingID.String()).Return(func() error { return nil }, nil)
		repoMock.On("InsertBookingIfAvailable", ctx, mock.AnythingOfType("*entity.Booking")).Return(0, nil)
		repoMock.On("SetTaskScheduler", ctx, mock.AnythingOfType("time.Time"), mock.Anything).Return("task-1", nil)
		repoMock.On("UpdateBookingExpireTask", ctx, mock.AnythingOfType("string"), "task-1").Return(nil)
		repoMock.On("BumpCalendarVersion", ctx, listingID.String()).Return(nil)

		resp, err := uc.CreateBooking(ctx, &payloadMock, clientID.String())
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusRequested), resp.Status)
		assert.NotNil(t, resp.Nights)
		assert.Equal(t, int64(5), *resp.Nights)
		assert.Equal(t, "2025-12-20", *resp.EntryDate)
		assert.Equal(t, "2025-12-25", *resp.DepartureDate)
	})

	t.Run("error overlapping dates", func(t *testing.T) {
		ctx := context.Background()
		entryDate := date(2025, time.December, 23)
		departureDate := date(2025, time.December, 27)
		payloadMock := request.CreateBooking{
			ListingID:     listingID.String(),
			EntryDate:     &entryDate,
			DepartureDate: &departureDate,
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)
		repoMock.On("AcquireListingLock", ctx, listingID.String()).Return(func() error { return nil }, nil)
		repoMock.On("InsertBookingIfAvailable", ctx, mock.AnythingOfType("*entity.Booking")).Return(1, nil)

		_, err := uc.CreateBooking(ctx, &payloadMock, clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 409, errors.GetCode(err))
		assert.Equal(t, 1, errors.GetConflicts(err))
		repoMock.AssertNotCalled(t, "SetTaskScheduler", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error inverted dates", func(t *testing.T) {
		ctx := context.Background()
		entryDate := date(2025, time.December, 25)
		departureDate := date(2025, time.December, 20)
		payloadMock := request.CreateBooking{
			ListingID:     listingID.String(),
			EntryDate:     &entryDate,
			DepartureDate: &departureDate,
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)

		_, err := uc.CreateBooking(ctx, &payloadMock, clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetCode(err))
		repoMock.AssertNotCalled(t, "InsertBookingIfAvailable", mock.Anything, mock.Anything)
	})

	t.Run("error mixed shapes", func(t *testing.T) {
		ctx := context.Background()
		entryDate := date(2025, time.December, 20)
		departureDate := date(2025, time.December, 25)
		scheduledAt := date(2025, time.December, 21)
		payloadMock := request.CreateBooking{
			ListingID:     listingID.String(),
			EntryDate:     &entryDate,
			DepartureDate: &departureDate,
			ScheduledAt:   &scheduledAt,
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)

		_, err := uc.CreateBooking(ctx, &payloadMock, clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetCode(err))
	})

	t.Run("error own listing", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.CreateBooking{ListingID: listingID.String()}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)

		_, err := uc.CreateBooking(ctx, &payloadMock, providerID.String())
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})

	t.Run("success fixed slot", func(t *testing.T) {
		ctx := context.Background()
		scheduledAt := date(2026, time.January, 5).Add(9 * time.Hour)
		payloadMock := request.CreateBooking{
			ListingID:    listingID.String(),
			ScheduledAt:  &scheduledAt,
			Time:         "09:00",
			DurationMins: 90,
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindListingByID", ctx, listingID.String()).Return(listingMock, nil)
		repoMock.On("InsertBooking", ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
		repoMock.On("SetTaskScheduler", ctx, mock.AnythingOfType("time.Time"), mock.Anything).Return("task-2", nil)
		repoMock.On("UpdateBookingExpireTask", ctx, mock.AnythingOfType("string"), "task-2").Return(nil)
		repoMock.On("BumpCalendarVersion", ctx, listingID.String()).Return(nil)

		resp, err := uc.CreateBooking(ctx, &payloadMock, clientID.String())
		assert.NoError(t, err)
		assert.Nil(t, resp.Nights)
		assert.NotNil(t, resp.ScheduledAt)
		assert.Equal(t, int64(90), *resp.DurationMins)
		repoMock.AssertNotCalled(t, "AcquireListingLock", mock.Anything, mock.Anything)
	})
}

func TestUpdateStatus(t *testing.T) {
	setup()
	defer teardown()

	bookingID := uuid.New()
	listingID := uuid.New()
	clientID := uuid.New()
	providerID := uuid.New()

	confirmedStay := entity.Booking{
		ID:            bookingID,
		ListingID:     listingID,
		ClientID:      clientID,
		ProviderID:    providerID,
		EntryDate:     sql.NullTime{Time: date(2025, time.December, 20), Valid: true},
		DepartureDate: sql.NullTime{Time: date(2025, time.December, 25), Valid: true},
		Nights:        sql.NullInt64{Int64: 5, Valid: true},
		PriceCents:    sql.NullInt64{Int64: 1500, Valid: true},
		Status:        entity.StatusConfirmed,
	}

	t.Run("success complete with settlement", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.UpdateStatus{Status: "COMPLETED"}
		trxMock := entity.Transaction{
			ID:          uuid.New(),
			UserID:      providerID,
			AmountCents: 7500,
			Currency:    "FCFA",
			Status:      "COMPLETED",
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(confirmedStay, nil)
		repoMock.On("CompleteBookingWithSettlement", ctx, mock.AnythingOfType("*entity.Booking"), int64(7500), "FCFA", mock.Anything).Return(trxMock, nil)
		repoMock.On("BumpCalendarVersion", ctx, listingID.String()).Return(nil)

		resp, err := uc.UpdateStatus(ctx, bookingID.String(), &payloadMock, providerID.String())
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusCompleted), resp.Status)
		assert.NotNil(t, resp.TransactionID)
		assert.Equal(t, trxMock.ID.String(), *resp.TransactionID)
	})

	t.Run("error complete without price", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.UpdateStatus{Status: "COMPLETED"}
		noPrice := confirmedStay
		noPrice.PriceCents = sql.NullInt64{}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(noPrice, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &payloadMock, providerID.String())
		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetCode(err))
		repoMock.AssertNotCalled(t, "CompleteBookingWithSettlement", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error already settled", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.UpdateStatus{Status: "COMPLETED"}
		settled := confirmedStay
		settled.TransactionID = uuid.NullUUID{UUID: uuid.New(), Valid: true}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(settled, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &payloadMock, providerID.String())
		assert.Error(t, err)
		assert.Equal(t, 409, errors.GetCode(err))
	})

	t.Run("error client confirms", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.UpdateStatus{Status: "CONFIRMED"}
		requested := confirmedStay
		requested.Status = entity.StatusRequested

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(requested, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &payloadMock, clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("error terminal status", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.UpdateStatus{Status: "CANCELLED"}
		rejected := confirmedStay
		rejected.Status = entity.StatusRejected

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(rejected, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &payloadMock, providerID.String())
		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetCode(err))
	})

	t.Run("error client cancels confirmed booking", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.UpdateStatus{Status: "CANCELLED"}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(confirmedStay, nil)

		_, err := uc.UpdateStatus(ctx, bookingID.String(), &payloadMock, clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})

	t.Run("success provider confirms request", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.UpdateStatus{Status: "CONFIRMED"}
		requested := confirmedStay
		requested.Status = entity.StatusRequested
		requested.ExpireTaskID = sql.NullString{String: "task-9", Valid: true}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(requested, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusConfirmed, (*int64)(nil)).Return(nil)
		repoMock.On("DeleteTaskScheduler", ctx, "task-9").Return(nil)
		repoMock.On("BumpCalendarVersion", ctx, listingID.String()).Return(nil)

		resp, err := uc.UpdateStatus(ctx, bookingID.String(), &payloadMock, providerID.String())
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusConfirmed), resp.Status)
		repoMock.AssertCalled(t, "DeleteTaskScheduler", ctx, "task-9")
	})
}

func TestCheckAvailability(t *testing.T) {
	setup()
	defer teardown()

	listingID := uuid.New()

	t.Run("success free window", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.CheckAvailability{
			ListingID:     listingID.String(),
			EntryDate:     date(2025, time.December, 26),
			DepartureDate: date(2025, time.December, 28),
		}

		repoMock.On("CountConflictingBookings", ctx, listingID.String(), payloadMock.EntryDate, payloadMock.DepartureDate, "").Return(0, nil)

		resp, err := uc.CheckAvailability(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.True(t, resp.Available)
		assert.Equal(t, 0, resp.ConflictCount)
		assert.Equal(t, int64(2), resp.Nights)

		// read only, asking twice gives the same answer
		again, err := uc.CheckAvailability(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.Equal(t, resp, again)
	})

	t.Run("success occupied window", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.CheckAvailability{
			ListingID:     listingID.String(),
			EntryDate:     date(2025, time.December, 23),
			DepartureDate: date(2025, time.December, 27),
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("CountConflictingBookings", ctx, listingID.String(), payloadMock.EntryDate, payloadMock.DepartureDate, "").Return(1, nil)

		resp, err := uc.CheckAvailability(ctx, &payloadMock)
		assert.NoError(t, err)
		assert.False(t, resp.Available)
		assert.Equal(t, 1, resp.ConflictCount)
	})

	t.Run("error inverted dates", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.CheckAvailability{
			ListingID:     listingID.String(),
			EntryDate:     date(2025, time.December, 28),
			DepartureDate: date(2025, time.December, 26),
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})

		_, err := uc.CheckAvailability(ctx, &payloadMock)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetCode(err))
		repoMock.AssertNotCalled(t, "CountConflictingBookings", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDeleteBooking(t *testing.T) {
	setup()
	defer teardown()

	bookingID := uuid.New()
	listingID := uuid.New()
	clientID := uuid.New()
	providerID := uuid.New()

	bookingMock := entity.Booking{
		ID:         bookingID,
		ListingID:  listingID,
		ClientID:   clientID,
		ProviderID: providerID,
		Status:     entity.StatusConfirmed,
	}

	t.Run("error confirmed booking", func(t *testing.T) {
		ctx := context.Background()

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		_, err := uc.DeleteBooking(ctx, bookingID.String(), clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
		repoMock.AssertNotCalled(t, "SoftDeleteBooking", mock.Anything, mock.Anything)
	})

	t.Run("success cancelled booking", func(t *testing.T) {
		ctx := context.Background()
		cancelled := bookingMock
		cancelled.Status = entity.StatusCancelled

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(cancelled, nil)
		repoMock.On("SoftDeleteBooking", ctx, bookingID.String()).Return(nil)
		repoMock.On("BumpCalendarVersion", ctx, listingID.String()).Return(nil)

		resp, err := uc.DeleteBooking(ctx, bookingID.String(), clientID.String())
		assert.NoError(t, err)
		assert.Equal(t, string(entity.StatusCancelled), resp.Status)
	})

	t.Run("error stranger", func(t *testing.T) {
		ctx := context.Background()

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		_, err := uc.DeleteBooking(ctx, bookingID.String(), uuid.New().String())
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})
}

func TestRateBooking(t *testing.T) {
	setup()
	defer teardown()

	bookingID := uuid.New()
	clientID := uuid.New()
	providerID := uuid.New()
	bookingMock := entity.Booking{
		ID:         bookingID,
		ListingID:  uuid.New(),
		ClientID:   clientID,
		ProviderID: providerID,
		Status:     entity.StatusCompleted,
	}

	t.Run("success", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.RateBooking{Rating: 4, Comment: "spotless"}
		savedMock := entity.Rating{
			BookingID: bookingID,
			ClientID:  clientID,
			Rating:    4,
			Comment:   sql.NullString{String: "spotless", Valid: true},
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("UpsertRating", ctx, mock.AnythingOfType("*entity.Rating")).Return(savedMock, nil)

		resp, err := uc.RateBooking(ctx, bookingID.String(), &payloadMock, clientID.String())
		assert.NoError(t, err)
		assert.Equal(t, 4, resp.Rating)
		assert.Equal(t, bookingID.String(), resp.BookingID)
		assert.NotNil(t, resp.Comment)
		assert.Equal(t, "spotless", *resp.Comment)
	})

	t.Run("error out of bounds", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.RateBooking{Rating: 6}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		_, err := uc.RateBooking(ctx, bookingID.String(), &payloadMock, clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 400, errors.GetCode(err))
		repoMock.AssertNotCalled(t, "UpsertRating", mock.Anything, mock.Anything)
	})
}

func TestGetCalendar(t *testing.T) {
	setup()
	defer teardown()

	providerID := uuid.New()
	listingID := uuid.New()
	providerMock := entity.User{ID: providerID, Role: entity.RoleProvider, Name: "amina"}

	t.Run("success provider month", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.Calendar{Year: 2026, Month: 1}
		start := date(2026, time.January, 1)
		end := start.AddDate(0, 1, 0).Add(-time.Second)

		bookingsMock := []entity.Booking{
			{
				ID:         uuid.New(),
				ListingID:  listingID,
				ClientID:   uuid.New(),
				ProviderID: providerID,
				Status:     entity.StatusRequested,
				ScheduledAt: sql.NullTime{
					Time:  date(2026, time.January, 5).Add(9 * time.Hour),
					Valid: true,
				},
			},
			{
				ID:            uuid.New(),
				ListingID:     listingID,
				ClientID:      uuid.New(),
				ProviderID:    providerID,
				Status:        entity.StatusConfirmed,
				EntryDate:     sql.NullTime{Time: date(2026, time.January, 10), Valid: true},
				DepartureDate: sql.NullTime{Time: date(2026, time.January, 12), Valid: true},
				Nights:        sql.NullInt64{Int64: 2, Valid: true},
			},
			{
				ID:         uuid.New(),
				ListingID:  listingID,
				ClientID:   uuid.New(),
				ProviderID: providerID,
				Status:     entity.StatusCompleted,
				EntryDate:  sql.NullTime{Time: date(2026, time.January, 20), Valid: true},
				DepartureDate: sql.NullTime{
					Time:  date(2026, time.January, 22),
					Valid: true,
				},
				Nights: sql.NullInt64{Int64: 2, Valid: true},
			},
		}
		confirmedMock := []entity.Booking{
			{
				EntryDate:     sql.NullTime{Time: date(2026, time.January, 10), Valid: true},
				DepartureDate: sql.NullTime{Time: date(2026, time.January, 12), Valid: true},
			},
		}

		repoMock.On("FindUserByID", ctx, providerID.String()).Return(providerMock, nil)
		repoMock.On("FindBookingsInWindow", ctx, "", providerID.String(), "", start, end).Return(bookingsMock, nil)
		repoMock.On("FindConfirmedRanges", ctx, "", providerID.String()).Return(confirmedMock, nil)

		resp, err := uc.GetCalendar(ctx, providerID.String(), &payloadMock)
		assert.NoError(t, err)
		assert.Len(t, resp.BookingsByDay, 3)
		assert.Len(t, resp.BookingsByDay["2026-01-05"], 1)
		assert.Len(t, resp.BookingsByDay["2026-01-10"], 1)
		assert.Len(t, resp.BookingsByDay["2026-01-20"], 1)
		assert.Equal(t, []string{"2026-01-10", "2026-01-11", "2026-01-12"}, resp.BlockedDates)
		assert.Equal(t, 3, resp.Stats.Total)
		assert.Equal(t, 1, resp.Stats.Requested)
		assert.Equal(t, 1, resp.Stats.Confirmed)
		assert.Equal(t, 1, resp.Stats.Completed)
		assert.Equal(t, 2026, resp.Period.Year)
		assert.Equal(t, 1, resp.Period.Month)
	})

	t.Run("error admin role", func(t *testing.T) {
		ctx := context.Background()
		adminID := uuid.New()
		payloadMock := request.Calendar{Year: 2026, Month: 1}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindUserByID", ctx, adminID.String()).Return(entity.User{ID: adminID, Role: entity.RoleAdmin}, nil)

		_, err := uc.GetCalendar(ctx, adminID.String(), &payloadMock)
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})

	t.Run("success cached listing month", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.Calendar{Year: 2026, Month: 2, ListingID: listingID.String()}
		cachedMock := entity.User{ID: providerID, Role: entity.RoleProvider}
		cacheKey := "calendar:" + providerID.String() + ":" + listingID.String() + ":2026-02:v7"
		cachedCalendar := makeCachedCalendar()

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindUserByID", ctx, providerID.String()).Return(cachedMock, nil)
		repoMock.On("GetCalendarVersion", ctx, listingID.String()).Return(int64(7), nil)
		repoMock.On("GetCalendarCache", ctx, cacheKey).Return(cachedCalendar, true, nil)

		resp, err := uc.GetCalendar(ctx, providerID.String(), &payloadMock)
		assert.NoError(t, err)
		assert.Equal(t, cachedCalendar, resp)
		repoMock.AssertNotCalled(t, "FindBookingsInWindow", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestListBookings(t *testing.T) {
	setup()
	defer teardown()

	clientID := uuid.New()
	clientMock := entity.User{ID: clientID, Role: entity.RoleClient, Name: "moussa"}

	t.Run("success client scope", func(t *testing.T) {
		ctx := context.Background()
		paramsMock := request.Params{Page: 0, Limit: 0}
		bookingsMock := []entity.Booking{
			{
				ID:         uuid.New(),
				ListingID:  uuid.New(),
				ClientID:   clientID,
				ProviderID: uuid.New(),
				Status:     entity.StatusRequested,
			},
		}

		repoMock.On("FindUserByID", ctx, clientID.String()).Return(clientMock, nil)
		repoMock.On("FindBookingsByClient", ctx, clientID.String(), 1, 20).Return(bookingsMock, 1, nil)

		resp, meta, err := uc.ListBookings(ctx, clientID.String(), &paramsMock)
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 20, meta.Limit)
		assert.Equal(t, 1, meta.TotalRows)
	})

	t.Run("error seller role", func(t *testing.T) {
		ctx := context.Background()
		sellerID := uuid.New()

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindUserByID", ctx, sellerID.String()).Return(entity.User{ID: sellerID, Role: entity.RoleSeller}, nil)

		_, _, err := uc.ListBookings(ctx, sellerID.String(), &request.Params{Page: 1, Limit: 10})
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})
}

func TestExpireBookingRequest(t *testing.T) {
	setup()
	defer teardown()

	bookingID := uuid.New()
	listingID := uuid.New()

	t.Run("success rejects stale request", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.BookingExpiration{BookingID: bookingID.String()}
		bookingMock := entity.Booking{
			ID:         bookingID,
			ListingID:  listingID,
			ClientID:   uuid.New(),
			ProviderID: uuid.New(),
			Status:     entity.StatusRequested,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBookingStatus", ctx, bookingID.String(), entity.StatusRejected, (*int64)(nil)).Return(nil)
		repoMock.On("BumpCalendarVersion", ctx, listingID.String()).Return(nil)

		err := uc.ExpireBookingRequest(ctx, &payloadMock)
		assert.NoError(t, err)
		repoMock.AssertCalled(t, "UpdateBookingStatus", ctx, bookingID.String(), entity.StatusRejected, (*int64)(nil))
	})

	t.Run("noop answered request", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.BookingExpiration{BookingID: bookingID.String()}
		bookingMock := entity.Booking{
			ID:        bookingID,
			ListingID: listingID,
			Status:    entity.StatusConfirmed,
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(bookingMock, nil)

		err := uc.ExpireBookingRequest(ctx, &payloadMock)
		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("noop deleted booking", func(t *testing.T) {
		ctx := context.Background()
		payloadMock := request.BookingExpiration{BookingID: bookingID.String()}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(entity.Booking{}, errors.NotFoundError("booking not found"))

		err := uc.ExpireBookingRequest(ctx, &payloadMock)
		assert.NoError(t, err)
	})
}

func TestUpdateBooking(t *testing.T) {
	setup()
	defer teardown()

	bookingID := uuid.New()
	listingID := uuid.New()
	clientID := uuid.New()
	providerID := uuid.New()

	requestedStay := entity.Booking{
		ID:            bookingID,
		ListingID:     listingID,
		ClientID:      clientID,
		ProviderID:    providerID,
		EntryDate:     sql.NullTime{Time: date(2025, time.December, 20), Valid: true},
		DepartureDate: sql.NullTime{Time: date(2025, time.December, 25), Valid: true},
		Nights:        sql.NullInt64{Int64: 5, Valid: true},
		Status:        entity.StatusRequested,
	}

	t.Run("success move dates", func(t *testing.T) {
		ctx := context.Background()
		entryDate := date(2026, time.January, 2)
		departureDate := date(2026, time.January, 4)
		payloadMock := request.UpdateBooking{
			EntryDate:     &entryDate,
			DepartureDate: &departureDate,
		}

		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(requestedStay, nil)
		repoMock.On("AcquireListingLock", ctx, listingID.String()).Return(func() error { return nil }, nil)
		repoMock.On("UpdateBookingIfAvailable", ctx, mock.AnythingOfType("*entity.Booking")).Return(0, nil)
		repoMock.On("BumpCalendarVersion", ctx, listingID.String()).Return(nil)

		resp, err := uc.UpdateBooking(ctx, bookingID.String(), &payloadMock, clientID.String())
		assert.NoError(t, err)
		assert.Equal(t, "2026-01-02", *resp.EntryDate)
		assert.Equal(t, int64(2), *resp.Nights)
	})

	t.Run("error provider edits unanswered request", func(t *testing.T) {
		ctx := context.Background()
		notes := "bringing tools"
		payloadMock := request.UpdateBooking{ProviderNotes: &notes}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(requestedStay, nil)

		_, err := uc.UpdateBooking(ctx, bookingID.String(), &payloadMock, providerID.String())
		assert.Error(t, err)
		assert.Equal(t, 403, errors.GetCode(err))
	})

	t.Run("error conflicting new dates", func(t *testing.T) {
		ctx := context.Background()
		entryDate := date(2026, time.January, 2)
		departureDate := date(2026, time.January, 4)
		payloadMock := request.UpdateBooking{
			EntryDate:     &entryDate,
			DepartureDate: &departureDate,
		}

		repoMock = new(mocks.Repositories)
		uc = usecases.New(repoMock, logMock, p, &config.BookingConfig{RequestTTLHours: 72, Currency: "FCFA"})
		repoMock.On("FindBookingByID", ctx, bookingID.String()).Return(requestedStay, nil)
		repoMock.On("AcquireListingLock", ctx, listingID.String()).Return(func() error { return nil }, nil)
		repoMock.On("UpdateBookingIfAvailable", ctx, mock.AnythingOfType("*entity.Booking")).Return(2, nil)

		_, err := uc.UpdateBooking(ctx, bookingID.String(), &payloadMock, clientID.String())
		assert.Error(t, err)
		assert.Equal(t, 409, errors.GetCode(err))
		assert.Equal(t, 2, errors.GetConflicts(err))
	})
}
