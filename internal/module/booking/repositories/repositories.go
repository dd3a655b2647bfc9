package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reservation-service/config"
	"reservation-service/internal/module/booking/models/entity"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/models/response"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/scheduler"
	"strings"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	redisclient "github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
	"go.elastic.co/apm"
)

type repositories struct {
	db             *sqlx.DB
	log            log.Logger
	httpClient     *circuit.HTTPClient
	redisClient    *redisclient.Client
	redsync        *redsync.Redsync
	schedClient    *asynq.Client
	schedInspector *asynq.Inspector
	cfg            *config.Config
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	SendPushNotification(ctx context.Context, payload *request.NotificationMessage) error
	// redis
	AcquireListingLock(ctx context.Context, listingID string) (func() error, error)
	GetCalendarVersion(ctx context.Context, listingID string) (int64, error)
	BumpCalendarVersion(ctx context.Context, listingID string) error
	GetCalendarCache(ctx context.Context, key string) (response.Calendar, bool, error)
	SetCalendarCache(ctx context.Context, key string, calendar response.Calendar) error
	// scheduler
	SetTaskScheduler(ctx context.Context, executionTime time.Time, payload []byte) (string, error)
	DeleteTaskScheduler(ctx context.Context, taskID string) error
	// db
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindListingByID(ctx context.Context, listingID string) (entity.Listing, error)
	FindUserByID(ctx context.Context, userID string) (entity.User, error)
	FindWalletByUserID(ctx context.Context, userID string) (entity.Wallet, error)
	CountConflictingBookings(ctx context.Context, listingID string, entryDate, departureDate time.Time, excludeBookingID string) (int, error)
	InsertBooking(ctx context.Context, booking *entity.Booking) error
	InsertBookingIfAvailable(ctx context.Context, booking *entity.Booking) (int, error)
	UpdateBooking(ctx context.Context, booking *entity.Booking) error
	UpdateBookingIfAvailable(ctx context.Context, booking *entity.Booking) (int, error)
	UpdateBookingStatus(ctx context.Context, bookingID string, status entity.BookingStatus, priceCents *int64) error
	UpdateBookingExpireTask(ctx context.Context, bookingID, taskID string) error
	CompleteBookingWithSettlement(ctx context.Context, booking *entity.Booking, amountCents int64, currency string, description []byte) (entity.Transaction, error)
	SoftDeleteBooking(ctx context.Context, bookingID string) error
	UpsertRating(ctx context.Context, rating *entity.Rating) (entity.Rating, error)
	FindBookingsByClient(ctx context.Context, clientID string, page, limit int) ([]entity.Booking, int, error)
	FindBookingsByProvider(ctx context.Context, providerID string, page, limit int) ([]entity.Booking, int, error)
	FindBookingsInWindow(ctx context.Context, clientID, providerID, listingID string, start, end time.Time) ([]entity.Booking, error)
	FindConfirmedRanges(ctx context.Context, listingID, providerID string) ([]entity.Booking, error)
}

func New(
	db *sqlx.DB,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	redisClient *redisclient.Client,
	rs *redsync.Redsync,
	schedClient *asynq.Client,
	schedInspector *asynq.Inspector,
	cfg *config.Config,
) Repositories {
	return &repositories{
		db:             db,
		log:            log,
		httpClient:     httpClient,
		redisClient:    redisClient,
		redsync:        rs,
		schedClient:    schedClient,
		schedInspector: schedInspector,
		cfg:            cfg,
	}
}

const bookingColumns = `id, listing_id, client_id, provider_id, entry_date, departure_date, nights,
	scheduled_at, time, duration_mins, price_cents, status, intervention_type, transaction_id,
	provider_notes, expire_task_id, created_at, updated_at, deleted_at`

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingByID", "db.postgresql.query")
	defer span.End()

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1 AND deleted_at IS NULL`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFoundError("booking not found")
	}
	if err != nil {
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindListingByID implements Repositories.
func (r *repositories) FindListingByID(ctx context.Context, listingID string) (entity.Listing, error) {
	span, ctx := apm.StartSpan(ctx, "FindListingByID", "db.postgresql.query")
	defer span.End()

	query := `SELECT id, provider_id, title, base_price_cents, created_at FROM listings WHERE id = $1`
	var listing entity.Listing
	err := r.db.GetContext(ctx, &listing, query, listingID)
	if err == sql.ErrNoRows {
		return entity.Listing{}, errors.NotFoundError("listing not found")
	}
	if err != nil {
		return entity.Listing{}, errors.InternalServerError("error find listing by id")
	}
	return listing, nil
}

// FindUserByID implements Repositories.
func (r *repositories) FindUserByID(ctx context.Context, userID string) (entity.User, error) {
	span, ctx := apm.StartSpan(ctx, "FindUserByID", "db.postgresql.query")
	defer span.End()

	query := `SELECT id, role, name, email, phone FROM users WHERE id = $1`
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err == sql.ErrNoRows {
		return entity.User{}, errors.NotFoundError("user not found")
	}
	if err != nil {
		return entity.User{}, errors.InternalServerError("error find user by id")
	}
	return user, nil
}

// FindWalletByUserID implements Repositories.
func (r *repositories) FindWalletByUserID(ctx context.Context, userID string) (entity.Wallet, error) {
	span, ctx := apm.StartSpan(ctx, "FindWalletByUserID", "db.postgresql.query")
	defer span.End()

	query := `SELECT id, user_id, balance_cents FROM wallets WHERE user_id = $1`
	var wallet entity.Wallet
	err := r.db.GetContext(ctx, &wallet, query, userID)
	if err == sql.ErrNoRows {
		return entity.Wallet{}, errors.NotFoundError("provider wallet not found")
	}
	if err != nil {
		return entity.Wallet{}, errors.InternalServerError("error find wallet by user id")
	}
	return wallet, nil
}

// countConflicts runs the interval overlap query inside q. Two ranges overlap
// when existing.entry_date <= new.departure_date AND
// existing.departure_date >= new.entry_date.
func (r *repositories) countConflicts(ctx context.Context, q sqlx.QueryerContext, listingID string, entryDate, departureDate time.Time, excludeBookingID string) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
		WHERE listing_id = $1
		AND deleted_at IS NULL
		AND status IN ('REQUESTED', 'CONFIRMED')
		AND entry_date IS NOT NULL AND departure_date IS NOT NULL
		AND entry_date <= $2 AND departure_date >= $3`
	args := []interface{}{listingID, departureDate, entryDate}

	if excludeBookingID != "" {
		query += ` AND id <> $4`
		args = append(args, excludeBookingID)
	}

	var count int
	if err := sqlx.GetContext(ctx, q, &count, query, args...); err != nil {
		return 0, errors.InternalServerError("error count conflicting bookings")
	}
	return count, nil
}

// CountConflictingBookings implements Repositories.
func (r *repositories) CountConflictingBookings(ctx context.Context, listingID string, entryDate, departureDate time.Time, excludeBookingID string) (int, error) {
	span, ctx := apm.StartSpan(ctx, "CountConflictingBookings", "db.postgresql.query")
	defer span.End()

	return r.countConflicts(ctx, r.db, listingID, entryDate, departureDate, excludeBookingID)
}

const insertBookingQuery = `
	INSERT INTO bookings (id, listing_id, client_id, provider_id, entry_date, departure_date, nights,
		scheduled_at, time, duration_mins, price_cents, status, intervention_type, provider_notes,
		expire_task_id, created_at)
	VALUES (:id, :listing_id, :client_id, :provider_id, :entry_date, :departure_date, :nights,
		:scheduled_at, :time, :duration_mins, :price_cents, :status, :intervention_type, :provider_notes,
		:expire_task_id, :created_at)`

// InsertBooking implements Repositories. Used for fixed-slot bookings where no
// availability window has to be held.
func (r *repositories) InsertBooking(ctx context.Context, booking *entity.Booking) error {
	span, ctx := apm.StartSpan(ctx, "InsertBooking", "db.postgresql.exec")
	defer span.End()

	if _, err := r.db.NamedExecContext(ctx, insertBookingQuery, booking); err != nil {
		return errors.InternalServerError("error insert booking")
	}
	return nil
}

// InsertBookingIfAvailable implements Repositories. The availability check and
// the insert run in one transaction holding a row lock on the listing, so two
// concurrent requests for the same listing cannot both pass the check. Returns
// the number of conflicting bookings; the row is inserted only when it is zero.
func (r *repositories) InsertBookingIfAvailable(ctx context.Context, booking *entity.Booking) (int, error) {
	span, ctx := apm.StartSpan(ctx, "InsertBookingIfAvailable", "db.postgresql.exec")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.InternalServerError("error starting transaction")
	}

	var listingID string
	err = tx.GetContext(ctx, &listingID, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, booking.ListingID)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return 0, errors.NotFoundError("listing not found")
		}
		return 0, errors.InternalServerError("error locking listing row")
	}

	conflicts, err := r.countConflicts(ctx, tx, booking.ListingID.String(), booking.EntryDate.Time, booking.DepartureDate.Time, "")
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	if conflicts > 0 {
		tx.Rollback()
		return conflicts, nil
	}

	if _, err := tx.NamedExecContext(ctx, insertBookingQuery, booking); err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.InternalServerError("error committing transaction")
	}
	return 0, nil
}

const updateBookingQuery = `
	UPDATE bookings
	SET listing_id = :listing_id, provider_id = :provider_id, entry_date = :entry_date,
		departure_date = :departure_date, nights = :nights, scheduled_at = :scheduled_at,
		time = :time, duration_mins = :duration_mins, price_cents = :price_cents,
		intervention_type = :intervention_type, provider_notes = :provider_notes,
		updated_at = now()
	WHERE id = :id`

// UpdateBooking implements Repositories.
func (r *repositories) UpdateBooking(ctx context.Context, booking *entity.Booking) error {
	span, ctx := apm.StartSpan(ctx, "UpdateBooking", "db.postgresql.exec")
	defer span.End()

	if _, err := r.db.NamedExecContext(ctx, updateBookingQuery, booking); err != nil {
		return errors.InternalServerError("error update booking")
	}
	return nil
}

// UpdateBookingIfAvailable implements Repositories. Same locking discipline as
// InsertBookingIfAvailable, with the booking itself excluded from the conflict
// count.
func (r *repositories) UpdateBookingIfAvailable(ctx context.Context, booking *entity.Booking) (int, error) {
	span, ctx := apm.StartSpan(ctx, "UpdateBookingIfAvailable", "db.postgresql.exec")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.InternalServerError("error starting transaction")
	}

	var listingID string
	err = tx.GetContext(ctx, &listingID, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, booking.ListingID)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return 0, errors.NotFoundError("listing not found")
		}
		return 0, errors.InternalServerError("error locking listing row")
	}

	conflicts, err := r.countConflicts(ctx, tx, booking.ListingID.String(), booking.EntryDate.Time, booking.DepartureDate.Time, booking.ID.String())
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	if conflicts > 0 {
		tx.Rollback()
		return conflicts, nil
	}

	if _, err := tx.NamedExecContext(ctx, updateBookingQuery, booking); err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error update booking")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.InternalServerError("error committing transaction")
	}
	return 0, nil
}

// UpdateBookingStatus implements Repositories.
func (r *repositories) UpdateBookingStatus(ctx context.Context, bookingID string, status entity.BookingStatus, priceCents *int64) error {
	span, ctx := apm.StartSpan(ctx, "UpdateBookingStatus", "db.postgresql.exec")
	defer span.End()

	query := `UPDATE bookings SET status = $2, price_cents = COALESCE($3, price_cents), updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, bookingID, status, priceCents); err != nil {
		return errors.InternalServerError("error update booking status")
	}
	return nil
}

// UpdateBookingExpireTask implements Repositories.
func (r *repositories) UpdateBookingExpireTask(ctx context.Context, bookingID, taskID string) error {
	span, ctx := apm.StartSpan(ctx, "UpdateBookingExpireTask", "db.postgresql.exec")
	defer span.End()

	query := `UPDATE bookings SET expire_task_id = $2, updated_at = now() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, bookingID, taskID); err != nil {
		return errors.InternalServerError("error update booking expire task")
	}
	return nil
}

// CompleteBookingWithSettlement implements Repositories. Status update, ledger
// insert, wallet credit and transaction linkage commit as one unit; the booking
// row lock plus the transaction_id guard make double settlement impossible.
func (r *repositories) CompleteBookingWithSettlement(ctx context.Context, booking *entity.Booking, amountCents int64, currency string, description []byte) (entity.Transaction, error) {
	span, ctx := apm.StartSpan(ctx, "CompleteBookingWithSettlement", "db.postgresql.exec")
	defer span.End()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Transaction{}, errors.InternalServerError("error starting transaction")
	}

	var locked struct {
		Status        entity.BookingStatus `db:"status"`
		TransactionID sql.NullString       `db:"transaction_id"`
	}
	err = tx.GetContext(ctx, &locked, `SELECT status, transaction_id FROM bookings WHERE id = $1 FOR UPDATE`, booking.ID)
	if err != nil {
		tx.Rollback()
		if err == sql.ErrNoRows {
			return entity.Transaction{}, errors.NotFoundError("booking not found")
		}
		return entity.Transaction{}, errors.InternalServerError("error locking booking row")
	}
	if locked.TransactionID.Valid {
		tx.Rollback()
		return entity.Transaction{}, errors.ConflictError("booking already settled", 0)
	}

	wallet, err := r.findWalletForUpdate(ctx, tx, booking.ProviderID.String())
	if err != nil {
		tx.Rollback()
		return entity.Transaction{}, err
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = $2, price_cents = $3, updated_at = now() WHERE id = $1`,
		booking.ID, entity.StatusCompleted, booking.PriceCents)
	if err != nil {
		tx.Rollback()
		return entity.Transaction{}, errors.InternalServerError("error update booking status")
	}

	trx := entity.Transaction{
		ID:          uuid.New(),
		UserID:      booking.ProviderID,
		WalletID:    wallet.ID,
		AmountCents: amountCents,
		Currency:    currency,
		Status:      "COMPLETED",
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, wallet_id, amount_cents, currency, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		trx.ID, trx.UserID, trx.WalletID, trx.AmountCents, trx.Currency, trx.Status, trx.Description, trx.CreatedAt)
	if err != nil {
		tx.Rollback()
		return entity.Transaction{}, errors.InternalServerError("error insert ledger transaction")
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance_cents = balance_cents + $2 WHERE id = $1`,
		wallet.ID, amountCents)
	if err != nil {
		tx.Rollback()
		return entity.Transaction{}, errors.InternalServerError("error credit wallet")
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET transaction_id = $2 WHERE id = $1`,
		booking.ID, trx.ID)
	if err != nil {
		tx.Rollback()
		return entity.Transaction{}, errors.InternalServerError("error link transaction to booking")
	}

	if err := tx.Commit(); err != nil {
		return entity.Transaction{}, errors.InternalServerError("error committing transaction")
	}
	return trx, nil
}

func (r *repositories) findWalletForUpdate(ctx context.Context, tx *sqlx.Tx, userID string) (entity.Wallet, error) {
	var wallet entity.Wallet
	err := tx.GetContext(ctx, &wallet, `SELECT id, user_id, balance_cents FROM wallets WHERE user_id = $1 FOR UPDATE`, userID)
	if err == sql.ErrNoRows {
		return entity.Wallet{}, errors.NotFoundError("provider wallet not found")
	}
	if err != nil {
		return entity.Wallet{}, errors.InternalServerError("error find wallet by user id")
	}
	return wallet, nil
}

// SoftDeleteBooking implements Repositories.
func (r *repositories) SoftDeleteBooking(ctx context.Context, bookingID string) error {
	span, ctx := apm.StartSpan(ctx, "SoftDeleteBooking", "db.postgresql.exec")
	defer span.End()

	query := `UPDATE bookings SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`
	if _, err := r.db.ExecContext(ctx, query, bookingID); err != nil {
		return errors.InternalServerError("error delete booking")
	}
	return nil
}

// UpsertRating implements Repositories. Ratings are 1:1 with a booking, keyed
// by booking_id, with create-or-update semantics.
func (r *repositories) UpsertRating(ctx context.Context, rating *entity.Rating) (entity.Rating, error) {
	span, ctx := apm.StartSpan(ctx, "UpsertRating", "db.postgresql.exec")
	defer span.End()

	query := `
		INSERT INTO ratings (booking_id, client_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (booking_id)
		DO UPDATE SET rating = EXCLUDED.rating, comment = EXCLUDED.comment, updated_at = now()
		RETURNING booking_id, client_id, rating, comment, created_at, updated_at`
	var saved entity.Rating
	err := r.db.GetContext(ctx, &saved, query, rating.BookingID, rating.ClientID, rating.Rating, rating.Comment)
	if err != nil {
		return entity.Rating{}, errors.InternalServerError("error upsert rating")
	}
	return saved, nil
}

// FindBookingsByClient implements Repositories.
func (r *repositories) FindBookingsByClient(ctx context.Context, clientID string, page, limit int) ([]entity.Booking, int, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingsByClient", "db.postgresql.query")
	defer span.End()

	return r.findBookingsPaginated(ctx, `client_id`, clientID, page, limit)
}

// FindBookingsByProvider implements Repositories.
func (r *repositories) FindBookingsByProvider(ctx context.Context, providerID string, page, limit int) ([]entity.Booking, int, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingsByProvider", "db.postgresql.query")
	defer span.End()

	return r.findBookingsPaginated(ctx, `provider_id`, providerID, page, limit)
}

func (r *repositories) findBookingsPaginated(ctx context.Context, column, userID string, page, limit int) ([]entity.Booking, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bookings WHERE %s = $1 AND deleted_at IS NULL`, column)
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, errors.InternalServerError("error count bookings")
	}

	query := fmt.Sprintf(`SELECT `+bookingColumns+` FROM bookings
		WHERE %s = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, column)
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID, limit, (page-1)*limit); err != nil {
		return nil, 0, errors.InternalServerError("error find bookings")
	}
	return bookings, total, nil
}

// FindBookingsInWindow implements Repositories. Window membership uses the
// scheduled instant for fixed slots and the entry date for stays.
func (r *repositories) FindBookingsInWindow(ctx context.Context, clientID, providerID, listingID string, start, end time.Time) ([]entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "FindBookingsInWindow", "db.postgresql.query")
	defer span.End()

	conditions := []string{`deleted_at IS NULL`, `COALESCE(scheduled_at, entry_date) BETWEEN $1 AND $2`}
	args := []interface{}{start, end}

	if clientID != "" {
		args = append(args, clientID)
		conditions = append(conditions, fmt.Sprintf(`client_id = $%d`, len(args)))
	}
	if providerID != "" {
		args = append(args, providerID)
		conditions = append(conditions, fmt.Sprintf(`provider_id = $%d`, len(args)))
	}
	if listingID != "" {
		args = append(args, listingID)
		conditions = append(conditions, fmt.Sprintf(`listing_id = $%d`, len(args)))
	}

	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + strings.Join(conditions, " AND ") +
		` ORDER BY COALESCE(scheduled_at, entry_date) ASC`
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, errors.InternalServerError("error find bookings in window")
	}
	return bookings, nil
}

// FindConfirmedRanges implements Repositories. Returns the stay ranges blocked
// by confirmed bookings, scoped to a listing or a provider.
func (r *repositories) FindConfirmedRanges(ctx context.Context, listingID, providerID string) ([]entity.Booking, error) {
	span, ctx := apm.StartSpan(ctx, "FindConfirmedRanges", "db.postgresql.query")
	defer span.End()

	conditions := []string{
		`deleted_at IS NULL`,
		`status = 'CONFIRMED'`,
		`entry_date IS NOT NULL`,
		`departure_date IS NOT NULL`,
	}
	args := []interface{}{}

	if listingID != "" {
		args = append(args, listingID)
		conditions = append(conditions, fmt.Sprintf(`listing_id = $%d`, len(args)))
	} else if providerID != "" {
		args = append(args, providerID)
		conditions = append(conditions, fmt.Sprintf(`provider_id = $%d`, len(args)))
	}

	query := `SELECT id, listing_id, client_id, provider_id, entry_date, departure_date, status, created_at FROM bookings WHERE ` +
		strings.Join(conditions, " AND ")
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, errors.InternalServerError("error find confirmed ranges")
	}
	return bookings, nil
}

// AcquireListingLock implements Repositories. Serializes the check-then-write
// availability sequence across instances; the DB row lock still protects the
// single-instance path if redis is degraded.
func (r *repositories) AcquireListingLock(ctx context.Context, listingID string) (func() error, error) {
	mutex := r.redsync.NewMutex(
		fmt.Sprintf("lock:listing:%s", listingID),
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(16),
	)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, errors.InternalServerError("error acquire listing lock")
	}
	return func() error {
		_, err := mutex.UnlockContext(ctx)
		return err
	}, nil
}

// GetCalendarVersion implements Repositories. Missing key means version 0.
func (r *repositories) GetCalendarVersion(ctx context.Context, listingID string) (int64, error) {
	data, err := r.redisClient.Get(ctx, calendarVersionKey(listingID)).Int64()
	if err == redisclient.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, errors.InternalServerError("error get calendar version")
	}
	return data, nil
}

// BumpCalendarVersion implements Repositories. Invalidates every cached
// calendar projection of the listing without scanning keys.
func (r *repositories) BumpCalendarVersion(ctx context.Context, listingID string) error {
	if err := r.redisClient.Incr(ctx, calendarVersionKey(listingID)).Err(); err != nil {
		return errors.InternalServerError("error bump calendar version")
	}
	return nil
}

func calendarVersionKey(listingID string) string {
	return fmt.Sprintf("calendar:ver:%s", listingID)
}

// GetCalendarCache implements Repositories.
func (r *repositories) GetCalendarCache(ctx context.Context, key string) (response.Calendar, bool, error) {
	data, err := r.redisClient.Get(ctx, key).Bytes()
	if err == redisclient.Nil {
		return response.Calendar{}, false, nil
	}
	if err != nil {
		return response.Calendar{}, false, errors.InternalServerError("error get calendar cache")
	}

	var calendar response.Calendar
	if err := json.Unmarshal(data, &calendar); err != nil {
		return response.Calendar{}, false, errors.InternalServerError("error unmarshal calendar cache")
	}
	return calendar, true, nil
}

// SetCalendarCache implements Repositories.
func (r *repositories) SetCalendarCache(ctx context.Context, key string, calendar response.Calendar) error {
	data, err := json.Marshal(calendar)
	if err != nil {
		return errors.InternalServerError("error marshal calendar cache")
	}
	ttl := time.Duration(r.cfg.Booking.CalendarCacheTTL) * time.Minute
	if err := r.redisClient.Set(ctx, key, data, ttl).Err(); err != nil {
		return errors.InternalServerError("error set calendar cache")
	}
	return nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, executionTime time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeBookingRequestExpired, payload)
	info, err := r.schedClient.EnqueueContext(ctx, task, asynq.ProcessAt(executionTime), asynq.Queue("default"))
	if err != nil {
		return "", errors.InternalServerError("error enqueue expire task")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	err := r.schedInspector.DeleteTask("default", taskID)
	if err != nil && err != asynq.ErrTaskNotFound {
		return errors.InternalServerError("error delete expire task")
	}
	return nil
}

// ValidateToken implements Repositories.
func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s",
		r.cfg.UserService.Host, r.cfg.UserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("invalid token")
	}
	return respData, nil
}

// SendPushNotification implements Repositories. Delivery goes through the
// circuit-broken client so a dead push gateway cannot pile up goroutines.
func (r *repositories) SendPushNotification(ctx context.Context, payload *request.NotificationMessage) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.InternalServerError("error marshal push payload")
	}

	url := fmt.Sprintf("http://%s:%s/api/private/push", r.cfg.PushGateway.Host, r.cfg.PushGateway.Port)
	resp, err := r.httpClient.Post(url, "application/json", strings.NewReader(string(body)))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		r.log.Error(ctx, "push gateway rejected notification", resp.StatusCode)
		return errors.InternalServerError("error send push notification")
	}
	return nil
}
