package handler

import (
	"context"
	"fmt"
	"reservation-service/internal/module/booking/models/request"
	"reservation-service/internal/module/booking/usecases"
	"reservation-service/internal/pkg/errors"
	"reservation-service/internal/pkg/helpers"
	"reservation-service/internal/pkg/log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

type BookingHandler struct {
	Log       log.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.CreateBooking(ctx.UserContext(), &req, userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "booking request created")
}

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	bookingID := ctx.Params("id")

	resp, err := h.Usecase.GetBooking(ctx.UserContext(), bookingID, userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error get booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get booking")
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	var params request.Params
	if err := ctx.QueryParser(&params); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	userID := ctx.Locals("user_id").(string)

	resp, meta, err := h.Usecase.ListBookings(ctx.UserContext(), userID, &params)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error list bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespPagination(ctx, h.Log, resp, meta, "success list bookings")
}

func (h *BookingHandler) UpdateBooking(ctx *fiber.Ctx) error {
	var req request.UpdateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	bookingID := ctx.Params("id")

	resp, err := h.Usecase.UpdateBooking(ctx.UserContext(), bookingID, &req, userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error update booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "booking updated")
}

func (h *BookingHandler) UpdateStatus(ctx *fiber.Ctx) error {
	var req request.UpdateStatus
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	bookingID := ctx.Params("id")

	resp, err := h.Usecase.UpdateStatus(ctx.UserContext(), bookingID, &req, userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error update booking status: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "booking status updated")
}

func (h *BookingHandler) CheckAvailability(ctx *fiber.Ctx) error {
	entryDate, err := time.Parse("2006-01-02", ctx.Query("entry_date"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid entry_date"))
	}
	departureDate, err := time.Parse("2006-01-02", ctx.Query("departure_date"))
	if err != nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("invalid departure_date"))
	}

	req := request.CheckAvailability{
		ListingID:        ctx.Query("listing_id"),
		EntryDate:        entryDate,
		DepartureDate:    departureDate,
		ExcludeBookingID: ctx.Query("exclude_booking_id"),
	}
	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.CheckAvailability(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error check availability: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "availability checked")
}

func (h *BookingHandler) RateBooking(ctx *fiber.Ctx) error {
	var req request.RateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)
	bookingID := ctx.Params("id")

	resp, err := h.Usecase.RateBooking(ctx.UserContext(), bookingID, &req, userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error rate booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "booking rated")
}

func (h *BookingHandler) GetCalendar(ctx *fiber.Ctx) error {
	var req request.Calendar
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(string)

	resp, err := h.Usecase.GetCalendar(ctx.UserContext(), userID, &req)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error get calendar: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get calendar")
}

func (h *BookingHandler) DeleteBooking(ctx *fiber.Ctx) error {
	userID := ctx.Locals("user_id").(string)
	bookingID := ctx.Params("id")

	resp, err := h.Usecase.DeleteBooking(ctx.UserContext(), bookingID, userID)
	if err != nil {
		h.Log.Error(ctx.UserContext(), fmt.Sprintf("error delete booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "booking deleted")
}

// ConsumeNotificationQueue delivers queued notification events to the push
// gateway. Messages that cannot be handled go to the poisoned queue.
func (h *BookingHandler) ConsumeNotificationQueue(msg *message.Message) error {
	msg.Ack()

	var req request.NotificationMessage
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	ctx := context.Background()

	if err := h.Usecase.DispatchNotification(ctx, &req); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error dispatch notification: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

func (h *BookingHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: usecases.TopicBookingNotification,
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)

	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Error(msg.Context(), fmt.Sprintf("error publish to poison queue: %v", err))
	}
}

// ExpireBookingRequest is the delayed task handler that rejects booking
// requests nobody answered in time.
func (h *BookingHandler) ExpireBookingRequest(ctx context.Context, t *asynq.Task) error {
	var req request.BookingExpiration
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ExpireBookingRequest(ctx, &req); err != nil {
		h.Log.Error(ctx, fmt.Sprintf("error expire booking request: %v", err))
		return err
	}

	return nil
}
