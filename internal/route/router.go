package router

import (
	"reservation-service/internal/module/booking/handler"
	"reservation-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(app *fiber.App, handlerBooking *handler.BookingHandler, m *middleware.Middleware) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")

	v1 := Api.Group("/v1")
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, handlerBooking.ListBookings)
	v1.Get("/bookings/:id", m.ValidateToken, handlerBooking.GetBooking)
	v1.Patch("/bookings/:id", m.ValidateToken, handlerBooking.UpdateBooking)
	v1.Patch("/bookings/:id/status", m.ValidateToken, handlerBooking.UpdateStatus)
	v1.Delete("/bookings/:id", m.ValidateToken, handlerBooking.DeleteBooking)
	v1.Put("/bookings/:id/rating", m.ValidateToken, handlerBooking.RateBooking)
	v1.Get("/availability", m.ValidateToken, handlerBooking.CheckAvailability)
	v1.Get("/calendar", m.ValidateToken, handlerBooking.GetCalendar)

	return app

}
