package main

import (
	"context"
	"log"
	"reservation-service/config"
	"reservation-service/internal/module/booking/handler"
	"reservation-service/internal/module/booking/repositories"
	"reservation-service/internal/module/booking/usecases"
	"reservation-service/internal/pkg/database"
	"reservation-service/internal/pkg/http"
	"reservation-service/internal/pkg/httpclient"
	log_internal "reservation-service/internal/pkg/log"
	"reservation-service/internal/pkg/messagestream"
	"reservation-service/internal/pkg/middleware"
	"reservation-service/internal/pkg/redis"
	"reservation-service/internal/pkg/scheduler"
	router "reservation-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, sched, bookingHandler := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// delayed task worker for booking request expiry
	go sched.StartHandler(
		&cfg.Redis,
		[]string{scheduler.TypeBookingRequestExpired},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.ExpireBookingRequest},
	)
	go sched.StartMonitoring(&cfg.Redis)

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, *scheduler.Scheduler, *handler.BookingHandler) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	rs := redis.SetupRedsync(redisClient)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	schedClient := sched.InitClient(&cfg.Redis)
	schedInspector := sched.InitInspector(&cfg.Redis)

	bookingRepo := repositories.New(db, logger, httpClient, redisClient, rs, schedClient, schedInspector, cfg)
	bookingUsecase := usecases.New(bookingRepo, logger, publisher, &cfg.Booking)
	middleware := middleware.Middleware{
		Log:  logger,
		Repo: bookingRepo,
	}

	validator := validator.New()
	bookingHandler := handler.BookingHandler{
		Log:       logger,
		Validator: validator,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}

	var messageRouters []*message.Router

	notificationRouter, err := messagestream.NewRouter(publisher, "notification_poisoned", "booking_notification_handler", usecases.TopicBookingNotification, subscriber, bookingHandler.ConsumeNotificationQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create booking_notification router", err)
	}

	messageRouters = append(messageRouters, notificationRouter)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &middleware)

	return r, messageRouters, sched, &bookingHandler
}
