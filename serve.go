package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"dashboard/internal/app"
	"dashboard/internal/services"
	"dashboard/pkg/imagehost"
	"dashboard/pkg/rabbitmq"

	"github.com/spf13/cobra"
	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set to serve the API")
	}

	db, err := openMigrated()
	if err != nil {
		return err
	}

	opts := app.Options{Config: cfg, DB: db, Logger: logger, AccessLog: true}

	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.ActivityQueue}, logger)
		if err != nil {
			return err
		}
		defer mqClient.Close()
		opts.Publisher = mqClient
	} else {
		logger.Info("RABBITMQ_URL not set, activity is stored directly")
	}

	if cfg.ImageHostConfigured() {
		store, err := imagehost.NewClient(imagehost.Config{
			CloudName: cfg.CloudinaryCloudName,
			APIKey:    cfg.CloudinaryAPIKey,
			APISecret: cfg.CloudinaryAPISecret,
		})
		if err != nil {
			return err
		}
		opts.ImageStore = store
	} else {
		logger.Warn("Cloudinary is not configured, image uploads are disabled")
	}

	server := app.New(opts)

	if mqClient != nil {
		if err := mqClient.Consume(activityConsumer(server.Activity)); err != nil {
			return err
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", cfg.AppPort))
		listenErr <- server.App.Listen(cfg.AppPort)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}

	logger.Info("Shutting down server")
	if err := server.App.Shutdown(); err != nil {
		logger.Error("Error during Fiber shutdown", zap.Error(err))
	}
	logger.Info("Server gracefully stopped")
	return nil
}

func activityConsumer(activity *services.ActivityService) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		return activity.Persist(msg.Body)
	}
}
