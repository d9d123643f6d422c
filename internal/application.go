package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/connectfour-backend/internal/config"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	grpctransport "github.com/rocketscienceinc/connectfour-backend/transport/grpc"
	"github.com/rocketscienceinc/connectfour-backend/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	mongoStorage, err := storage.New(ctx, conf.Mongo.URI, conf.Mongo.Database)
	if err != nil {
		return fmt.Errorf("could not connect to mongo storage: %w", err)
	}

	defer func() {
		if err = mongoStorage.Close(context.Background()); err != nil {
			log.Error("could not close mongo storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(mongoStorage)
	gameUseCase := usecase.NewGameUseCase(gameRepo)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run gRPC server
	grpcErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting gRPC server", "port", conf.GRPCPort)
		grpcServer := grpctransport.New(logger, gameUseCase)
		if grpcErr := grpcServer.Start(ctx, conf.GRPCPort); grpcErr != nil {
			log.Error("gRPC server error", "error", grpcErr)
			grpcErrCh <- grpcErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-grpcErrCh:
		return fmt.Errorf("gRPC server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
