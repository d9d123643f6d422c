package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/rocketscienceinc/connectfour-backend/api"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	logger *slog.Logger
	game   usecase.GameUseCase

	api.UnimplementedGameServer
}

func New(logger *slog.Logger, game usecase.GameUseCase) *Server {
	return &Server{
		logger: logger,
		game:   game,
	}
}

// Start - serves the Game service until ctx is canceled, then stops
// gracefully. Reflection is registered so clients can discover the service
// without the proto file.
func (that *Server) Start(ctx context.Context, port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	srv := grpc.NewServer()
	api.RegisterGameServer(srv, that)
	reflection.Register(srv)

	go func() {
		<-ctx.Done()
		srv.GracefulStop()
	}()

	if err := srv.Serve(listener); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}
