package grpc

import (
	"context"
	"errors"
	"io"

	"github.com/rocketscienceinc/connectfour-backend/api"
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const internalErrorMessage = "internal server error"

// Create - builds a new board from the settings and persists it.
func (that *Server) Create(ctx context.Context, in *api.GameSettings) (*api.GameId, error) {
	if in.GetHorizontalSize() == 0 || in.GetVerticalSize() == 0 {
		return nil, status.Error(codes.InvalidArgument, "board dimensions must be positive")
	}

	id, err := that.game.CreateGame(ctx, entity.GameSettings{
		HorizontalSize:     int(in.GetHorizontalSize()),
		VerticalSize:       int(in.GetVerticalSize()),
		IsHorizontalCyclic: in.GetIsHorizontalCyclic(),
	})
	if err != nil {
		that.logger.Error("failed to create game", "error", err)
		return nil, status.Error(codes.Internal, internalErrorMessage)
	}

	return &api.GameId{Id: id}, nil
}

// Join - seats the caller in the game and hands back the identity token used
// to authenticate moves.
func (that *Server) Join(ctx context.Context, in *api.GameId) (*api.PlayerAssignment, error) {
	player, token, err := that.game.JoinGame(ctx, in.GetId())
	if err != nil {
		return nil, that.toStatus("join", err)
	}

	return &api.PlayerAssignment{
		Player:        playerToProto(player),
		IdentityToken: token,
	}, nil
}

// Move - drives one inbound move stream. Items are processed strictly in
// order, one full persistence round trip at a time; different streams share
// nothing in-process and proceed fully in parallel. Rejections and failures
// are reported as that item's outcome so the stream survives them.
func (that *Server) Move(stream api.Game_MoveServer) error {
	for {
		in, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		out := &api.MoveInfo{X: in.GetX()}

		result, err := that.game.MakeMove(stream.Context(), in.GetIdentityToken(), int(in.GetX()))
		switch {
		case err == nil:
			out.Player = playerToProto(result.Player)
			out.IsLastMove = result.IsLastMove
		case apperror.IsGameLogic(err):
			out.Error = err.Error()
		case errors.Is(err, repository.ErrGameNotFound):
			out.Error = repository.ErrGameNotFound.Error()
		default:
			that.logger.Error("failed to apply move", "x", in.GetX(), "error", err)
			out.Error = internalErrorMessage
		}

		// A send failure means the consumer is gone; drop the result and
		// stop processing the stream.
		if err := stream.Send(out); err != nil {
			return err
		}
	}
}

// toStatus maps the two error taxonomies onto RPC statuses: game-logic
// rejections keep their stable messages, missing records surface as not
// found, and anything else is logged and hidden behind a generic message.
func (that *Server) toStatus(op string, err error) error {
	switch {
	case apperror.IsGameLogic(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, repository.ErrGameNotFound):
		return status.Error(codes.NotFound, repository.ErrGameNotFound.Error())
	default:
		that.logger.Error("failed to "+op, "error", err)
		return status.Error(codes.Internal, internalErrorMessage)
	}
}

func playerToProto(player entity.Player) api.Player {
	if player == entity.PlayerTwo {
		return api.Player_P2
	}
	return api.Player_P1
}
