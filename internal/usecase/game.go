package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoveResult is the outcome of one accepted move.
type MoveResult struct {
	Player     entity.Player
	IsLastMove bool
}

type GameUseCase interface {
	// CreateGame persists a fresh board and returns its hex id. No other
	// caller can reference the id before it is returned, so this needs no
	// locking.
	CreateGame(ctx context.Context, settings entity.GameSettings) (string, error)

	// JoinGame atomically seats a player in the given game and returns the
	// assignment together with the minted identity token (hex).
	JoinGame(ctx context.Context, gameID string) (entity.Player, string, error)

	// MakeMove atomically applies one move. The game is located by the
	// identity token, not by game id: moves carry no game id.
	MakeMove(ctx context.Context, identityToken string, x int) (*MoveResult, error)
}

type gameUseCase struct {
	gameRepo repository.GameRepository
}

func NewGameUseCase(gameRepo repository.GameRepository) GameUseCase {
	return &gameUseCase{
		gameRepo: gameRepo,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, settings entity.GameSettings) (string, error) {
	board := entity.NewBoard(settings)

	if err := that.gameRepo.Create(ctx, board); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return board.ID.Hex(), nil
}

func (that *gameUseCase) JoinGame(ctx context.Context, gameID string) (entity.Player, string, error) {
	id, err := primitive.ObjectIDFromHex(gameID)
	if err != nil {
		return "", "", apperror.ErrMalformedIdentity
	}

	var (
		token  primitive.ObjectID
		player entity.Player
	)

	err = that.gameRepo.UpdateByID(ctx, id, func(board *entity.Board) error {
		token, player, err = board.Join()
		return err
	})
	if err != nil {
		return "", "", err
	}

	return player, token.Hex(), nil
}

func (that *gameUseCase) MakeMove(ctx context.Context, identityToken string, x int) (*MoveResult, error) {
	// Reject malformed tokens before touching storage; a well-formed token
	// with no matching game surfaces as repository.ErrGameNotFound instead.
	token, err := primitive.ObjectIDFromHex(identityToken)
	if err != nil {
		return nil, apperror.ErrMalformedIdentity
	}

	var result MoveResult

	err = that.gameRepo.UpdateByToken(ctx, token, func(board *entity.Board) error {
		isLastMove, player, moveErr := board.TryMove(identityToken, x)
		if moveErr != nil {
			return moveErr
		}

		result = MoveResult{Player: player, IsLastMove: isLastMove}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
