package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const gamesCollection = "games"

// ErrGameNotFound reports that no record matched the filter. It is kept
// separate from generic persistence failures so callers can tell "no such
// game" from "storage broke".
var ErrGameNotFound = errors.New("game not found")

// Mutator is a pure state transition applied to one loaded board. A returned
// game-logic error must leave the board untouched; the repository then rolls
// the transaction back and hands the error through unchanged.
type Mutator func(board *entity.Board) error

type GameRepository interface {
	Create(ctx context.Context, board *entity.Board) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Board, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, mutate Mutator) error
	UpdateByToken(ctx context.Context, token primitive.ObjectID, mutate Mutator) error
}

type dbGame struct {
	storage *storage.MongoStorage
}

func NewGameRepository(st *storage.MongoStorage) GameRepository {
	return &dbGame{
		storage: st,
	}
}

func (that *dbGame) collection() *mongo.Collection {
	return that.storage.Database.Collection(gamesCollection)
}

func (that *dbGame) Create(ctx context.Context, board *entity.Board) error {
	if _, err := that.collection().InsertOne(ctx, board); err != nil {
		return fmt.Errorf("failed to insert game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Board, error) {
	var board entity.Board

	err := that.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&board)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return &board, nil
}

func (that *dbGame) UpdateByID(ctx context.Context, id primitive.ObjectID, mutate Mutator) error {
	return that.updateAtomically(ctx, bson.M{"_id": id}, mutate)
}

// UpdateByToken locates the game whose registry holds the given identity
// token. Moves carry no game id, so this is the only handle a move has.
func (that *dbGame) UpdateByToken(ctx context.Context, token primitive.ObjectID, mutate Mutator) error {
	return that.updateAtomically(ctx, bson.M{"player_registry.token": token}, mutate)
}

// updateAtomically is the fetch-lock-mutate-persist-commit protocol: inside
// one transaction the matching record is loaded while its lock field is
// stamped with a fresh id, the mutator runs on the loaded copy, and the
// record is replaced wholesale. The stamp is never read; it exists so two
// sessions racing for the same record produce a write-write conflict and at
// most one of them commits. There is no retry: the losing caller gets the
// failure. A game-logic error from the mutator aborts the transaction
// cleanly and is returned unwrapped, keeping it distinguishable from the
// wrapped storage failures.
func (that *dbGame) updateAtomically(ctx context.Context, filter bson.M, mutate Mutator) error {
	session, err := that.storage.Client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	return mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := session.StartTransaction(); err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}

		abort := func(cause error) error {
			if abortErr := session.AbortTransaction(sc); abortErr != nil {
				return fmt.Errorf("failed to abort transaction after %w: %w", cause, abortErr)
			}
			return cause
		}

		stamp := bson.M{"$set": bson.M{"lock": primitive.NewObjectID()}}

		var board entity.Board
		err := that.collection().FindOneAndUpdate(sc, filter, stamp).Decode(&board)
		if errors.Is(err, mongo.ErrNoDocuments) {
			return abort(ErrGameNotFound)
		}
		if err != nil {
			return abort(fmt.Errorf("failed to load game: %w", err))
		}

		if err = mutate(&board); err != nil {
			return abort(err)
		}

		if _, err = that.collection().ReplaceOne(sc, bson.M{"_id": board.ID}, &board); err != nil {
			return abort(fmt.Errorf("failed to save game: %w", err))
		}

		if err = session.CommitTransaction(sc); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}

		return nil
	})
}
