package entity

import (
	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PlayerOne Player = "P1"
	PlayerTwo Player = "P2"
)

// winLine is the run length that ends a game. The board shape is
// configurable, the line length is not.
const winLine = 4

type Player string

// RegistryEntry pairs an identity token with the player it authenticates.
// The registry is stored as an ordered array of these pairs so a game can be
// looked up by token membership ("player_registry.token" filter).
type RegistryEntry struct {
	Token  primitive.ObjectID `bson:"token" json:"token"`
	Player Player             `bson:"player" json:"player"`
}

// Board is the authoritative record of one game. Columns are stacks growing
// upward: Columns[x][0] is the bottom mark of column x. Lock carries no game
// meaning; it is stamped by the repository inside a transaction purely to
// force a write-write conflict between concurrent updates.
type Board struct {
	ID                 primitive.ObjectID  `bson:"_id" json:"id"`
	HorizontalSize     int                 `bson:"horizontal_size" json:"horizontal_size"`
	VerticalSize       int                 `bson:"vertical_size" json:"vertical_size"`
	IsHorizontalCyclic bool                `bson:"is_horizontal_cyclic" json:"is_horizontal_cyclic"`
	Columns            [][]Player          `bson:"columns" json:"columns"`
	PlayerRegistry     []RegistryEntry     `bson:"player_registry" json:"player_registry"`
	CurrentMovePlayer  Player              `bson:"current_move_player" json:"current_move_player"`
	IsFinished         bool                `bson:"is_finished" json:"is_finished"`
	Lock               *primitive.ObjectID `bson:"lock,omitempty" json:"-"`
}

// GameSettings are the creation-time parameters of a board. They are fixed
// for the lifetime of the game.
type GameSettings struct {
	HorizontalSize     int
	VerticalSize       int
	IsHorizontalCyclic bool
}

func NewBoard(settings GameSettings) *Board {
	columns := make([][]Player, settings.HorizontalSize)
	for i := range columns {
		columns[i] = []Player{}
	}

	return &Board{
		ID:                 primitive.NewObjectID(),
		HorizontalSize:     settings.HorizontalSize,
		VerticalSize:       settings.VerticalSize,
		IsHorizontalCyclic: settings.IsHorizontalCyclic,
		Columns:            columns,
		PlayerRegistry:     []RegistryEntry{},
		CurrentMovePlayer:  PlayerOne,
	}
}

// Join assigns the first free seat of {P1, P2}, mints a fresh identity token
// for it and records the pair in the registry. Returns ErrGameFull when both
// seats are taken. Turn state and columns are untouched.
func (that *Board) Join() (primitive.ObjectID, Player, error) {
	for _, player := range []Player{PlayerOne, PlayerTwo} {
		if _, taken := that.tokenByPlayer(player); taken {
			continue
		}

		token := primitive.NewObjectID()
		that.PlayerRegistry = append(that.PlayerRegistry, RegistryEntry{Token: token, Player: player})
		return token, player, nil
	}

	return primitive.NilObjectID, "", apperror.ErrGameFull
}

// TryMove drops the caller's mark into column x. Validation is side-effect
// free: on any rejection the board is left exactly as it was. On success the
// mark is pushed, the turn flips and the finished flag is recomputed from
// the placed mark. Returns whether that move ended the game and who moved.
func (that *Board) TryMove(identityToken string, x int) (bool, Player, error) {
	token, err := primitive.ObjectIDFromHex(identityToken)
	if err != nil {
		return false, "", apperror.ErrMalformedIdentity
	}

	player, ok := that.playerByToken(token)
	if !ok {
		return false, "", apperror.ErrUnknownIdentity
	}

	if that.IsFinished {
		return false, "", apperror.ErrGameFinished
	}

	if that.CurrentMovePlayer != player {
		return false, "", apperror.ErrNotYourTurn
	}

	if x < 0 || x >= that.HorizontalSize {
		return false, "", apperror.ErrNoSuchColumn
	}

	if len(that.Columns[x]) == that.VerticalSize {
		return false, "", apperror.ErrColumnFull
	}

	that.Columns[x] = append(that.Columns[x], player)

	if player == PlayerOne {
		that.CurrentMovePlayer = PlayerTwo
	} else {
		that.CurrentMovePlayer = PlayerOne
	}

	that.IsFinished = that.isWinningMove(x)

	return that.IsFinished, player, nil
}

// isWinningMove reports whether the mark just placed on top of column x
// completed a line of four. Only lines through the placed mark are checked;
// the caller invariant (checked after every move) makes that sufficient. The
// column must hold at least one mark.
func (that *Board) isWinningMove(x int) bool {
	start := NewIndexRange(that.HorizontalSize, that.IsHorizontalCyclic, x)
	y := len(that.Columns[x]) - 1
	owner := that.Columns[x][y]

	// Each pair is one sense of a line direction as (horizontal, vertical)
	// unit steps; the opposite sense is its negation. Vertical-only first,
	// then the two diagonals, then horizontal-only.
	senses := [4][2]int{
		{0, -1},
		{-1, -1},
		{-1, 1},
		{-1, 0},
	}

	for _, s := range senses {
		oneSide := that.runLength(start, y, owner, s[0], s[1])
		if oneSide == winLine-1 {
			return true
		}
		if oneSide+that.runLength(start, y, owner, -s[0], -s[1]) >= winLine-1 {
			return true
		}
	}

	return false
}

// runLength counts consecutive marks owned by owner extending from (start,
// y), exclusive, in steps of (dx, dy). Counting stops at a blocked
// horizontal boundary, above the occupied part of a column, below the
// bottom, or at a foreign mark. At most winLine-1 steps are taken.
func (that *Board) runLength(start IndexRange, y int, owner Player, dx, dy int) int {
	dir := Left
	if dx > 0 {
		dir = Right
	}

	count := 0
	ir := start
	for i := 1; i < winLine; i++ {
		if dx != 0 {
			next, ok := ir.Step(1, dir)
			if !ok {
				break
			}
			ir = next
		}

		column := that.Columns[ir.Index()]
		yy := y + i*dy
		if yy < 0 || yy >= len(column) {
			break
		}
		if column[yy] != owner {
			break
		}

		count++
	}

	return count
}

// playerByToken resolves an identity token through the registry.
func (that *Board) playerByToken(token primitive.ObjectID) (Player, bool) {
	for _, entry := range that.PlayerRegistry {
		if entry.Token == token {
			return entry.Player, true
		}
	}
	return "", false
}

// tokenByPlayer is the reverse lookup; together with playerByToken it keeps
// the registry a unique mapping in both directions.
func (that *Board) tokenByPlayer(player Player) (primitive.ObjectID, bool) {
	for _, entry := range that.PlayerRegistry {
		if entry.Player == player {
			return entry.Token, true
		}
	}
	return primitive.NilObjectID, false
}
