package apperror

import "errors"

// Game-logic rejections. These are caller-correctable and never indicate a
// defect: a rejected mutation leaves the game unchanged. The messages are
// part of the API surface and must stay stable.
var (
	ErrGameFull          = errors.New("game is already full")
	ErrNotYourTurn       = errors.New("not your move")
	ErrNoSuchColumn      = errors.New("column does not exists")
	ErrColumnFull        = errors.New("column already filled")
	ErrMalformedIdentity = errors.New("id should be 24-char hexadecimal string")
	ErrUnknownIdentity   = errors.New("identity is not part of this game")
	ErrGameFinished      = errors.New("game is already finished")
)

// IsGameLogic reports whether err is one of the game-logic rejections, as
// opposed to an infrastructure failure.
func IsGameLogic(err error) bool {
	for _, sentinel := range []error{
		ErrGameFull,
		ErrNotYourTurn,
		ErrNoSuchColumn,
		ErrColumnFull,
		ErrMalformedIdentity,
		ErrUnknownIdentity,
		ErrGameFinished,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
