package room

import "errors"

// Business-rule violations are ordinary errors, never panics. The HTTP layer
// maps them onto not-found / invalid-input / conflict responses. A rejected
// operation leaves the room untouched.
var (
	ErrRoomNotFound     = errors.New("room not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrGameStarted      = errors.New("game already started")
	ErrNotConfigured    = errors.New("game not configured")
	ErrNotEnoughPlayers = errors.New("at least two players required")
	ErrNoActiveGame     = errors.New("no active game")
	ErrWrongPhase       = errors.New("wrong game phase for this action")
	ErrInvalidConfig    = errors.New("invalid game configuration")
	ErrInvalidBet       = errors.New("bet amount out of range")
	ErrCharacterCap     = errors.New("character limit reached")
	ErrSelfVote         = errors.New("cannot vote for yourself")
	ErrAlreadyVoted     = errors.New("already voted")
)
