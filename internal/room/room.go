package room

import (
	"sync"
	"time"

	"character-auction/internal/theme"
)

type Status string

const (
	StatusWaiting     Status = "waiting"
	StatusConfiguring Status = "configuring"
	StatusPlaying     Status = "playing"
	StatusVoting      Status = "voting"
	StatusFinished    Status = "finished"
)

type Player struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	RoomCode   string            `json:"roomCode"`
	Balance    int               `json:"balance"`
	Characters []theme.Character `json:"characters"`
	CurrentBet int               `json:"currentBet"`
	HasFolded  bool              `json:"hasFolded"`
	HasVoted   bool              `json:"hasVoted"`
}

// GameConfig is set once by the host before starting and stays immutable while
// a game runs; reconfiguring requires the room back in waiting or finished.
type GameConfig struct {
	Theme               string            `json:"theme"`
	SelectedArcs        []string          `json:"selectedArcs"`
	SelectedCharacters  []theme.Character `json:"selectedCharacters"`
	NumberOfTurns       int               `json:"numberOfTurns"`
	CharactersPerPlayer int               `json:"charactersPerPlayer"`
	TurnDuration        int               `json:"turnDuration"` // seconds
	StartingBalance     int               `json:"startingBalance"`
	CustomTheme         *theme.Theme      `json:"customTheme,omitempty"`
}

// GameState lives for one run of the game. UsedCharacters grows monotonically
// within a run and resets only on restart; a drawn character is never redrawn
// in the same run. Timer fields are advisory epoch-ms deadlines, expiry is
// enforced by callers, never by the state machine itself.
type GameState struct {
	CurrentTurn      int               `json:"currentTurn"`
	CurrentCharacter *theme.Character  `json:"currentCharacter"`
	UsedCharacters   []theme.Character `json:"usedCharacters"`
	TimerEndTime     *int64            `json:"timerEndTime"`
	Votes            map[string]string `json:"votes"` // voterId -> targetPlayerId
	VoteTimerEndTime *int64            `json:"voteTimerEndTime"`
}

// Room is one isolated game session. Every read-modify-write sequence on a
// room must run under its lock; the manager takes it for each operation and
// the HTTP layer takes it around snapshot serialization.
type Room struct {
	mu sync.Mutex

	Code      string      `json:"code"`
	IsPrivate bool        `json:"isPrivate"`
	Password  string      `json:"-"`
	HostID    string      `json:"hostId"`
	Players   []*Player   `json:"players"`
	Status    Status      `json:"status"`
	Config    *GameConfig `json:"config,omitempty"`
	GameState *GameState  `json:"gameState,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

func (r *Room) Lock()   { r.mu.Lock() }
func (r *Room) Unlock() { r.mu.Unlock() }

// FindPlayer returns the player with the given id, or nil. Callers hold the
// room lock.
func (r *Room) FindPlayer(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}
