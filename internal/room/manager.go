package room

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"character-auction/internal/game"
	"character-auction/internal/theme"
)

// Store is the process-wide room registry. Rooms live from creation to process
// shutdown, there is no deletion or expiry.
// Rooms are mutated in place through their pointer, so the manager only ever
// inserts and looks up.
type Store interface {
	GetRoom(code string) (*Room, bool)
	// PutIfAbsent inserts the room unless its code is already taken.
	PutIfAbsent(r *Room) bool
	All() []*Room
}

// voteWindow is the fixed voting countdown after the last turn. The forced
// end-of-game path uses the configured turn duration instead.
const voteWindow = 60 * time.Second

// Manager drives every transition of the waiting → playing → voting →
// finished lifecycle. All mutations of a room happen under that room's lock.
type Manager struct {
	store  Store
	logger *zap.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewManager(s Store, logger *zap.Logger) *Manager {
	return &Manager{
		store:  s,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func (m *Manager) randCode(n int) string {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[m.rng.Intn(len(letters))]
	}
	return string(b)
}

func (m *Manager) draw(pool, used []theme.Character) *theme.Character {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return game.Draw(m.rng, pool, used)
}

func newPlayer(name, roomCode string) *Player {
	return &Player{
		ID:         uuid.NewString(),
		Name:       name,
		RoomCode:   roomCode,
		Characters: []theme.Character{},
	}
}

// CreateRoom registers a new room with its host. Codes are regenerated until
// the registry confirms one free.
func (m *Manager) CreateRoom(isPrivate bool, password, hostName string) (*Room, *Player) {
	if hostName == "" {
		hostName = "Host"
	}
	for {
		code := m.randCode(6)
		host := newPlayer(hostName, code)
		r := &Room{
			Code:      code,
			IsPrivate: isPrivate,
			Password:  password,
			HostID:    host.ID,
			Players:   []*Player{host},
			Status:    StatusWaiting,
			CreatedAt: time.Now(),
		}
		if m.store.PutIfAbsent(r) {
			m.logger.Info("room created",
				zap.String("code", code),
				zap.String("hostId", host.ID),
				zap.Bool("private", isPrivate))
			return r, host
		}
	}
}

// JoinRoom appends a player to an open room.
func (m *Manager) JoinRoom(code, password, playerName string) (*Room, *Player, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.IsPrivate && r.Password != password {
		return nil, nil, ErrInvalidPassword
	}
	if r.Status != StatusWaiting && r.Status != StatusConfiguring {
		return nil, nil, ErrGameStarted
	}
	p := newPlayer(playerName, code)
	r.Players = append(r.Players, p)
	m.logger.Info("player joined", zap.String("code", code), zap.String("playerId", p.ID))
	return r, p, nil
}

func (m *Manager) Get(code string) (*Room, bool) { return m.store.GetRoom(code) }

func (m *Manager) All() []*Room { return m.store.All() }

// ConfigureGame writes the config onto the room and seeds every player's
// balance. It does not flip the status; StartGame performs the phase change.
func (m *Manager) ConfigureGame(code string, cfg GameConfig) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Status == StatusPlaying || r.Status == StatusVoting {
		return nil, ErrWrongPhase
	}
	if cfg.NumberOfTurns <= 0 || cfg.CharactersPerPlayer <= 0 ||
		cfg.TurnDuration <= 0 || cfg.StartingBalance <= 0 ||
		len(cfg.SelectedCharacters) == 0 {
		return nil, ErrInvalidConfig
	}
	for _, p := range r.Players {
		p.Balance = cfg.StartingBalance
	}
	r.Config = &cfg
	return r, nil
}

// StartGame resets every player, draws the first character and flips the room
// to playing. Calling it again on a finished room restarts with the same
// config and a fresh game state; a room mid-vote cannot be restarted until
// the tally lands.
func (m *Manager) StartGame(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Status == StatusVoting {
		return nil, ErrWrongPhase
	}
	if r.Config == nil {
		return nil, ErrNotConfigured
	}
	if len(r.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	for _, p := range r.Players {
		p.Balance = r.Config.StartingBalance
		p.Characters = []theme.Character{}
		p.CurrentBet = 0
		p.HasFolded = false
		p.HasVoted = false
	}

	deadline := time.Now().Add(time.Duration(r.Config.TurnDuration) * time.Second).UnixMilli()
	gs := &GameState{
		CurrentTurn:    1,
		UsedCharacters: []theme.Character{},
		TimerEndTime:   &deadline,
		Votes:          map[string]string{},
	}
	if c := m.draw(r.Config.SelectedCharacters, nil); c != nil {
		gs.CurrentCharacter = c
		gs.UsedCharacters = append(gs.UsedCharacters, *c)
	}
	r.GameState = gs
	r.Status = StatusPlaying
	m.logger.Info("game started", zap.String("code", code), zap.Int("players", len(r.Players)))
	return r, nil
}

// PlaceBet overwrites the player's bet for the current turn. It never triggers
// resolution on its own.
func (m *Manager) PlaceBet(code, playerID string, amount int) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Config == nil {
		return nil, ErrNotConfigured
	}
	p := r.FindPlayer(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	if amount < 0 || amount > p.Balance {
		return nil, ErrInvalidBet
	}
	// A player holding the maximum number of characters may not bid again;
	// folding is their only move this turn.
	if len(p.Characters) >= r.Config.CharactersPerPlayer {
		return nil, ErrCharacterCap
	}
	p.CurrentBet = amount
	return r, nil
}

// Fold withdraws the player from the current turn. Depending on how many
// players remain it may award the character to a sole survivor, advance the
// turn, or trigger full resolution once everyone has acted.
func (m *Manager) Fold(code, playerID string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Config == nil || r.GameState == nil {
		return nil, ErrNoActiveGame
	}
	p := r.FindPlayer(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	p.HasFolded = true

	var notFolded []*Player
	for _, pl := range r.Players {
		if !pl.HasFolded {
			notFolded = append(notFolded, pl)
		}
	}

	switch len(notFolded) {
	case 0:
		// Everyone folded, nobody gets the character.
		m.nextTurnLocked(r)
	case 1:
		m.awardSoleSurvivorLocked(r, notFolded[0])
		m.nextTurnLocked(r)
	default:
		// Wait until every player has acted (folded or placed a non-zero
		// bet) before resolving. A capped player who can neither bid nor
		// has folded does not count as having acted.
		allActed := true
		for _, pl := range r.Players {
			if !pl.HasFolded && pl.CurrentBet == 0 {
				allActed = false
				break
			}
		}
		if allActed {
			m.resolveLocked(r)
		}
	}
	return r, nil
}

// ResolveTurn settles the current turn's bids and advances the game. It is
// invoked by the host, by fold completion, or by the sweeper once the turn
// deadline passes.
func (m *Manager) ResolveTurn(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Config == nil || r.GameState == nil {
		return nil, ErrNoActiveGame
	}
	m.resolveLocked(r)
	return r, nil
}

// awardSoleSurvivorLocked gives the current character to the only player left
// standing, but only if they committed a bet. A zero bet wins nothing.
func (m *Manager) awardSoleSurvivorLocked(r *Room, p *Player) {
	if p.CurrentBet <= 0 {
		return
	}
	p.Balance -= p.CurrentBet
	if len(p.Characters) < r.Config.CharactersPerPlayer && r.GameState.CurrentCharacter != nil {
		p.Characters = append(p.Characters, *r.GameState.CurrentCharacter)
	}
}

func (m *Manager) resolveLocked(r *Room) {
	gs := r.GameState

	var notFolded []*Player
	for _, p := range r.Players {
		if !p.HasFolded {
			notFolded = append(notFolded, p)
		}
	}
	if len(notFolded) == 1 && gs.CurrentCharacter != nil {
		m.awardSoleSurvivorLocked(r, notFolded[0])
		m.nextTurnLocked(r)
		return
	}

	bets := make(map[string]int)
	for _, p := range notFolded {
		if p.CurrentBet > 0 {
			bets[p.ID] = p.CurrentBet
		}
	}
	if len(bets) == 0 {
		// Nobody bet, the character is simply skipped.
		m.nextTurnLocked(r)
		return
	}

	winners, maxBet := game.HighestBidders(bets)
	if len(winners) == 1 && gs.CurrentCharacter != nil {
		winner := r.FindPlayer(winners[0])
		winner.Balance -= maxBet
		if len(winner.Characters) < r.Config.CharactersPerPlayer {
			winner.Characters = append(winner.Characters, *gs.CurrentCharacter)
		}
	} else if len(winners) > 1 {
		// Tie: every tied bidder pays, the character goes to no one.
		for _, id := range winners {
			p := r.FindPlayer(id)
			p.Balance -= p.CurrentBet
		}
	}
	m.nextTurnLocked(r)
}

func (m *Manager) nextTurnLocked(r *Room) {
	gs := r.GameState
	for _, p := range r.Players {
		p.CurrentBet = 0
		p.HasFolded = false
	}
	gs.CurrentTurn++

	if gs.CurrentTurn > r.Config.NumberOfTurns {
		m.startVotingLocked(r, voteWindow)
		return
	}
	next := m.draw(r.Config.SelectedCharacters, gs.UsedCharacters)
	if next == nil {
		// Pool exhausted before the configured turn count.
		m.startVotingLocked(r, voteWindow)
		return
	}
	gs.CurrentCharacter = next
	gs.UsedCharacters = append(gs.UsedCharacters, *next)
	deadline := time.Now().Add(time.Duration(r.Config.TurnDuration) * time.Second).UnixMilli()
	gs.TimerEndTime = &deadline
}

func (m *Manager) startVotingLocked(r *Room, window time.Duration) {
	r.Status = StatusVoting
	deadline := time.Now().Add(window).UnixMilli()
	r.GameState.VoteTimerEndTime = &deadline
	r.GameState.Votes = map[string]string{}
	for _, p := range r.Players {
		p.HasVoted = false
	}
}

// Vote records one vote for another player's collection. A voter votes once,
// there is no changing it afterwards. The last vote finishes the game.
func (m *Manager) Vote(code, voterID, targetID string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.GameState == nil || r.Status != StatusVoting {
		return nil, ErrWrongPhase
	}
	voter := r.FindPlayer(voterID)
	target := r.FindPlayer(targetID)
	if voter == nil || target == nil {
		return nil, ErrPlayerNotFound
	}
	if voter.HasVoted {
		return nil, ErrAlreadyVoted
	}
	if voterID == targetID {
		return nil, ErrSelfVote
	}
	r.GameState.Votes[voterID] = targetID
	voter.HasVoted = true

	if len(r.GameState.Votes) == len(r.Players) {
		m.endGameLocked(r)
	}
	return r, nil
}

// ForceEndGame skips the remaining turns: the room drops straight into voting
// with a fresh vote countdown based on the configured turn duration.
func (m *Manager) ForceEndGame(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Status != StatusPlaying {
		return nil, ErrWrongPhase
	}
	if r.GameState != nil && r.Config != nil {
		m.startVotingLocked(r, time.Duration(r.Config.TurnDuration)*time.Second)
	} else {
		r.Status = StatusVoting
	}
	return r, nil
}

// ForceEndVote tallies whatever votes are in, regardless of who has not voted.
func (m *Manager) ForceEndVote(code string) (*Room, error) {
	r, ok := m.store.GetRoom(code)
	if !ok {
		return nil, ErrRoomNotFound
	}
	r.Lock()
	defer r.Unlock()

	if r.Status != StatusVoting {
		return nil, ErrWrongPhase
	}
	m.endGameLocked(r)
	return r, nil
}

func (m *Manager) endGameLocked(r *Room) {
	if r.GameState == nil {
		return
	}
	counts := game.TallyVotes(r.GameState.Votes)
	r.Status = StatusFinished
	m.logger.Info("game finished",
		zap.String("code", r.Code),
		zap.Int("ballots", len(r.GameState.Votes)),
		zap.Int("candidates", len(counts)))
}

type RankRow struct {
	PlayerID   string `json:"playerId"`
	Name       string `json:"name"`
	Votes      int    `json:"votes"`
	Characters int    `json:"characters"`
	Balance    int    `json:"balance"`
}

// Rank orders players by votes received, then collection size, then remaining
// balance, all descending.
func (m *Manager) Rank(r *Room) []RankRow {
	r.Lock()
	defer r.Unlock()

	counts := map[string]int{}
	if r.GameState != nil {
		counts = game.TallyVotes(r.GameState.Votes)
	}
	out := make([]RankRow, 0, len(r.Players))
	for _, p := range r.Players {
		out = append(out, RankRow{
			PlayerID:   p.ID,
			Name:       p.Name,
			Votes:      counts[p.ID],
			Characters: len(p.Characters),
			Balance:    p.Balance,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Votes != out[j].Votes {
			return out[i].Votes > out[j].Votes
		}
		if out[i].Characters != out[j].Characters {
			return out[i].Characters > out[j].Characters
		}
		return out[i].Balance > out[j].Balance
	})
	return out
}

// ExpireDeadlines enforces the advisory timers: stale turn deadlines resolve
// the turn, stale vote deadlines finish the game. Returns how many rooms were
// advanced.
func (m *Manager) ExpireDeadlines(now time.Time) int {
	nowMs := now.UnixMilli()
	advanced := 0
	for _, r := range m.store.All() {
		r.Lock()
		switch {
		case r.Status == StatusPlaying && r.Config != nil && r.GameState != nil &&
			r.GameState.TimerEndTime != nil && *r.GameState.TimerEndTime <= nowMs:
			m.resolveLocked(r)
			advanced++
		case r.Status == StatusVoting && r.GameState != nil &&
			r.GameState.VoteTimerEndTime != nil && *r.GameState.VoteTimerEndTime <= nowMs:
			m.endGameLocked(r)
			advanced++
		}
		r.Unlock()
	}
	return advanced
}
