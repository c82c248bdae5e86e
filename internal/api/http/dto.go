package http

// CreateRoomRequest represents the payload for POST /rooms.
type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
	IsPrivate  bool   `json:"isPrivate"`
	Password   string `json:"password"`
}

// JoinRoomRequest represents the payload for joining an existing room.
type JoinRoomRequest struct {
	PlayerName string `json:"playerName"`
	Password   string `json:"password"`
}

// BetRequest represents a bid on the current turn's character. Amount is a
// pointer so a missing field is told apart from an explicit zero.
type BetRequest struct {
	PlayerID string `json:"playerId"`
	Amount   *int   `json:"amount"`
}

// FoldRequest withdraws a player from the current turn.
type FoldRequest struct {
	PlayerID string `json:"playerId"`
}

// VoteRequest represents one vote for another player's collection.
type VoteRequest struct {
	VoterID        string `json:"voterId"`
	TargetPlayerID string `json:"targetPlayerId"`
}
