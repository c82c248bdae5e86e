package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"character-auction/internal/room"
	"character-auction/internal/theme"
)

func errStatus(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound) || errors.Is(err, room.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrInvalidBet) || errors.Is(err, room.ErrInvalidConfig):
		return http.StatusBadRequest
	default:
		return http.StatusConflict
	}
}

// respondRoom serializes the room snapshot under its lock so concurrent
// mutations cannot tear the payload.
func respondRoom(c *gin.Context, r *room.Room) {
	r.Lock()
	defer r.Unlock()
	c.JSON(http.StatusOK, gin.H{"room": r})
}

// @Summary Create new room
// @Description Create a room with the caller as host. Private rooms require a password.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body http.CreateRoomRequest true "Host info"
// @Success 200 {object} map[string]interface{}
// @Router /rooms [post]
func CreateRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		if req.IsPrivate && req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "password required for private rooms"})
			return
		}
		rx, player := rm.CreateRoom(req.IsPrivate, req.Password, req.PlayerName)
		rx.Lock()
		defer rx.Unlock()
		c.JSON(http.StatusOK, gin.H{"room": rx, "player": player})
	}
}

// @Summary List rooms
// @Description Snapshot of every room in the registry
// @Tags Room
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /rooms [get]
func ListRoomsHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"rooms": rm.All()})
	}
}

// @Summary Get room snapshot
// @Description Poll target for clients observing state changes made by other players
// @Tags Room
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code} [get]
func GetRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Join a room
// @Tags Room
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.JoinRoomRequest true "Player info"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/join [post]
func JoinRoomHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req JoinRoomRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerName required"})
			return
		}
		rx, player, err := rm.JoinRoom(c.Param("code"), req.Password, req.PlayerName)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		rx.Lock()
		defer rx.Unlock()
		c.JSON(http.StatusOK, gin.H{"room": rx, "player": player})
	}
}

// @Summary Configure the game
// @Description Set the game config and seed player balances. Status flips on start, not here.
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body room.GameConfig true "Game config"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/configure [post]
func ConfigureGameHandler(rm *room.Manager, catalog *theme.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var cfg room.GameConfig
		if err := c.BindJSON(&cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		// Hosts may send a precomputed character list; otherwise the pool is
		// resolved from an inline theme or the catalog, narrowed to the
		// selected arcs. An unknown theme leaves the pool empty and fails
		// config validation.
		if len(cfg.SelectedCharacters) == 0 {
			if cfg.CustomTheme != nil {
				cfg.SelectedCharacters = theme.Flatten(*cfg.CustomTheme, cfg.SelectedArcs)
			} else if t, ok := catalog.Find(cfg.Theme); ok {
				cfg.SelectedCharacters = theme.Flatten(t, cfg.SelectedArcs)
			}
		}
		rx, err := rm.ConfigureGame(c.Param("code"), cfg)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Start the game
// @Description Requires a config and at least two players. Draws the first character.
// @Tags Game
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/start [post]
func StartGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, err := rm.StartGame(c.Param("code"))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Place a bet
// @Description Overwrites the player's bet for the current turn
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.BetRequest true "Bet"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/bet [post]
func PlaceBetHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BetRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerID == "" || req.Amount == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerId and amount required"})
			return
		}
		rx, err := rm.PlaceBet(c.Param("code"), req.PlayerID, *req.Amount)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Fold
// @Description Withdraw from the current turn's bidding; may auto-resolve the turn
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.FoldRequest true "Player"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/fold [post]
func FoldHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req FoldRequest
		if err := c.BindJSON(&req); err != nil || req.PlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "playerId required"})
			return
		}
		rx, err := rm.Fold(c.Param("code"), req.PlayerID)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Resolve the current turn
// @Description Settles bids and advances the turn; used by the host or on timer expiry
// @Tags Game
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/resolve [post]
func ResolveTurnHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, err := rm.ResolveTurn(c.Param("code"))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Force end of game
// @Description Skip remaining turns and drop straight into the voting phase
// @Tags Game
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/endgame [post]
func EndGameHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, err := rm.ForceEndGame(c.Param("code"))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Force end of voting
// @Description Tally votes even if not everyone voted
// @Tags Game
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/endvote [post]
func EndVoteHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, err := rm.ForceEndVote(c.Param("code"))
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Vote for a player
// @Description One vote per player, no self-votes; the last vote finishes the game
// @Tags Game
// @Accept json
// @Produce json
// @Param code path string true "Room Code"
// @Param request body http.VoteRequest true "Vote"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/vote [post]
func VoteHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req VoteRequest
		if err := c.BindJSON(&req); err != nil || req.VoterID == "" || req.TargetPlayerID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "voterId and targetPlayerId required"})
			return
		}
		rx, err := rm.Vote(c.Param("code"), req.VoterID, req.TargetPlayerID)
		if err != nil {
			c.JSON(errStatus(err), gin.H{"error": err.Error()})
			return
		}
		respondRoom(c, rx)
	}
}

// @Summary Player ranking
// @Description Rows ordered by votes, collection size, then balance, descending
// @Tags Game
// @Produce json
// @Param code path string true "Room Code"
// @Success 200 {object} map[string]interface{}
// @Router /rooms/{code}/rank [get]
func RankHandler(rm *room.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rx, ok := rm.Get(c.Param("code"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"rank": rm.Rank(rx)})
	}
}
