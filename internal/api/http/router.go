package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"character-auction/internal/room"
	"character-auction/internal/theme"
	"character-auction/internal/theme/dragonball"
)

func SetupRouter(rm *room.Manager, catalog *theme.Catalog, characters *dragonball.Client, corsOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms", ListRoomsHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.POST("/rooms/:code/join", JoinRoomHandler(rm))

	// --- GAME ENDPOINTS ---
	r.POST("/rooms/:code/configure", ConfigureGameHandler(rm, catalog))
	r.POST("/rooms/:code/start", StartGameHandler(rm))
	r.POST("/rooms/:code/bet", PlaceBetHandler(rm))
	r.POST("/rooms/:code/fold", FoldHandler(rm))
	r.POST("/rooms/:code/resolve", ResolveTurnHandler(rm))
	r.POST("/rooms/:code/endgame", EndGameHandler(rm))
	r.POST("/rooms/:code/endvote", EndVoteHandler(rm))
	r.POST("/rooms/:code/vote", VoteHandler(rm))
	r.GET("/rooms/:code/rank", RankHandler(rm))

	// --- CATALOG ENDPOINTS ---
	r.GET("/themes", ListThemesHandler(catalog))
	r.POST("/themes/import", ImportThemesHandler(catalog))
	r.GET("/characters/dragonball", DragonBallCharactersHandler(characters))
	r.POST("/characters/dragonball", FilterDragonBallCharactersHandler(characters))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
