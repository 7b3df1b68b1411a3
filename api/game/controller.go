package gameapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/maze-arena/api/identity"
	"github.com/beka-birhanu/maze-arena/game"
	"github.com/beka-birhanu/maze-arena/service"
	"github.com/beka-birhanu/maze-arena/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GameController serves maze games, move checks, attempts and rankings.
type GameController struct {
	arena i.Arena
}

// NewGameController initializes a GameController.
func NewGameController(a i.Arena) (*GameController, error) {
	if a == nil {
		return nil, errors.New("game controller requires an arena")
	}
	return &GameController{arena: a}, nil
}

// RegisterPublic registers public routes.
func (gc *GameController) RegisterPublic(route *gin.RouterGroup) {
	route.GET("/leaderboard", gc.leaderboard)
}

// RegisterProtected registers protected routes.
func (gc *GameController) RegisterProtected(route *gin.RouterGroup) {
	games := route.Group("/games")
	{
		games.POST("", gc.newGame)
		games.GET("/:ID", gc.game)
		games.GET("/:ID/ascii", gc.ascii)
		games.POST("/:ID/moves/check", gc.checkMove)
		games.POST("/:ID/attempts", gc.attempt)
	}
	route.GET("/stats", gc.stats)
}

// newGame issues a maze at the requested level.
func (gc *GameController) newGame(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request NewGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g, err := gc.arena.NewGame(ctx.Request.Context(), playerID, *request.Level)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newGameResponse(g))
}

// game returns one of the caller's games.
func (gc *GameController) game(ctx *gin.Context) {
	playerID, gameID, ok := ids(ctx)
	if !ok {
		return
	}

	g, err := gc.arena.Game(ctx.Request.Context(), playerID, gameID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newGameResponse(g))
}

// ascii returns the maze drawn as text.
func (gc *GameController) ascii(ctx *gin.Context) {
	playerID, gameID, ok := ids(ctx)
	if !ok {
		return
	}

	g, err := gc.arena.Game(ctx.Request.Context(), playerID, gameID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.String(http.StatusOK, g.Maze.String())
}

// checkMove validates a single step.
func (gc *GameController) checkMove(ctx *gin.Context) {
	playerID, gameID, ok := ids(ctx)
	if !ok {
		return
	}

	var request CheckMoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid, next, err := gc.arena.CheckMove(ctx.Request.Context(), playerID, gameID, *request.Position, *request.Direction)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &CheckMoveResponse{Valid: valid, Next: next})
}

// attempt replays a recorded move list.
func (gc *GameController) attempt(ctx *gin.Context) {
	playerID, gameID, ok := ids(ctx)
	if !ok {
		return
	}

	var request AttemptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, result, err := gc.arena.Attempt(ctx.Request.Context(), playerID, gameID, request.Moves)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAttemptResponse(a, result))
}

// stats returns the caller's attempt counts.
func (gc *GameController) stats(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	stats, err := gc.arena.Stats(ctx.Request.Context(), playerID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// leaderboard returns the best runs.
func (gc *GameController) leaderboard(ctx *gin.Context) {
	var limit int64
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	entries, err := gc.arena.Leaderboard(ctx.Request.Context(), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"entries": entries})
}

// ids extracts the authenticated player and the game ID path parameter,
// writing the error response when either is missing.
func ids(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}

	gameID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return uuid.Nil, uuid.Nil, false
	}

	return playerID, gameID, true
}

func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, game.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotGameOwner):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidLevel),
		errors.Is(err, service.ErrNoMoves),
		errors.Is(err, service.ErrTooManyMoves):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
