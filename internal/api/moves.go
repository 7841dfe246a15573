// Package api exposes move generation over HTTP with gin.
package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/game"
	"github.com/lgbarn/movegen-go/internal/hashing"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/processing"
)

// MovesApi serves move queries. The /moves routes are stateless and take a
// FEN per request; the /games routes work on in-memory game sessions.
type MovesApi struct {
	Workers   int
	LogFile   io.Writer
	Verbosity int
	games     *game.Manager
	tables    *hashing.ThreadSafeMoveCache
}

// NewMovesApi creates a MovesApi with no game sessions from the worker,
// cache and logging settings in cfg.
func NewMovesApi(cfg *config.Config) *MovesApi {
	return &MovesApi{
		Workers:   cfg.Workers,
		LogFile:   cfg.LogFile,
		Verbosity: cfg.Verbosity,
		games:     game.NewManager(),
		tables:    hashing.NewThreadSafeMoveCache(cfg.Server.CacheSize),
	}
}

// NewRouter wires the routes onto a new gin engine.
func NewRouter(a *MovesApi) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/moves", a.Moves)
	r.GET("/moves/all", a.AllMoves)

	r.POST("/games", a.CreateGame)
	g := r.Group("/games/:id")
	g.GET("", a.GameStatus)
	g.DELETE("", a.DeleteGame)
	g.GET("/moves", a.GameMoves)
	g.POST("/move", a.GameMove)
	g.POST("/reset", a.GameReset)
	g.PUT("/promotion", a.GamePromotion)
	return r
}

func (a *MovesApi) logf(format string, args ...interface{}) {
	if a.LogFile != nil && a.Verbosity > 1 {
		fmt.Fprintf(a.LogFile, format, args...)
	}
}

// boardFromQuery loads the fen query parameter, defaulting to the initial
// position.
func boardFromQuery(ctx *gin.Context) (*chess.Board, error) {
	return engine.LoadFEN(ctx.DefaultQuery("fen", engine.InitialFEN))
}

// errorStatus maps generator errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, errors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrEmptySquare),
		errors.Is(err, errors.ErrIllegalMove),
		errors.Is(err, errors.ErrWrongTurn),
		errors.Is(err, errors.ErrGameOver):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errors.ErrInvalidSquare),
		errors.Is(err, errors.ErrInvalidFEN),
		errors.Is(err, errors.ErrInvalidPromotion):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, err error) {
	ctx.AbortWithStatusJSON(errorStatus(err), gin.H{
		"error": err.Error(),
	})
}

// Moves answers GET /moves?fen=...&square=e2.
func (a *MovesApi) Moves(ctx *gin.Context) {
	board, err := boardFromQuery(ctx)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	from, err := chess.ParseSquare(ctx.Query("square"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	moves, err := engine.GenerateMoves(board, from)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	a.logf("moves %s: %d\n", from, len(moves))
	ctx.JSON(http.StatusOK, output.MovesToJSON(from, board.Get(from), moves))
}

// AllMoves answers GET /moves/all?fen=...&colour=white.
func (a *MovesApi) AllMoves(ctx *gin.Context) {
	board, err := boardFromQuery(ctx)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	colour := ctx.DefaultQuery("colour", "all")
	filter, ok := processing.ParseFilter(colour)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("colour must be white, black or all, got %q", colour),
		})
		return
	}

	table, err := a.tables.MoveTable(ctx.Request.Context(), board, filter, a.Workers)
	if err != nil {
		a.logf("moves/all %s: %v\n", colour, err)
		abortWithError(ctx, err)
		return
	}
	a.logf("moves/all %s: %d pieces\n", colour, len(table))
	ctx.JSON(http.StatusOK, output.TableToJSON(table, colour))
}
