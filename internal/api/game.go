package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/errors"
	"github.com/lgbarn/movegen-go/internal/game"
	"github.com/lgbarn/movegen-go/internal/output"
)

// GameStatusResponse describes one game session.
type GameStatusResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	FEN      string   `json:"fen"`
	State    string   `json:"state"`
	ToMove   string   `json:"toMove"`
	Ply      int      `json:"ply"`
	Captured []string `json:"captured"`
}

// CreateGameRequest is the optional body of POST /games.
type CreateGameRequest struct {
	FEN    string `json:"fen"`
	ToMove string `json:"toMove"`
}

// MoveRequest is the body of POST /games/:id/move.
type MoveRequest struct {
	From string `json:"from" binding:"required"`
	To   string `json:"to" binding:"required"`
}

// PromotionRequest is the body of PUT /games/:id/promotion.
type PromotionRequest struct {
	Piece string `json:"piece" binding:"required"`
}

var promotionKinds = map[string]chess.PieceKind{
	"knight": chess.Knight, "n": chess.Knight,
	"bishop": chess.Bishop, "b": chess.Bishop,
	"rook": chess.Rook, "r": chess.Rook,
	"queen": chess.Queen, "q": chess.Queen,
}

func statusOf(s *game.Session) GameStatusResponse {
	snap := s.Game.Snapshot()
	captured := make([]string, 0, len(snap.Captured))
	for _, p := range snap.Captured {
		captured = append(captured, p.String())
	}
	return GameStatusResponse{
		ID:       s.ID,
		Name:     s.Name,
		FEN:      engine.BoardToFEN(&snap.Board),
		State:    snap.State.String(),
		ToMove:   snap.ToMove.String(),
		Ply:      snap.Ply,
		Captured: captured,
	}
}

// session looks up the :id path parameter, aborting with 404 if unknown.
func (a *MovesApi) session(ctx *gin.Context) (*game.Session, bool) {
	s, err := a.games.Get(ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return nil, false
	}
	return s, true
}

// CreateGame answers POST /games. Without a body the game starts from the
// initial position with White to move. With a FEN the side to move comes from
// toMove, then from the FEN's active-colour field, then defaults to White.
func (a *MovesApi) CreateGame(ctx *gin.Context) {
	var req CreateGameRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
	}

	if req.FEN == "" {
		s := a.games.Create()
		a.logf("game %s (%s) created\n", s.ID, s.Name)
		ctx.JSON(http.StatusCreated, statusOf(s))
		return
	}

	board, err := engine.LoadFEN(req.FEN)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	// An explicit toMove wins over the active-colour field of a full FEN.
	side := req.ToMove
	if fields := strings.Fields(req.FEN); side == "" && len(fields) > 1 {
		side = fields[1]
	}
	toMove := chess.White
	switch strings.ToLower(side) {
	case "", "w", "white":
	case "b", "black":
		toMove = chess.Black
	default:
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": "toMove must be white or black",
		})
		return
	}

	s := a.games.Adopt(game.NewFromBoard(board, toMove))
	a.logf("game %s created from %s\n", s.ID, req.FEN)
	ctx.JSON(http.StatusCreated, statusOf(s))
}

// GameStatus answers GET /games/:id.
func (a *MovesApi) GameStatus(ctx *gin.Context) {
	s, ok := a.session(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, statusOf(s))
}

// DeleteGame answers DELETE /games/:id.
func (a *MovesApi) DeleteGame(ctx *gin.Context) {
	if err := a.games.Delete(ctx.Param("id")); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GameMoves answers GET /games/:id/moves?square=e2.
func (a *MovesApi) GameMoves(ctx *gin.Context) {
	s, ok := a.session(ctx)
	if !ok {
		return
	}
	from, err := chess.ParseSquare(ctx.Query("square"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	moves, err := s.Game.PossibleMoves(from)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	board := s.Game.Board()
	ctx.JSON(http.StatusOK, output.MovesToJSON(from, board.Get(from), moves))
}

// GameMove answers POST /games/:id/move.
func (a *MovesApi) GameMove(ctx *gin.Context) {
	s, ok := a.session(ctx)
	if !ok {
		return
	}
	var req MoveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	from, err := chess.ParseSquare(req.From)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	to, err := chess.ParseSquare(req.To)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	if _, err := s.Game.MakeMove(from, to); err != nil {
		abortWithError(ctx, err)
		return
	}
	a.logf("game %s move %s-%s\n", s.ID, from, to)
	ctx.JSON(http.StatusOK, statusOf(s))
}

// GameReset answers POST /games/:id/reset.
func (a *MovesApi) GameReset(ctx *gin.Context) {
	s, ok := a.session(ctx)
	if !ok {
		return
	}
	s.Game.Reset()
	ctx.JSON(http.StatusOK, statusOf(s))
}

// GamePromotion answers PUT /games/:id/promotion.
func (a *MovesApi) GamePromotion(ctx *gin.Context) {
	s, ok := a.session(ctx)
	if !ok {
		return
	}
	var req PromotionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	kind, ok := promotionKinds[strings.ToLower(req.Piece)]
	if !ok {
		abortWithError(ctx, errors.Wrapf(errors.ErrInvalidPromotion, "piece %q", req.Piece))
		return
	}
	if err := s.Game.SetPromotion(kind); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"promotion": kind.String(),
	})
}
