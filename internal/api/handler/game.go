package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/sosgame/internal/api/request"
	"github.com/mcoot/sosgame/internal/api/response"
	"github.com/mcoot/sosgame/internal/middleware"
	"github.com/mcoot/sosgame/internal/model"
	"github.com/mcoot/sosgame/internal/services/bot"
	"github.com/mcoot/sosgame/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
	botService     *bot.Service
	logger         *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(
	gameController *game.Controller,
	botService *bot.Service,
	logger *slog.Logger,
) *GameHandler {
	return &GameHandler{
		gameController: gameController,
		botService:     botService,
		logger:         logger,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, invalidRequest("Invalid request body"))
		return
	}

	size, err := req.ParseBoardSize()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	mode := req.Mode
	if mode == "" {
		mode = string(model.DefaultMode)
	}

	var starting model.Player
	if req.StartingPlayer != "" {
		starting, err = model.ParsePlayer(req.StartingPlayer)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	seats, err := req.Seats()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	g, err := h.gameController.CreateGame(r.Context(), game.CreateOptions{
		BoardSize:      size,
		Mode:           mode,
		StartingPlayer: starting,
		Seats:          seats,
		BotStrategy:    req.Strategy,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// A computer may hold the opening seat
	if _, err := h.botService.PlayComputerTurns(r.Context(), g.ID); err != nil {
		h.logError(r, "computer turns failed", g.ID, err)
		h.writeError(w, r, err)
		return
	}

	g, err = h.gameController.GetGame(r.Context(), g.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Place handles POST /api/v1/games/{id}/moves
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, invalidRequest("Invalid request body"))
		return
	}
	if req.Row == nil || req.Col == nil {
		h.writeError(w, r, invalidRequest("row and col are required"))
		return
	}

	result, err := h.gameController.PlaceLetter(r.Context(), id, model.SeatHuman, *req.Row, *req.Col, req.Letter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	moves, err := h.botService.PlayComputerTurns(r.Context(), id)
	if err != nil {
		h.logError(r, "computer turns failed", id, err)
		h.writeError(w, r, err)
		return
	}

	g := result.Game
	if len(moves) > 0 {
		g, err = h.gameController.GetGame(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	response.JSON(w, http.StatusOK, response.MoveResponse{
		Game:          response.GameFromModel(g),
		NewLines:      response.LinesFromModel(result.NewSegments),
		ComputerMoves: response.ComputerMovesFromBot(moves),
	})
}

// Hint handles POST /api/v1/games/{id}/hint
func (h *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	move, err := h.botService.Suggest(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MoveFromModel(move))
}

// AdvanceComputers handles POST /api/v1/games/{id}/computer-moves
func (h *GameHandler) AdvanceComputers(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	moves, err := h.botService.PlayComputerTurns(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ComputerMovesResponse{
		Game:          response.GameFromModel(g),
		ComputerMoves: response.ComputerMovesFromBot(moves),
	})
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	response.NoContent(w)
}

func (h *GameHandler) logError(r *http.Request, msg string, id model.GameID, err error) {
	h.logger.Error(msg,
		slog.String("request_id", middleware.GetRequestID(r.Context())),
		slog.String("game_id", string(id)),
		slog.String("error", err.Error()),
	)
}
