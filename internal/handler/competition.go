package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
)

// PvPResultRequest reports a finished match. Requires oracle.
type PvPResultRequest struct {
	Winner string `json:"winner" validate:"required,eth_addr"`
	Loser  string `json:"loser" validate:"required,eth_addr"`
}

// LeaderboardRequest lists the accounts paid the leaderboard reward
type LeaderboardRequest struct {
	Winners []string `json:"winners" validate:"required,min=1,max=100,dive,eth_addr"`
}

// LeaderboardResponse reports a leaderboard payout
type LeaderboardResponse struct {
	Winners    int    `json:"winners"`
	RewardEach string `json:"reward_each"`
}

// RecordPvPResult records a match outcome and pays the winner
// @Summary Record PvP result
// @Tags competition
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PvPResultRequest true "Match result"
// @Success 200 {object} game.PvPResult
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /pvp/results [post]
func (h *GameHandler) RecordPvPResult(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req PvPResultRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record PvP result"); err != nil {
		return
	}
	result, err := h.svc.RecordPvPResult(r.Context(), caller, common.HexToAddress(req.Winner), common.HexToAddress(req.Loser))
	if err != nil {
		respondServiceError(w, r, "record pvp result", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// EnterTournament pays the entry fee and registers the caller
// @Summary Enter tournament
// @Tags competition
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} domain.TournamentEntry
// @Failure 409 {object} ErrorResponse
// @Router /tournaments/{id}/enter [post]
func (h *GameHandler) EnterTournament(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	entry, err := h.svc.EnterTournament(r.Context(), caller, id)
	if err != nil {
		respondServiceError(w, r, "enter tournament", err)
		return
	}
	respondJSON(w, http.StatusOK, entry)
}

// DistributeLeaderboardRewards pays every listed winner. Requires oracle.
// @Summary Distribute leaderboard rewards
// @Tags competition
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body LeaderboardRequest true "Winners"
// @Success 200 {object} LeaderboardResponse
// @Router /leaderboard/rewards [post]
func (h *GameHandler) DistributeLeaderboardRewards(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req LeaderboardRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Distribute leaderboard rewards"); err != nil {
		return
	}
	winners := make([]common.Address, len(req.Winners))
	for i, a := range req.Winners {
		winners[i] = common.HexToAddress(a)
	}
	each, err := h.svc.DistributeLeaderboardRewards(r.Context(), caller, winners)
	if err != nil {
		respondServiceError(w, r, "distribute leaderboard rewards", err)
		return
	}
	respondJSON(w, http.StatusOK, LeaderboardResponse{Winners: len(winners), RewardEach: each.String()})
}
