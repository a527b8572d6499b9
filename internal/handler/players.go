package handler

import (
	"net/http"
)

// BalanceResponse is a utility token balance in base units
type BalanceResponse struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// RegisterPlayer registers the caller as a level 1 player
// @Summary Register player
// @Tags players
// @Security BearerAuth
// @Produce json
// @Success 201 {object} domain.Player
// @Failure 409 {object} ErrorResponse
// @Router /players/register [post]
func (h *GameHandler) RegisterPlayer(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	player, err := h.svc.RegisterPlayer(r.Context(), caller)
	if err != nil {
		respondServiceError(w, r, "register player", err)
		return
	}
	respondJSON(w, http.StatusCreated, player)
}

// GetPlayer returns a player's progression snapshot and utility balance
// @Summary Get player
// @Tags players
// @Produce json
// @Param address path string true "Player address"
// @Success 200 {object} domain.PlayerData
// @Failure 422 {object} ErrorResponse
// @Router /players/{address} [get]
func (h *GameHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressParam(w, r, ParamAddress)
	if !ok {
		return
	}
	data, err := h.svc.GetPlayerData(r.Context(), addr)
	if err != nil {
		respondServiceError(w, r, "get player", err)
		return
	}
	respondJSON(w, http.StatusOK, data)
}

// GetPlayerAssets lists the unique assets a player owns
// @Summary List player assets
// @Tags players
// @Produce json
// @Param address path string true "Player address"
// @Success 200 {array} domain.Asset
// @Router /players/{address}/assets [get]
func (h *GameHandler) GetPlayerAssets(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressParam(w, r, ParamAddress)
	if !ok {
		return
	}
	assets, err := h.svc.GetPlayerAssets(r.Context(), addr)
	if err != nil {
		respondServiceError(w, r, "get player assets", err)
		return
	}
	respondJSON(w, http.StatusOK, assets)
}

// GetBalance returns an account's utility token balance
// @Summary Get utility balance
// @Tags players
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} BalanceResponse
// @Router /players/{address}/balance [get]
func (h *GameHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressParam(w, r, ParamAddress)
	if !ok {
		return
	}
	bal, err := h.svc.GetBalance(r.Context(), addr)
	if err != nil {
		respondServiceError(w, r, "get balance", err)
		return
	}
	respondJSON(w, http.StatusOK, BalanceResponse{Address: addr.Hex(), Balance: bal.String()})
}
