package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// UpdateConfigRequest replaces the game configuration. Amounts are base units.
type UpdateConfigRequest struct {
	DailyQuestReward   string `json:"daily_quest_reward" validate:"required,amount"`
	PvPWinReward       string `json:"pvp_win_reward" validate:"required,amount"`
	LeaderboardReward  string `json:"leaderboard_reward" validate:"required,amount"`
	CraftingCost       string `json:"crafting_cost" validate:"required,amount"`
	RepairCost         string `json:"repair_cost" validate:"required,amount"`
	TournamentEntryFee string `json:"tournament_entry_fee" validate:"required,amount"`
}

// RoleRequest grants or revokes a role. Requires admin.
type RoleRequest struct {
	Role    string `json:"role" validate:"required,role"`
	Account string `json:"account" validate:"required,eth_addr"`
}

// RolesResponse lists the roles an account holds
type RolesResponse struct {
	Address string        `json:"address"`
	Roles   []domain.Role `json:"roles"`
}

// StatusResponse reports whether the economy is paused
type StatusResponse struct {
	Paused        bool  `json:"paused"`
	ConfigVersion int64 `json:"config_version"`
}

// GetConfig returns the live game configuration
// @Summary Get game config
// @Tags admin
// @Produce json
// @Success 200 {object} domain.GameConfig
// @Router /config [get]
func (h *GameHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.GetGameConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, "get config", err)
		return
	}
	respondJSON(w, http.StatusOK, cfg)
}

// UpdateConfig replaces the game configuration. Requires game_master.
// @Summary Update game config
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateConfigRequest true "Configuration"
// @Success 200 {object} domain.GameConfig
// @Failure 403 {object} ErrorResponse
// @Router /config [put]
func (h *GameHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req UpdateConfigRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update config"); err != nil {
		return
	}
	var cfg domain.GameConfig
	cfg.DailyQuestReward, _ = parseAmount(req.DailyQuestReward)
	cfg.PvPWinReward, _ = parseAmount(req.PvPWinReward)
	cfg.LeaderboardReward, _ = parseAmount(req.LeaderboardReward)
	cfg.CraftingCost, _ = parseAmount(req.CraftingCost)
	cfg.RepairCost, _ = parseAmount(req.RepairCost)
	cfg.TournamentEntryFee, _ = parseAmount(req.TournamentEntryFee)

	updated, err := h.svc.UpdateGameConfig(r.Context(), caller, cfg)
	if err != nil {
		respondServiceError(w, r, "update config", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// GetStatus reports the pause flag and the live config version
// @Summary Economy status
// @Tags admin
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /status [get]
func (h *GameHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	paused, err := h.svc.IsPaused(r.Context())
	if err != nil {
		respondServiceError(w, r, "get status", err)
		return
	}
	cfg, err := h.svc.GetGameConfig(r.Context())
	if err != nil {
		respondServiceError(w, r, "get status", err)
		return
	}
	respondJSON(w, http.StatusOK, StatusResponse{Paused: paused, ConfigVersion: cfg.Version})
}

// Pause halts every pausable operation. Requires pauser.
// @Summary Pause economy
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/pause [post]
func (h *GameHandler) Pause(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := h.svc.Pause(r.Context(), caller); err != nil {
		respondServiceError(w, r, "pause", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSystemPaused})
}

// Unpause resumes the economy. Requires pauser.
// @Summary Unpause economy
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /admin/unpause [post]
func (h *GameHandler) Unpause(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	if err := h.svc.Unpause(r.Context(), caller); err != nil {
		respondServiceError(w, r, "unpause", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgSystemUnpaused})
}

// GrantRole grants a role to an account
// @Summary Grant role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RoleRequest true "Role grant"
// @Success 200 {object} SuccessResponse
// @Router /admin/roles/grant [post]
func (h *GameHandler) GrantRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, true)
}

// RevokeRole removes a role from an account
// @Summary Revoke role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body RoleRequest true "Role revocation"
// @Success 200 {object} SuccessResponse
// @Router /admin/roles/revoke [post]
func (h *GameHandler) RevokeRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, false)
}

func (h *GameHandler) changeRole(w http.ResponseWriter, r *http.Request, grant bool) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req RoleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Change role"); err != nil {
		return
	}
	role, account := domain.Role(req.Role), common.HexToAddress(req.Account)

	if grant {
		if err := h.svc.GrantRole(r.Context(), caller, role, account); err != nil {
			respondServiceError(w, r, "grant role", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRoleGranted})
		return
	}
	if err := h.svc.RevokeRole(r.Context(), caller, role, account); err != nil {
		respondServiceError(w, r, "revoke role", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgRoleRevoked})
}

// GetRoles lists the roles an account holds
// @Summary Get roles
// @Tags admin
// @Produce json
// @Param address path string true "Account address"
// @Success 200 {object} RolesResponse
// @Router /roles/{address} [get]
func (h *GameHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	addr, ok := addressParam(w, r, ParamAddress)
	if !ok {
		return
	}
	roles, err := h.svc.GetRoles(r.Context(), addr)
	if err != nil {
		respondServiceError(w, r, "get roles", err)
		return
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	respondJSON(w, http.StatusOK, RolesResponse{Address: addr.Hex(), Roles: roles})
}
