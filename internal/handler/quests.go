package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/osse101/LithosProtocol_Go/internal/game"
)

// CreateQuestRequest describes a new quest. RewardAmount is in base units.
type CreateQuestRequest struct {
	Name          string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Description   string `json:"description" validate:"max=500"`
	RewardAmount  string `json:"reward_amount" validate:"required,amount"`
	RequiredLevel int    `json:"required_level" validate:"min=1,max=100"`
	IsDaily       bool   `json:"is_daily"`
}

// ListQuests lists quests, optionally only active ones
// @Summary List quests
// @Tags quests
// @Produce json
// @Param active query bool false "Only active quests"
// @Success 200 {array} domain.Quest
// @Router /quests [get]
func (h *GameHandler) ListQuests(w http.ResponseWriter, r *http.Request) {
	activeOnly, err := strconv.ParseBool(GetOptionalQueryParam(r, QueryActiveOnly, "false"))
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, QueryActiveOnly))
		return
	}
	quests, err := h.svc.ListQuests(r.Context(), activeOnly)
	if err != nil {
		respondServiceError(w, r, "list quests", err)
		return
	}
	respondJSON(w, http.StatusOK, quests)
}

// GetQuest returns one quest
// @Summary Get quest
// @Tags quests
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} domain.Quest
// @Failure 404 {object} ErrorResponse
// @Router /quests/{id} [get]
func (h *GameHandler) GetQuest(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	quest, err := h.svc.GetQuest(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "get quest", err)
		return
	}
	respondJSON(w, http.StatusOK, quest)
}

// CreateQuest creates an active quest. Requires game_master.
// @Summary Create quest
// @Tags quests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateQuestRequest true "Quest"
// @Success 201 {object} domain.Quest
// @Failure 403 {object} ErrorResponse
// @Router /quests [post]
func (h *GameHandler) CreateQuest(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req CreateQuestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create quest"); err != nil {
		return
	}
	reward, _ := parseAmount(req.RewardAmount)

	quest, err := h.svc.CreateQuest(r.Context(), caller, game.CreateQuestRequest{
		Name:          req.Name,
		Description:   req.Description,
		RewardAmount:  reward,
		RequiredLevel: req.RequiredLevel,
		IsDaily:       req.IsDaily,
	})
	if err != nil {
		respondServiceError(w, r, "create quest", err)
		return
	}
	respondJSON(w, http.StatusCreated, quest)
}

// SetQuestStatus activates or deactivates a quest. Requires game_master.
// @Summary Set quest status
// @Tags quests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Quest ID"
// @Param request body StatusRequest true "Status"
// @Success 200 {object} SuccessResponse
// @Router /quests/{id}/status [post]
func (h *GameHandler) SetQuestStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	var req StatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set quest status"); err != nil {
		return
	}
	if err := h.svc.SetQuestActive(r.Context(), caller, id, *req.Active); err != nil {
		respondServiceError(w, r, "set quest status", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgQuestStatusUpdated})
}

// CompleteQuest completes a quest for the caller and pays its reward
// @Summary Complete quest
// @Tags quests
// @Security BearerAuth
// @Produce json
// @Param id path int true "Quest ID"
// @Success 200 {object} domain.QuestCompletion
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /quests/{id}/complete [post]
func (h *GameHandler) CompleteQuest(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	completion, err := h.svc.CompleteQuest(r.Context(), caller, id)
	if err != nil {
		respondServiceError(w, r, "complete quest", err)
		return
	}
	respondJSON(w, http.StatusOK, completion)
}
