package handler

import (
	"net/http"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/game"
)

// CraftItemRequest consumes resources and the crafting fee to mint an asset
type CraftItemRequest struct {
	AssetType       string  `json:"asset_type" validate:"required,asset_type"`
	Rarity          int     `json:"rarity" validate:"min=1,max=5"`
	ResourceIDs     []int64 `json:"resource_ids" validate:"max=32,dive,min=0"`
	ResourceAmounts []int64 `json:"resource_amounts" validate:"max=32,dive,min=1"`
	MetadataURI     string  `json:"metadata_uri" validate:"max=512"`
}

// RepairResponse reports the fee burned by a repair
type RepairResponse struct {
	TokenID int64  `json:"token_id"`
	Cost    string `json:"cost"`
}

// CraftItem crafts a new asset for the caller
// @Summary Craft item
// @Tags items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CraftItemRequest true "Craft request"
// @Success 201 {object} game.CraftResult
// @Failure 422 {object} ErrorResponse
// @Router /items/craft [post]
func (h *GameHandler) CraftItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req CraftItemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Craft item"); err != nil {
		return
	}
	result, err := h.svc.CraftItem(r.Context(), caller, game.CraftRequest{
		AssetType:       domain.AssetType(req.AssetType),
		Rarity:          req.Rarity,
		ResourceIDs:     req.ResourceIDs,
		ResourceAmounts: req.ResourceAmounts,
		MetadataURI:     req.MetadataURI,
	})
	if err != nil {
		respondServiceError(w, r, "craft item", err)
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

// RepairItem burns the repair fee for an owned asset
// @Summary Repair item
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Token ID"
// @Success 200 {object} RepairResponse
// @Router /items/{id}/repair [post]
func (h *GameHandler) RepairItem(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	cost, err := h.svc.RepairItem(r.Context(), caller, id)
	if err != nil {
		respondServiceError(w, r, "repair item", err)
		return
	}
	respondJSON(w, http.StatusOK, RepairResponse{TokenID: id, Cost: cost.String()})
}

// LevelUpAsset raises an owned asset's level by one
// @Summary Level up asset
// @Tags items
// @Security BearerAuth
// @Produce json
// @Param id path int true "Token ID"
// @Success 200 {object} domain.Asset
// @Router /items/{id}/level-up [post]
func (h *GameHandler) LevelUpAsset(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	asset, err := h.svc.LevelUpAsset(r.Context(), caller, id)
	if err != nil {
		respondServiceError(w, r, "level up asset", err)
		return
	}
	respondJSON(w, http.StatusOK, asset)
}
