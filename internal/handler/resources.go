package handler

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/game"
)

// CreateResourceTypeRequest registers a resource type. MaxSupply 0 is unlimited.
type CreateResourceTypeRequest struct {
	Name      string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Category  string `json:"category" validate:"required,resource_category"`
	Rarity    int    `json:"rarity" validate:"min=1,max=5"`
	MaxSupply int64  `json:"max_supply" validate:"min=0"`
}

// MintResourcesRequest mints a batch of resources to one account
type MintResourcesRequest struct {
	To      string  `json:"to" validate:"required,eth_addr"`
	IDs     []int64 `json:"ids" validate:"required,min=1,max=64,dive,min=0"`
	Amounts []int64 `json:"amounts" validate:"required,min=1,max=64,dive,min=1"`
}

// ResourceBalanceResponse is an account's holding of one resource type
type ResourceBalanceResponse struct {
	ResourceID int64  `json:"resource_id"`
	Address    string `json:"address"`
	Balance    int64  `json:"balance"`
}

// ListResourceTypes lists every resource type
// @Summary List resource types
// @Tags resources
// @Produce json
// @Success 200 {array} domain.ResourceType
// @Router /resources [get]
func (h *GameHandler) ListResourceTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListResourceTypes(r.Context())
	if err != nil {
		respondServiceError(w, r, "list resource types", err)
		return
	}
	respondJSON(w, http.StatusOK, types)
}

// CreateResourceType registers a resource type. Requires game_master.
// @Summary Create resource type
// @Tags resources
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateResourceTypeRequest true "Resource type"
// @Success 201 {object} domain.ResourceType
// @Router /resources [post]
func (h *GameHandler) CreateResourceType(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req CreateResourceTypeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create resource type"); err != nil {
		return
	}
	rt, err := h.svc.CreateResourceType(r.Context(), caller, game.CreateResourceTypeRequest{
		Name:      req.Name,
		Category:  domain.ResourceCategory(req.Category),
		Rarity:    req.Rarity,
		MaxSupply: req.MaxSupply,
	})
	if err != nil {
		respondServiceError(w, r, "create resource type", err)
		return
	}
	respondJSON(w, http.StatusCreated, rt)
}

// SetResourceTypeStatus activates or deactivates a resource type
// @Summary Set resource type status
// @Tags resources
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Resource type ID"
// @Param request body StatusRequest true "Status"
// @Success 200 {object} SuccessResponse
// @Router /resources/{id}/status [post]
func (h *GameHandler) SetResourceTypeStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	var req StatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set resource status"); err != nil {
		return
	}
	if err := h.svc.SetResourceTypeActive(r.Context(), caller, id, *req.Active); err != nil {
		respondServiceError(w, r, "set resource status", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResourceStatusSet})
}

// MintResources mints resources to an account. Requires minter.
// @Summary Mint resources
// @Tags resources
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body MintResourcesRequest true "Mint batch"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /resources/mint [post]
func (h *GameHandler) MintResources(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req MintResourcesRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mint resources"); err != nil {
		return
	}
	if err := h.svc.MintResources(r.Context(), caller, common.HexToAddress(req.To), req.IDs, req.Amounts); err != nil {
		respondServiceError(w, r, "mint resources", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgResourcesMinted})
}

// GetResourceBalance returns an account's balance of one resource type
// @Summary Get resource balance
// @Tags resources
// @Produce json
// @Param id path int true "Resource type ID"
// @Param address path string true "Account address"
// @Success 200 {object} ResourceBalanceResponse
// @Router /resources/{id}/balance/{address} [get]
func (h *GameHandler) GetResourceBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	addr, ok := addressParam(w, r, ParamAddress)
	if !ok {
		return
	}
	bal, err := h.svc.GetResourceBalance(r.Context(), id, addr)
	if err != nil {
		respondServiceError(w, r, "get resource balance", err)
		return
	}
	respondJSON(w, http.StatusOK, ResourceBalanceResponse{ResourceID: id, Address: addr.Hex(), Balance: bal})
}
