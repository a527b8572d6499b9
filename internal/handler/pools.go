package handler

import (
	"context"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
	"github.com/osse101/LithosProtocol_Go/internal/staking"
)

// StakingHandler serves the staking pool endpoints
type StakingHandler struct {
	svc staking.Service
}

// NewStakingHandler creates a handler over the staking service
func NewStakingHandler(svc staking.Service) *StakingHandler {
	return &StakingHandler{svc: svc}
}

// CreatePoolRequest describes a staking pool. RewardRate is 1e18-scaled
// reward base units per second per staked unit.
type CreatePoolRequest struct {
	Name              string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	PoolType          string `json:"pool_type" validate:"required,pool_type"`
	StakingToken      string `json:"staking_token" validate:"omitempty,eth_addr"`
	RewardRate        string `json:"reward_rate" validate:"required,amount"`
	LockPeriodSeconds int64  `json:"lock_period_seconds" validate:"min=0,max=31536000"`
	MaxStakePerUser   string `json:"max_stake_per_user" validate:"omitempty,amount"`
}

// StakeRequest moves fungible principal into or out of a pool
type StakeRequest struct {
	Amount string `json:"amount" validate:"required,amount"`
}

// StakeNFTRequest moves one asset into or out of a pool
type StakeNFTRequest struct {
	TokenID *int64 `json:"token_id" validate:"required,min=0"`
}

// ClaimResponse reports the rewards paid by a claim
type ClaimResponse struct {
	PoolID int64  `json:"pool_id"`
	Amount string `json:"amount"`
}

// PendingRewardsResponse reports unclaimed rewards as of now
type PendingRewardsResponse struct {
	PoolID  int64  `json:"pool_id"`
	Address string `json:"address"`
	Pending string `json:"pending"`
}

// StakedNFTsResponse lists the assets an account has staked in a pool
type StakedNFTsResponse struct {
	PoolID   int64   `json:"pool_id"`
	Address  string  `json:"address"`
	TokenIDs []int64 `json:"token_ids"`
}

// ListPools lists every pool
// @Summary List pools
// @Tags staking
// @Produce json
// @Success 200 {array} domain.StakingPool
// @Router /pools [get]
func (h *StakingHandler) ListPools(w http.ResponseWriter, r *http.Request) {
	pools, err := h.svc.ListPools(r.Context())
	if err != nil {
		respondServiceError(w, r, "list pools", err)
		return
	}
	respondJSON(w, http.StatusOK, pools)
}

// GetPool returns one pool
// @Summary Get pool
// @Tags staking
// @Produce json
// @Param id path int true "Pool ID"
// @Success 200 {object} domain.StakingPool
// @Failure 404 {object} ErrorResponse
// @Router /pools/{id} [get]
func (h *StakingHandler) GetPool(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	pool, err := h.svc.GetPool(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "get pool", err)
		return
	}
	respondJSON(w, http.StatusOK, pool)
}

// CreatePool creates an active pool. Requires pool_manager.
// @Summary Create pool
// @Tags staking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreatePoolRequest true "Pool"
// @Success 201 {object} domain.StakingPool
// @Failure 403 {object} ErrorResponse
// @Router /pools [post]
func (h *StakingHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	var req CreatePoolRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create pool"); err != nil {
		return
	}
	rate, _ := parseAmount(req.RewardRate)
	maxStake := new(big.Int)
	if req.MaxStakePerUser != "" {
		maxStake, _ = parseAmount(req.MaxStakePerUser)
	}
	var token common.Address
	if req.StakingToken != "" {
		token = common.HexToAddress(req.StakingToken)
	}

	pool, err := h.svc.CreatePool(r.Context(), caller, staking.CreatePoolRequest{
		Name:            req.Name,
		PoolType:        domain.PoolType(req.PoolType),
		StakingToken:    token,
		RewardRate:      rate,
		LockPeriod:      time.Duration(req.LockPeriodSeconds) * time.Second,
		MaxStakePerUser: maxStake,
	})
	if err != nil {
		respondServiceError(w, r, "create pool", err)
		return
	}
	respondJSON(w, http.StatusCreated, pool)
}

// SetPoolStatus activates or deactivates a pool. Requires pool_manager.
// @Summary Set pool status
// @Tags staking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Pool ID"
// @Param request body StatusRequest true "Status"
// @Success 200 {object} SuccessResponse
// @Router /pools/{id}/status [post]
func (h *StakingHandler) SetPoolStatus(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	var req StatusRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Set pool status"); err != nil {
		return
	}
	if err := h.svc.SetPoolActive(r.Context(), caller, id, *req.Active); err != nil {
		respondServiceError(w, r, "set pool status", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPoolStatusUpdated})
}

// Stake deposits fungible tokens into a token pool
// @Summary Stake tokens
// @Tags staking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Pool ID"
// @Param request body StakeRequest true "Amount in base units"
// @Success 200 {object} domain.UserStake
// @Failure 422 {object} ErrorResponse
// @Router /pools/{id}/stake [post]
func (h *StakingHandler) Stake(w http.ResponseWriter, r *http.Request) {
	h.moveTokens(w, r, "stake tokens", h.svc.StakeTokens)
}

// Unstake withdraws fungible tokens after the lock expires
// @Summary Unstake tokens
// @Tags staking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Pool ID"
// @Param request body StakeRequest true "Amount in base units"
// @Success 200 {object} domain.UserStake
// @Failure 422 {object} ErrorResponse
// @Router /pools/{id}/unstake [post]
func (h *StakingHandler) Unstake(w http.ResponseWriter, r *http.Request) {
	h.moveTokens(w, r, "unstake tokens", h.svc.UnstakeTokens)
}

// StakeNFT deposits an owned asset into an nft pool
// @Summary Stake NFT
// @Tags staking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Pool ID"
// @Param request body StakeNFTRequest true "Asset"
// @Success 200 {object} domain.UserStake
// @Router /pools/{id}/stake-nft [post]
func (h *StakingHandler) StakeNFT(w http.ResponseWriter, r *http.Request) {
	h.moveNFT(w, r, "stake nft", h.svc.StakeNFT)
}

// UnstakeNFT withdraws a staked asset after the lock expires
// @Summary Unstake NFT
// @Tags staking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Pool ID"
// @Param request body StakeNFTRequest true "Asset"
// @Success 200 {object} domain.UserStake
// @Router /pools/{id}/unstake-nft [post]
func (h *StakingHandler) UnstakeNFT(w http.ResponseWriter, r *http.Request) {
	h.moveNFT(w, r, "unstake nft", h.svc.UnstakeNFT)
}

type tokenMove func(ctx context.Context, caller common.Address, poolID int64, amount *big.Int) (*domain.UserStake, error)

type nftMove func(ctx context.Context, caller common.Address, poolID, tokenID int64) (*domain.UserStake, error)

func (h *StakingHandler) moveTokens(w http.ResponseWriter, r *http.Request, op string, move tokenMove) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	var req StakeRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return
	}
	amount, _ := parseAmount(req.Amount)

	stake, err := move(r.Context(), caller, id, amount)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	respondJSON(w, http.StatusOK, stake)
}

func (h *StakingHandler) moveNFT(w http.ResponseWriter, r *http.Request, op string, move nftMove) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	var req StakeNFTRequest
	if err := DecodeAndValidateRequest(r, w, &req, op); err != nil {
		return
	}

	stake, err := move(r.Context(), caller, id, *req.TokenID)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	respondJSON(w, http.StatusOK, stake)
}

// ClaimRewards pays the caller's accrued rewards
// @Summary Claim rewards
// @Tags staking
// @Security BearerAuth
// @Produce json
// @Param id path int true "Pool ID"
// @Success 200 {object} ClaimResponse
// @Router /pools/{id}/claim [post]
func (h *StakingHandler) ClaimRewards(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return
	}
	paid, err := h.svc.ClaimRewards(r.Context(), caller, id)
	if err != nil {
		respondServiceError(w, r, "claim rewards", err)
		return
	}
	respondJSON(w, http.StatusOK, ClaimResponse{PoolID: id, Amount: paid.String()})
}

// GetPendingRewards reports an account's unclaimed rewards
// @Summary Pending rewards
// @Tags staking
// @Produce json
// @Param id path int true "Pool ID"
// @Param address path string true "Account address"
// @Success 200 {object} PendingRewardsResponse
// @Router /pools/{id}/pending/{address} [get]
func (h *StakingHandler) GetPendingRewards(w http.ResponseWriter, r *http.Request) {
	id, addr, ok := poolAccountParams(w, r)
	if !ok {
		return
	}
	pending, err := h.svc.GetPendingRewards(r.Context(), id, addr)
	if err != nil {
		respondServiceError(w, r, "get pending rewards", err)
		return
	}
	respondJSON(w, http.StatusOK, PendingRewardsResponse{PoolID: id, Address: addr.Hex(), Pending: pending.String()})
}

// GetUserStake returns an account's position in a pool
// @Summary Get stake
// @Tags staking
// @Produce json
// @Param id path int true "Pool ID"
// @Param address path string true "Account address"
// @Success 200 {object} domain.UserStake
// @Router /pools/{id}/stakes/{address} [get]
func (h *StakingHandler) GetUserStake(w http.ResponseWriter, r *http.Request) {
	id, addr, ok := poolAccountParams(w, r)
	if !ok {
		return
	}
	stake, err := h.svc.GetUserStake(r.Context(), id, addr)
	if err != nil {
		respondServiceError(w, r, "get stake", err)
		return
	}
	respondJSON(w, http.StatusOK, stake)
}

// GetUserStakedNFTs lists the assets an account has staked in a pool
// @Summary Get staked NFTs
// @Tags staking
// @Produce json
// @Param id path int true "Pool ID"
// @Param address path string true "Account address"
// @Success 200 {object} StakedNFTsResponse
// @Router /pools/{id}/nfts/{address} [get]
func (h *StakingHandler) GetUserStakedNFTs(w http.ResponseWriter, r *http.Request) {
	id, addr, ok := poolAccountParams(w, r)
	if !ok {
		return
	}
	ids, err := h.svc.GetUserStakedNFTs(r.Context(), id, addr)
	if err != nil {
		respondServiceError(w, r, "get staked nfts", err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	respondJSON(w, http.StatusOK, StakedNFTsResponse{PoolID: id, Address: addr.Hex(), TokenIDs: ids})
}

func poolAccountParams(w http.ResponseWriter, r *http.Request) (int64, common.Address, bool) {
	id, ok := idParam(w, r, ParamID)
	if !ok {
		return 0, common.Address{}, false
	}
	addr, ok := addressParam(w, r, ParamAddress)
	if !ok {
		return 0, common.Address{}, false
	}
	return id, addr, true
}
