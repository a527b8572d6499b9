package handler

import (
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/auth"
	"github.com/osse101/LithosProtocol_Go/internal/logger"
)

// AuthHandler issues bearer tokens to the trusted frontend. The route sits
// behind the API key, so the key holder vouches for the account it names.
type AuthHandler struct {
	tokens *auth.TokenService
}

// NewAuthHandler creates the token handler
func NewAuthHandler(tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{tokens: tokens}
}

// TokenRequest names the account to issue a token for
type TokenRequest struct {
	Address string `json:"address" validate:"required,eth_addr"`
}

// TokenResponse is a signed bearer token
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueToken signs a caller token for an account
// @Summary Issue access token
// @Tags auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body TokenRequest true "Account"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse
// @Router /auth/token [post]
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Issue token"); err != nil {
		return
	}
	account := common.HexToAddress(req.Address)

	token, expires, err := h.tokens.Issue(account)
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgIssueTokenFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgIssueTokenFailed)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgTokenIssued, "account", account.Hex(), "expires_at", expires)
	respondJSON(w, http.StatusOK, TokenResponse{Token: token, ExpiresAt: expires})
}
