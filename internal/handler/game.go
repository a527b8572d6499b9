package handler

import (
	"github.com/osse101/LithosProtocol_Go/internal/game"
)

// GameHandler serves the game economy endpoints
type GameHandler struct {
	svc game.Service
}

// NewGameHandler creates a handler over the game service
func NewGameHandler(svc game.Service) *GameHandler {
	return &GameHandler{svc: svc}
}

// StatusRequest toggles an entity's active flag
type StatusRequest struct {
	Active *bool `json:"active" validate:"required"`
}
