package repository

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// AssetStore persists unique assets
type AssetStore interface {
	// InsertAsset assigns the next sequential token id, starting at 1
	InsertAsset(ctx context.Context, asset *domain.Asset) (int64, error)
	// GetAsset returns domain.ErrAssetNotFound for unknown ids
	GetAsset(ctx context.Context, tokenID int64) (*domain.Asset, error)
	UpdateAsset(ctx context.Context, asset *domain.Asset) error
	ListAssetsByOwner(ctx context.Context, owner common.Address) ([]domain.Asset, error)
}

// ResourceStore persists semi-fungible resource types and balances
type ResourceStore interface {
	InsertResourceType(ctx context.Context, rt *domain.ResourceType) (int64, error)
	// GetResourceType returns domain.ErrResourceNotFound for unknown ids
	GetResourceType(ctx context.Context, id int64) (*domain.ResourceType, error)
	UpdateResourceType(ctx context.Context, rt *domain.ResourceType) error
	ListResourceTypes(ctx context.Context) ([]domain.ResourceType, error)

	// GetResourceBalance returns zero for unknown holders
	GetResourceBalance(ctx context.Context, id int64, account common.Address) (int64, error)
	SetResourceBalance(ctx context.Context, id int64, account common.Address, amount int64) error
}
