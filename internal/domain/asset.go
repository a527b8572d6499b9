package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AssetType is the category of a unique asset
type AssetType string

// Asset type constants
const (
	AssetTypeWeapon    AssetType = "weapon"
	AssetTypeArmor     AssetType = "armor"
	AssetTypeAccessory AssetType = "accessory"
	AssetTypeTool      AssetType = "tool"
	AssetTypeCharacter AssetType = "character"
	AssetTypeLand      AssetType = "land"
)

// Valid reports whether t is a known asset type
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeWeapon, AssetTypeArmor, AssetTypeAccessory, AssetTypeTool, AssetTypeCharacter, AssetTypeLand:
		return true
	}
	return false
}

// Rarity bounds shared by assets and resources
const (
	MinRarity = 1
	MaxRarity = 5
)

// ValidRarity reports whether r is within 1..5
func ValidRarity(r int) bool {
	return r >= MinRarity && r <= MaxRarity
}

// Asset is a unique (non-fungible) game item
type Asset struct {
	TokenID        int64          `json:"token_id"`
	Owner          common.Address `json:"owner"`
	AssetType      AssetType      `json:"asset_type"`
	Level          int            `json:"level"`
	Rarity         int            `json:"rarity"`
	MetadataURI    string         `json:"metadata_uri"`
	IsStaked       bool           `json:"is_staked"`
	CreatedAt      time.Time      `json:"created_at"`
	LastRepairedAt *time.Time     `json:"last_repaired_at,omitempty"`
}

// Clone returns a deep copy of the asset
func (a Asset) Clone() *Asset {
	if a.LastRepairedAt != nil {
		t := *a.LastRepairedAt
		a.LastRepairedAt = &t
	}
	return &a
}
