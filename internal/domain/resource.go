package domain

import "time"

// ResourceCategory groups semi-fungible resource types
type ResourceCategory string

// Resource categories
const (
	ResourceOre     ResourceCategory = "ore"
	ResourceWood    ResourceCategory = "wood"
	ResourceGem     ResourceCategory = "gem"
	ResourceEssence ResourceCategory = "essence"
	ResourceHerb    ResourceCategory = "herb"
)

// Valid reports whether c is a known resource category
func (c ResourceCategory) Valid() bool {
	switch c {
	case ResourceOre, ResourceWood, ResourceGem, ResourceEssence, ResourceHerb:
		return true
	}
	return false
}

// ResourceType is a stackable resource definition
type ResourceType struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Category    ResourceCategory `json:"category"`
	Rarity      int              `json:"rarity"`
	MaxSupply   int64            `json:"max_supply"` // 0 = unlimited
	TotalMinted int64            `json:"total_minted"`
	IsActive    bool             `json:"is_active"`
	CreatedAt   time.Time        `json:"created_at"`
}

// CanMint reports whether minting amount more units stays within MaxSupply
func (r *ResourceType) CanMint(amount int64) bool {
	if amount < 0 {
		return false
	}
	if r.MaxSupply == 0 {
		return true
	}
	return amount <= r.MaxSupply-r.TotalMinted
}
