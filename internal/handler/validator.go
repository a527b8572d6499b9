package handler

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/osse101/LithosProtocol_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// InitValidator initializes the global validator
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("eth_addr", validateAddress)
		_ = v.RegisterValidation("amount", validateAmount)
		_ = v.RegisterValidation("role", validateRole)
		_ = v.RegisterValidation("pool_type", validatePoolType)
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("resource_category", validateResourceCategory)

		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by the lowercased field name
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "eth_addr":
			errs[field] = "Must be a 0x-prefixed 20-byte hex address"
		case "amount":
			errs[field] = "Must be a non-negative integer amount in base units"
		case "role":
			errs[field] = "Unknown role"
		case "pool_type":
			errs[field] = "Must be token or nft"
		case "asset_type":
			errs[field] = "Unknown asset type"
		case "resource_category":
			errs[field] = "Unknown resource category"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateAddress(fl validator.FieldLevel) bool {
	return common.IsHexAddress(fl.Field().String())
}

// validateAmount accepts base-10 non-negative integers of any size
func validateAmount(fl validator.FieldLevel) bool {
	_, ok := parseAmount(fl.Field().String())
	return ok
}

func validateRole(fl validator.FieldLevel) bool {
	return domain.Role(fl.Field().String()).Valid()
}

func validatePoolType(fl validator.FieldLevel) bool {
	return domain.PoolType(fl.Field().String()).Valid()
}

func validateAssetType(fl validator.FieldLevel) bool {
	return domain.AssetType(fl.Field().String()).Valid()
}

func validateResourceCategory(fl validator.FieldLevel) bool {
	return domain.ResourceCategory(fl.Field().String()).Valid()
}

// parseAmount parses a base-unit amount
func parseAmount(s string) (*big.Int, bool) {
	if s == "" || s[0] == '-' || s[0] == '+' {
		return nil, false
	}
	n, ok := new(big.Int).SetString(s, 10)
	return n, ok
}
