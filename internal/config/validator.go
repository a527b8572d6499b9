package config

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

func validateAddress(name, value string) error {
	if value == "" {
		return fmt.Errorf(ErrMsgAddressRequired, name)
	}
	if !common.IsHexAddress(value) {
		return fmt.Errorf(ErrMsgInvalidAddress, name, value)
	}
	if common.HexToAddress(value) == (common.Address{}) {
		return fmt.Errorf(ErrMsgZeroAddress, name)
	}
	return nil
}

// Address returns a validated hex address field as an account
func Address(value string) common.Address {
	return common.HexToAddress(value)
}

// Warnings reports values copied from the example env file
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if c.JWTSecret == ExampleJWTSecret {
		warnings = append(warnings, "JWT_SECRET appears to be using the example value - generate one with: openssl rand -hex 32")
	}
	if c.StorageBackend == BackendMemory && c.Environment == "prod" {
		warnings = append(warnings, "STORAGE_BACKEND=memory in prod loses all state on restart")
	}

	return warnings
}
