package domain

// Role is a named capability checked before a privileged action
type Role string

// Capability names
const (
	RoleAdmin           Role = "admin"
	RoleGameMaster      Role = "game_master"
	RoleOracle          Role = "oracle"
	RoleMinter          Role = "minter"
	RoleBurner          Role = "burner"
	RoleStakingOperator Role = "staking_operator"
	RolePauser          Role = "pauser"
	RolePoolManager     Role = "pool_manager"
)

// AllRoles lists every capability, used when bootstrapping the admin account
var AllRoles = []Role{
	RoleAdmin,
	RoleGameMaster,
	RoleOracle,
	RoleMinter,
	RoleBurner,
	RoleStakingOperator,
	RolePauser,
	RolePoolManager,
}

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}
