package entity

// UserPermissions capacidades que habilitan cada operación de escritura.
type UserPermissions struct {
	CanRegisterProducts  bool
	CanUpdateSupplyChain bool
	CanManagePartners    bool
	CanViewAnalytics     bool
	CanVerifyUsers       bool
}

// DefaultPermissions matriz rol → capacidades. Función pura y total sobre los 7 roles;
// se evalúa una sola vez al registrar el usuario y el resultado se persiste con él.
func DefaultPermissions(role UserRole) UserPermissions {
	switch role {
	case RoleManufacturer:
		return UserPermissions{
			CanRegisterProducts:  true,
			CanUpdateSupplyChain: true,
			CanViewAnalytics:     true,
		}
	case RoleLogisticsProvider:
		return UserPermissions{
			CanUpdateSupplyChain: true,
			CanViewAnalytics:     true,
		}
	case RoleRetailer:
		return UserPermissions{
			CanUpdateSupplyChain: true,
			CanViewAnalytics:     true,
		}
	case RoleQualityAssurance:
		return UserPermissions{
			CanUpdateSupplyChain: true,
			CanViewAnalytics:     true,
		}
	case RoleSupplyChainManager:
		return UserPermissions{
			CanRegisterProducts:  true,
			CanUpdateSupplyChain: true,
			CanManagePartners:    true,
			CanViewAnalytics:     true,
		}
	case RoleAdmin:
		return UserPermissions{
			CanRegisterProducts:  true,
			CanUpdateSupplyChain: true,
			CanManagePartners:    true,
			CanViewAnalytics:     true,
			CanVerifyUsers:       true,
		}
	case RoleConsumer:
		return UserPermissions{}
	}
	// Rol fuera del conjunto cerrado: sin capacidades.
	return UserPermissions{}
}
