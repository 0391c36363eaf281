package dto

import "time"

// RegisterUserRequest entrada para el auto-registro de un usuario.
// El principal NO viaja en el cuerpo: lo aporta el token del caller.
type RegisterUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=200"`
	LastName  string `json:"last_name" validate:"required,max=200"`
	Company   string `json:"company" validate:"required,max=200"`
	Role      string `json:"role" validate:"required,oneof=Manufacturer LogisticsProvider Retailer QualityAssurance SupplyChainManager Admin Consumer"`
}

// PermissionsResponse snapshot de capacidades almacenado con el usuario.
type PermissionsResponse struct {
	CanRegisterProducts  bool `json:"can_register_products"`
	CanUpdateSupplyChain bool `json:"can_update_supply_chain"`
	CanManagePartners    bool `json:"can_manage_partners"`
	CanViewAnalytics     bool `json:"can_view_analytics"`
	CanVerifyUsers       bool `json:"can_verify_users"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID          string              `json:"id"`
	Email       string              `json:"email"`
	FirstName   string              `json:"first_name"`
	LastName    string              `json:"last_name"`
	Company     string              `json:"company"`
	Role        string              `json:"role"`
	CreatedAt   time.Time           `json:"created_at"`
	IsVerified  bool                `json:"is_verified"`
	Permissions PermissionsResponse `json:"permissions"`
}

// UpdateVerificationRequest entrada para marcar/desmarcar la verificación de un usuario.
type UpdateVerificationRequest struct {
	Verified bool `json:"verified"`
}

// DevTokenRequest entrada para emitir un token de desarrollo. Principal vacío genera uno nuevo.
type DevTokenRequest struct {
	Principal string `json:"principal" validate:"omitempty,max=200"`
}

// DevTokenResponse token emitido y el principal que representa.
type DevTokenResponse struct {
	Token     string `json:"token"`
	Principal string `json:"principal"`
}
