package entity

import (
	"fmt"
	"time"
)

// AnonymousPrincipal identidad no autenticada. Ningún registro puede originarse de ella.
const AnonymousPrincipal = "anonymous"

// UserRole rol de un usuario dentro de la cadena de suministro (conjunto cerrado).
type UserRole string

// Roles válidos para User.
const (
	RoleManufacturer       UserRole = "Manufacturer"
	RoleLogisticsProvider  UserRole = "LogisticsProvider"
	RoleRetailer           UserRole = "Retailer"
	RoleQualityAssurance   UserRole = "QualityAssurance"
	RoleSupplyChainManager UserRole = "SupplyChainManager"
	RoleAdmin              UserRole = "Admin"
	RoleConsumer           UserRole = "Consumer"
)

// ParseUserRole valida el string de entrada contra el conjunto cerrado de roles.
func ParseUserRole(s string) (UserRole, error) {
	switch UserRole(s) {
	case RoleManufacturer, RoleLogisticsProvider, RoleRetailer, RoleQualityAssurance,
		RoleSupplyChainManager, RoleAdmin, RoleConsumer:
		return UserRole(s), nil
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// User representa un participante registrado. La clave primaria es el principal
// (identidad del caller que el host garantiza por llamada). Permissions es una
// copia tomada en el registro: un cambio posterior de la política de roles NO
// actualiza retroactivamente los usuarios existentes.
type User struct {
	ID          string // principal del caller, único
	Email       string
	FirstName   string
	LastName    string
	Company     string
	Role        UserRole
	CreatedAt   time.Time
	IsVerified  bool // mutable, sólo vía verificación por un Admin
	Permissions UserPermissions
}
