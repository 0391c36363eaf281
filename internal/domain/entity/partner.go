package entity

import (
	"fmt"
	"time"
)

// PartnerType tipo de socio comercial (conjunto cerrado).
type PartnerType string

// Tipos válidos de socio.
const (
	PartnerManufacturer      PartnerType = "Manufacturer"
	PartnerSupplier          PartnerType = "Supplier"
	PartnerLogisticsProvider PartnerType = "LogisticsProvider"
	PartnerDistributor       PartnerType = "Distributor"
	PartnerRetailer          PartnerType = "Retailer"
	PartnerCertificationBody PartnerType = "CertificationBody"
)

// ParsePartnerType valida el string de entrada contra el conjunto cerrado de tipos.
func ParsePartnerType(s string) (PartnerType, error) {
	switch PartnerType(s) {
	case PartnerManufacturer, PartnerSupplier, PartnerLogisticsProvider,
		PartnerDistributor, PartnerRetailer, PartnerCertificationBody:
		return PartnerType(s), nil
	}
	return "", fmt.Errorf("tipo de socio desconocido: %q", s)
}

// Partner socio comercial registrado. La clave es el principal del caller que lo
// registró (un socio por identidad). Verified y ReputationScore existen en el modelo
// pero ninguna operación expuesta los actualiza hoy; se conservan tal cual.
type Partner struct {
	ID              string // principal del caller que registró
	CompanyName     string
	PartnerType     PartnerType
	ContactEmail    string
	ContactPerson   string
	Certifications  []string
	Verified        bool
	CreatedAt       time.Time
	ReputationScore uint32
}
