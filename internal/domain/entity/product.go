package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ProductStatus estado logístico agregado de un producto (conjunto cerrado).
type ProductStatus string

// Estados válidos para Product. Recalled existe en el modelo pero ninguna etapa lo
// produce hoy (ver StageToStatus); se conserva tal cual.
const (
	StatusManufacturing ProductStatus = "Manufacturing"
	StatusInTransit     ProductStatus = "InTransit"
	StatusDelivered     ProductStatus = "Delivered"
	StatusRecalled      ProductStatus = "Recalled"
)

// ParseProductStatus valida el string de entrada contra el conjunto cerrado de estados.
func ParseProductStatus(s string) (ProductStatus, error) {
	switch ProductStatus(s) {
	case StatusManufacturing, StatusInTransit, StatusDelivered, StatusRecalled:
		return ProductStatus(s), nil
	}
	return "", fmt.Errorf("estado de producto desconocido: %q", s)
}

// Product representa un bien físico trazado. Los campos descriptivos son inmutables
// después del registro; CurrentStatus y CurrentLocation son caches derivados del
// ledger de eventos: siempre reflejan el ÚLTIMO evento añadido, nunca uno anterior.
type Product struct {
	ID                  string // CT-<año>-XXXXXX, generado
	Name                string
	Category            string
	Description         *string
	Manufacturer        string // company del usuario que registró
	ManufacturerID      string // principal del usuario que registró
	BatchNumber         *string
	ProductionDate      time.Time
	RawMaterials        []string
	Certifications      []string // certificaciones al momento del registro
	SustainabilityScore *float64
	EstimatedValue      *decimal.Decimal
	CurrentStatus       ProductStatus
	CurrentLocation     string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
