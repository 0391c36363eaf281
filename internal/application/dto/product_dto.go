package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterProductRequest entrada para registrar un producto.
// Manufacturer y manufacturer_id no viajan: se toman del usuario que llama.
type RegisterProductRequest struct {
	Name                  string           `json:"name" validate:"required,max=300"`
	Category              string           `json:"category" validate:"required,max=100"`
	Description           *string          `json:"description"`
	BatchNumber           *string          `json:"batch_number"`
	ProductionDate        time.Time        `json:"production_date"`
	ManufacturingLocation string           `json:"manufacturing_location" validate:"required,max=300"`
	RawMaterials          []string         `json:"raw_materials"`
	Certifications        []string         `json:"certifications"`
	SustainabilityScore   *float64         `json:"sustainability_score"`
	EstimatedValue        *decimal.Decimal `json:"estimated_value"`
}

// RegisterProductResponse id asignado al producto nuevo.
type RegisterProductResponse struct {
	ProductID string `json:"product_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	Category            string           `json:"category"`
	Description         *string          `json:"description,omitempty"`
	Manufacturer        string           `json:"manufacturer"`
	ManufacturerID      string           `json:"manufacturer_id"`
	BatchNumber         *string          `json:"batch_number,omitempty"`
	ProductionDate      time.Time        `json:"production_date"`
	RawMaterials        []string         `json:"raw_materials"`
	Certifications      []string         `json:"certifications"`
	SustainabilityScore *float64         `json:"sustainability_score,omitempty"`
	EstimatedValue      *decimal.Decimal `json:"estimated_value,omitempty"`
	CurrentStatus       string           `json:"current_status"`
	CurrentLocation     string           `json:"current_location"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
}

// ProductWithHistoryResponse producto + ledger completo + puntaje ético recalculado.
type ProductWithHistoryResponse struct {
	Product           ProductResponse `json:"product"`
	SupplyChainEvents []EventResponse `json:"supply_chain_events"`
	EthicalScore      float64         `json:"ethical_score"`
}

// SearchProductsQuery filtros de búsqueda (todos opcionales, combinación AND).
type SearchProductsQuery struct {
	Name         string `query:"name"`
	Category     string `query:"category"`
	Manufacturer string `query:"manufacturer"`
	Status       string `query:"status"`
	Limit        int    `query:"limit"`
}

// ProductListResponse resultado de búsqueda.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
