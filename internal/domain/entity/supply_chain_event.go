package entity

import (
	"fmt"
	"time"
)

// SupplyChainStage etapa del recorrido físico de un producto (conjunto cerrado,
// ordenado conceptualmente pero sin orden forzado entre eventos).
type SupplyChainStage string

// Etapas válidas.
const (
	StageRawMaterialSourcing SupplyChainStage = "RawMaterialSourcing"
	StageManufacturing       SupplyChainStage = "Manufacturing"
	StageQualityControl      SupplyChainStage = "QualityControl"
	StagePackaging           SupplyChainStage = "Packaging"
	StageShipping            SupplyChainStage = "Shipping"
	StageDistribution        SupplyChainStage = "Distribution"
	StageRetail              SupplyChainStage = "Retail"
)

// ParseSupplyChainStage valida el string de entrada contra el conjunto cerrado de etapas.
func ParseSupplyChainStage(s string) (SupplyChainStage, error) {
	switch SupplyChainStage(s) {
	case StageRawMaterialSourcing, StageManufacturing, StageQualityControl,
		StagePackaging, StageShipping, StageDistribution, StageRetail:
		return SupplyChainStage(s), nil
	}
	return "", fmt.Errorf("etapa desconocida: %q", s)
}

// EventStatus resultado puntual de un evento (conjunto cerrado).
type EventStatus string

// Estados válidos para un evento.
const (
	EventPending    EventStatus = "Pending"
	EventInProgress EventStatus = "InProgress"
	EventCompleted  EventStatus = "Completed"
	EventFailed     EventStatus = "Failed"
)

// ParseEventStatus valida el string de entrada contra el conjunto cerrado.
func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(s) {
	case EventPending, EventInProgress, EventCompleted, EventFailed:
		return EventStatus(s), nil
	}
	return "", fmt.Errorf("estado de evento desconocido: %q", s)
}

// SupplyChainEvent registro inmutable del ledger de un producto. El ledger es una
// secuencia ordenada sólo-append: nunca se reordena ni se trunca, su longitud sólo crece.
type SupplyChainEvent struct {
	ID               string // EVT-XXXXXXXX, generado
	ProductID        string
	Stage            SupplyChainStage
	Location         string
	Timestamp        time.Time
	Actor            string // company del caller, snapshot al momento del append
	ActorID          string // principal del caller
	Status           EventStatus
	Details          string
	Certifications   []string
	EstimatedArrival *time.Time
	Metadata         map[string]string
}

// StageToStatus mapa determinista etapa → estado de producto, total sobre las 7 etapas.
// Nota: ninguna etapa produce Recalled; el estado queda inalcanzable por diseño original.
func StageToStatus(stage SupplyChainStage) ProductStatus {
	switch stage {
	case StageRawMaterialSourcing, StageManufacturing, StageQualityControl, StagePackaging:
		return StatusManufacturing
	case StageShipping, StageDistribution:
		return StatusInTransit
	case StageRetail:
		return StatusDelivered
	}
	// Inalcanzable con el conjunto cerrado; conserva el último estado de fabricación.
	return StatusManufacturing
}
