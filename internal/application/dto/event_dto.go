package dto

import "time"

// AddEventRequest entrada para añadir un evento al ledger de un producto.
// Actor y actor_id no viajan: se toman como snapshot del usuario que llama.
type AddEventRequest struct {
	ProductID        string            `json:"product_id" validate:"required"`
	Stage            string            `json:"stage" validate:"required,oneof=RawMaterialSourcing Manufacturing QualityControl Packaging Shipping Distribution Retail"`
	Location         string            `json:"location" validate:"required,max=300"`
	Status           string            `json:"status" validate:"required,oneof=Pending InProgress Completed Failed"`
	Details          string            `json:"details"`
	Certifications   []string          `json:"certifications"`
	EstimatedArrival *time.Time        `json:"estimated_arrival"`
	Metadata         map[string]string `json:"metadata"`
}

// AddEventResponse id asignado al evento nuevo.
type AddEventResponse struct {
	EventID string `json:"event_id"`
}

// EventResponse salida de un evento del ledger.
type EventResponse struct {
	ID               string            `json:"id"`
	ProductID        string            `json:"product_id"`
	Stage            string            `json:"stage"`
	Location         string            `json:"location"`
	Timestamp        time.Time         `json:"timestamp"`
	Actor            string            `json:"actor"`
	ActorID          string            `json:"actor_id"`
	Status           string            `json:"status"`
	Details          string            `json:"details"`
	Certifications   []string          `json:"certifications"`
	EstimatedArrival *time.Time        `json:"estimated_arrival,omitempty"`
	Metadata         map[string]string `json:"metadata"`
}

// EventListResponse ledger completo de un producto en orden de append.
type EventListResponse struct {
	Items []EventResponse `json:"items"`
	Total int             `json:"total"`
}
