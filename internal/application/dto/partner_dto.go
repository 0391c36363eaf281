package dto

import "time"

// RegisterPartnerRequest entrada para registrar un socio comercial.
// El id del socio es el principal del caller (un socio por identidad).
type RegisterPartnerRequest struct {
	CompanyName    string   `json:"company_name" validate:"required,max=300"`
	PartnerType    string   `json:"partner_type" validate:"required,oneof=Manufacturer Supplier LogisticsProvider Distributor Retailer CertificationBody"`
	ContactEmail   string   `json:"contact_email" validate:"required,email"`
	ContactPerson  string   `json:"contact_person" validate:"required,max=200"`
	Certifications []string `json:"certifications"`
}

// PartnerResponse salida de un socio.
type PartnerResponse struct {
	ID              string    `json:"id"`
	CompanyName     string    `json:"company_name"`
	PartnerType     string    `json:"partner_type"`
	ContactEmail    string    `json:"contact_email"`
	ContactPerson   string    `json:"contact_person"`
	Certifications  []string  `json:"certifications"`
	Verified        bool      `json:"verified"`
	CreatedAt       time.Time `json:"created_at"`
	ReputationScore uint32    `json:"reputation_score"`
}

// PartnerListResponse listado de socios.
type PartnerListResponse struct {
	Items []PartnerResponse `json:"items"`
	Total int               `json:"total"`
}
