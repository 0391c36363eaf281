package usecase

import (
	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
)

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Company:    u.Company,
		Role:       string(u.Role),
		CreatedAt:  u.CreatedAt,
		IsVerified: u.IsVerified,
		Permissions: dto.PermissionsResponse{
			CanRegisterProducts:  u.Permissions.CanRegisterProducts,
			CanUpdateSupplyChain: u.Permissions.CanUpdateSupplyChain,
			CanManagePartners:    u.Permissions.CanManagePartners,
			CanViewAnalytics:     u.Permissions.CanViewAnalytics,
			CanVerifyUsers:       u.Permissions.CanVerifyUsers,
		},
	}
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Category:            p.Category,
		Description:         p.Description,
		Manufacturer:        p.Manufacturer,
		ManufacturerID:      p.ManufacturerID,
		BatchNumber:         p.BatchNumber,
		ProductionDate:      p.ProductionDate,
		RawMaterials:        p.RawMaterials,
		Certifications:      p.Certifications,
		SustainabilityScore: p.SustainabilityScore,
		EstimatedValue:      p.EstimatedValue,
		CurrentStatus:       string(p.CurrentStatus),
		CurrentLocation:     p.CurrentLocation,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func toEventResponse(ev *entity.SupplyChainEvent) dto.EventResponse {
	return dto.EventResponse{
		ID:               ev.ID,
		ProductID:        ev.ProductID,
		Stage:            string(ev.Stage),
		Location:         ev.Location,
		Timestamp:        ev.Timestamp,
		Actor:            ev.Actor,
		ActorID:          ev.ActorID,
		Status:           string(ev.Status),
		Details:          ev.Details,
		Certifications:   ev.Certifications,
		EstimatedArrival: ev.EstimatedArrival,
		Metadata:         ev.Metadata,
	}
}

func toEventResponses(events []*entity.SupplyChainEvent) []dto.EventResponse {
	out := make([]dto.EventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out
}

func toPartnerResponse(p *entity.Partner) dto.PartnerResponse {
	return dto.PartnerResponse{
		ID:              p.ID,
		CompanyName:     p.CompanyName,
		PartnerType:     string(p.PartnerType),
		ContactEmail:    p.ContactEmail,
		ContactPerson:   p.ContactPerson,
		Certifications:  p.Certifications,
		Verified:        p.Verified,
		CreatedAt:       p.CreatedAt,
		ReputationScore: p.ReputationScore,
	}
}
