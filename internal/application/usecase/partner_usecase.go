package usecase

import (
	"sync"
	"time"

	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
)

// PartnerUseCase casos de uso de socios comerciales. Comparte el mutex global
// del servicio (ver UserUseCase).
type PartnerUseCase struct {
	mu       *sync.Mutex
	users    repository.UserRepository
	partners repository.PartnerRepository
}

// NewPartnerUseCase construye el caso de uso.
func NewPartnerUseCase(mu *sync.Mutex, users repository.UserRepository, partners repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{mu: mu, users: users, partners: partners}
}

// Register registra un socio bajo la identidad del caller. Requiere
// can_manage_partners. Es upsert por principal: re-registrar sobrescribe al
// socio previo. El socio nace sin verificar y con reputación 0.
func (uc *PartnerUseCase) Register(principal string, in dto.RegisterPartnerRequest) (*dto.PartnerResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	user, err := uc.users.GetByID(principal)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Permissions.CanManagePartners {
		return nil, domain.ErrUnauthorized
	}

	partnerType, err := entity.ParsePartnerType(in.PartnerType)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	partner := &entity.Partner{
		ID:              principal,
		CompanyName:     in.CompanyName,
		PartnerType:     partnerType,
		ContactEmail:    in.ContactEmail,
		ContactPerson:   in.ContactPerson,
		Certifications:  in.Certifications,
		Verified:        false,
		CreatedAt:       time.Now(),
		ReputationScore: 0,
	}
	if err := uc.partners.Put(partner); err != nil {
		return nil, err
	}
	resp := toPartnerResponse(partner)
	return &resp, nil
}

// List devuelve todos los socios registrados. Lectura pública.
func (uc *PartnerUseCase) List() (*dto.PartnerListResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	partners, err := uc.partners.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartnerResponse, 0, len(partners))
	for _, p := range partners {
		items = append(items, toPartnerResponse(p))
	}
	return &dto.PartnerListResponse{Items: items, Total: len(items)}, nil
}
