package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
	"github.com/tu-usuario/chaintrace-api/internal/domain/scoring"
	"github.com/tu-usuario/chaintrace-api/pkg/identifier"
)

const defaultSearchLimit = 50

// ProductUseCase casos de uso de productos trazados. Comparte el mutex global
// del servicio (ver UserUseCase).
type ProductUseCase struct {
	mu       *sync.Mutex
	users    repository.UserRepository
	products repository.ProductRepository
	events   repository.EventRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(mu *sync.Mutex, users repository.UserRepository, products repository.ProductRepository, events repository.EventRepository) *ProductUseCase {
	return &ProductUseCase{mu: mu, users: users, products: products, events: events}
}

// Register registra un producto a nombre del caller. Requiere la capacidad
// can_register_products del snapshot del usuario. Siembra el ledger con un
// evento RawMaterialSourcing/Completed; el producto nace en Manufacturing con
// la ubicación de fabricación como ubicación actual. La autorización se decide
// antes de mutar nada: un rechazo no deja rastro.
func (uc *ProductUseCase) Register(principal string, in dto.RegisterProductRequest) (*dto.RegisterProductResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	user, err := uc.users.GetByID(principal)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Permissions.CanRegisterProducts {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	productID := identifier.NewProductID(in.Category, now)

	product := &entity.Product{
		ID:                  productID,
		Name:                in.Name,
		Category:            in.Category,
		Description:         in.Description,
		Manufacturer:        user.Company,
		ManufacturerID:      principal,
		BatchNumber:         in.BatchNumber,
		ProductionDate:      in.ProductionDate,
		RawMaterials:        in.RawMaterials,
		Certifications:      in.Certifications,
		SustainabilityScore: in.SustainabilityScore,
		EstimatedValue:      in.EstimatedValue,
		CurrentStatus:       entity.StatusManufacturing,
		CurrentLocation:     in.ManufacturingLocation,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	initial := &entity.SupplyChainEvent{
		ID:             identifier.NewEventID(now),
		ProductID:      productID,
		Stage:          entity.StageRawMaterialSourcing,
		Location:       in.ManufacturingLocation,
		Timestamp:      now,
		Actor:          user.Company,
		ActorID:        principal,
		Status:         entity.EventCompleted,
		Details:        "Product registered and initial sourcing completed",
		Certifications: in.Certifications,
		Metadata:       map[string]string{},
	}

	if err := uc.products.Put(product); err != nil {
		return nil, err
	}
	if err := uc.events.Append(initial); err != nil {
		return nil, err
	}
	return &dto.RegisterProductResponse{ProductID: productID}, nil
}

// Get devuelve un producto con su ledger completo y el puntaje ético
// recalculado en esta lectura. Lectura pública, sin autorización.
func (uc *ProductUseCase) Get(productID string) (*dto.ProductWithHistoryResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	events, err := uc.events.ListByProduct(productID)
	if err != nil {
		return nil, err
	}

	return &dto.ProductWithHistoryResponse{
		Product:           toProductResponse(product),
		SupplyChainEvents: toEventResponses(events),
		EthicalScore:      scoring.EthicalScore(product, events),
	}, nil
}

// Search filtra productos. Todos los filtros son opcionales y se combinan con
// AND: name y manufacturer por substring sin distinguir mayúsculas, category y
// status por igualdad exacta. El corte por limit (50 por defecto) se aplica
// después de filtrar. Un status fuera del conjunto cerrado no es error: no
// coincide con nada y devuelve vacío.
func (uc *ProductUseCase) Search(q dto.SearchProductsQuery) (*dto.ProductListResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	all, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	name := strings.ToLower(q.Name)
	manufacturer := strings.ToLower(q.Manufacturer)

	items := make([]dto.ProductResponse, 0)
	for _, p := range all {
		if len(items) >= limit {
			break
		}
		if name != "" && !strings.Contains(strings.ToLower(p.Name), name) {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if manufacturer != "" && !strings.Contains(strings.ToLower(p.Manufacturer), manufacturer) {
			continue
		}
		if q.Status != "" && string(p.CurrentStatus) != q.Status {
			continue
		}
		items = append(items, toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}
