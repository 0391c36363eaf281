package usecase

import (
	"sync"
	"time"

	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
	"github.com/tu-usuario/chaintrace-api/pkg/identifier"
)

// EventUseCase casos de uso del ledger de eventos. Comparte el mutex global
// del servicio (ver UserUseCase).
type EventUseCase struct {
	mu       *sync.Mutex
	users    repository.UserRepository
	products repository.ProductRepository
	events   repository.EventRepository
}

// NewEventUseCase construye el caso de uso.
func NewEventUseCase(mu *sync.Mutex, users repository.UserRepository, products repository.ProductRepository, events repository.EventRepository) *EventUseCase {
	return &EventUseCase{mu: mu, users: users, products: products, events: events}
}

// Add añade un evento al ledger de un producto. Requiere can_update_supply_chain.
// El timestamp lo asigna el servicio (nunca el caller) y actor/actor_id son un
// snapshot del usuario en este instante. El estado y la ubicación del producto
// se derivan SIEMPRE de este evento, aunque su etapa sea "anterior" a la actual:
// el último evento manda. La autorización y la existencia del producto se
// deciden antes de mutar nada.
func (uc *EventUseCase) Add(principal string, in dto.AddEventRequest) (*dto.AddEventResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	user, err := uc.users.GetByID(principal)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if !user.Permissions.CanUpdateSupplyChain {
		return nil, domain.ErrUnauthorized
	}

	stage, err := entity.ParseSupplyChainStage(in.Stage)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	status, err := entity.ParseEventStatus(in.Status)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	now := time.Now()
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	event := &entity.SupplyChainEvent{
		ID:               identifier.NewEventID(now),
		ProductID:        in.ProductID,
		Stage:            stage,
		Location:         in.Location,
		Timestamp:        now,
		Actor:            user.Company,
		ActorID:          principal,
		Status:           status,
		Details:          in.Details,
		Certifications:   in.Certifications,
		EstimatedArrival: in.EstimatedArrival,
		Metadata:         metadata,
	}

	product.CurrentStatus = entity.StageToStatus(stage)
	product.CurrentLocation = in.Location
	product.UpdatedAt = now

	if err := uc.products.Put(product); err != nil {
		return nil, err
	}
	if err := uc.events.Append(event); err != nil {
		return nil, err
	}
	return &dto.AddEventResponse{EventID: event.ID}, nil
}

// List devuelve el ledger completo de un producto en orden de append.
// Lectura pública; falla si el producto no existe.
func (uc *EventUseCase) List(productID string) (*dto.EventListResponse, error) {
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
	items := toEventResponses(events)
	return &dto.EventListResponse{Items: items, Total: len(items)}, nil
}
