package usecase

import (
	"sync"
	"time"

	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
	"github.com/tu-usuario/chaintrace-api/internal/domain/scoring"
)

const serviceVersion = "1.0.0"

// AnalyticsUseCase agregados de sólo lectura sobre el almacén completo.
// Comparte el mutex global del servicio (ver UserUseCase).
type AnalyticsUseCase struct {
	mu       *sync.Mutex
	users    repository.UserRepository
	products repository.ProductRepository
	events   repository.EventRepository
	partners repository.PartnerRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(mu *sync.Mutex, users repository.UserRepository, products repository.ProductRepository, events repository.EventRepository, partners repository.PartnerRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{mu: mu, users: users, products: products, events: events, partners: partners}
}

// GetAnalytics recalcula todos los agregados en esta llamada; nada se cachea.
// Con cero productos el promedio de puntaje ético es 0.0, no NaN.
func (uc *AnalyticsUseCase) GetAnalytics() (*dto.AnalyticsResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	var active, completed int64
	var totalScore float64
	for _, p := range products {
		switch p.CurrentStatus {
		case entity.StatusInTransit:
			active++
		case entity.StatusDelivered:
			completed++
		}
		events, err := uc.events.ListByProduct(p.ID)
		if err != nil {
			return nil, err
		}
		totalScore += scoring.EthicalScore(p, events)
	}

	average := 0.0
	if len(products) > 0 {
		average = totalScore / float64(len(products))
	}

	totalPartners, err := uc.partners.Count()
	if err != nil {
		return nil, err
	}
	totalUsers, err := uc.users.Count()
	if err != nil {
		return nil, err
	}

	return &dto.AnalyticsResponse{
		TotalProducts:       int64(len(products)),
		ActiveShipments:     active,
		CompletedDeliveries: completed,
		AverageEthicalScore: average,
		TotalPartners:       totalPartners,
		TotalUsers:          totalUsers,
	}, nil
}

// GetStatus devuelve la foto operativa del servicio. Uptime conserva la
// semántica heredada: timestamp actual en segundos unix, no un uptime real.
func (uc *AnalyticsUseCase) GetStatus() (*dto.ServiceStatusResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	totalProducts, err := uc.products.Count()
	if err != nil {
		return nil, err
	}
	totalUsers, err := uc.users.Count()
	if err != nil {
		return nil, err
	}
	totalEvents, err := uc.events.CountAll()
	if err != nil {
		return nil, err
	}

	return &dto.ServiceStatusResponse{
		Version:       serviceVersion,
		TotalProducts: totalProducts,
		TotalUsers:    totalUsers,
		TotalEvents:   totalEvents,
		Uptime:        time.Now().Unix(),
	}, nil
}
