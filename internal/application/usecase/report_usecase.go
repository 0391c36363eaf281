package usecase

import (
	"context"
	"sync"

	"github.com/tu-usuario/chaintrace-api/internal/domain"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
	"github.com/tu-usuario/chaintrace-api/internal/domain/scoring"
)

// ProvenancePDFGenerator puerto de generación del reporte de procedencia en PDF.
type ProvenancePDFGenerator interface {
	GenerateProvenancePDF(ctx context.Context, product *entity.Product, events []*entity.SupplyChainEvent, ethicalScore float64) ([]byte, error)
}

// ReportUseCase genera el reporte de procedencia de un producto.
// Comparte el mutex global del servicio (ver UserUseCase).
type ReportUseCase struct {
	mu       *sync.Mutex
	products repository.ProductRepository
	events   repository.EventRepository
	pdf      ProvenancePDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(mu *sync.Mutex, products repository.ProductRepository, events repository.EventRepository, pdf ProvenancePDFGenerator) *ReportUseCase {
	return &ReportUseCase{mu: mu, products: products, events: events, pdf: pdf}
}

// ProductReport genera el PDF de procedencia: producto, ledger completo y
// puntaje ético recalculado en esta lectura. Lectura pública.
func (uc *ReportUseCase) ProductReport(ctx context.Context, productID string) ([]byte, error) {
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
	return uc.pdf.GenerateProvenancePDF(ctx, product, events, scoring.EthicalScore(product, events))
}
