// Package scoring implementa el cálculo del puntaje ético (servicio de dominio puro).
package scoring

import "github.com/tu-usuario/chaintrace-api/internal/domain/entity"

// Puntos del modelo de scoring.
const (
	baseScore          = 50.0 // base cuando el producto no declara sustainability_score
	pointsPerCert      = 5.0  // por certificación del producto
	pointsPerCertEvent = 2.0  // por evento del ledger con certificaciones
	maxScore           = 100.0
)

// EthicalScore calcula el puntaje ético de un producto dado su ledger.
// score = sustainability_score (o 50 por defecto) + 5·|certificaciones del producto|
// + 2·|eventos con certificaciones|, con tope superior en 100.
// Determinista: se recalcula en cada lectura, nunca se cachea ni persiste.
// No hay tope inferior: un sustainability_score negativo pasa sin validar (comportamiento
// heredado del diseño original).
func EthicalScore(p *entity.Product, events []*entity.SupplyChainEvent) float64 {
	score := baseScore
	if p.SustainabilityScore != nil {
		score = *p.SustainabilityScore
	}

	score += float64(len(p.Certifications)) * pointsPerCert

	for _, ev := range events {
		if len(ev.Certifications) > 0 {
			score += pointsPerCertEvent
		}
	}

	if score > maxScore {
		return maxScore
	}
	return score
}
