package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/scoring"
)

func floatPtr(f float64) *float64 { return &f }

// Producto sin sustainability_score declara base 50.
func TestEthicalScore_BasePorDefecto(t *testing.T) {
	p := &entity.Product{}
	assert.Equal(t, 50.0, scoring.EthicalScore(p, nil))
}

// Cada certificación del producto suma 5 puntos.
func TestEthicalScore_CertificacionesDelProducto(t *testing.T) {
	p := &entity.Product{Certifications: []string{"ISO-14001", "FairTrade", "B-Corp"}}
	assert.Equal(t, 65.0, scoring.EthicalScore(p, nil))
}

// Cada evento con certificaciones suma 2 puntos; los eventos sin
// certificaciones no suman nada, sin importar cuántas traigan los que sí.
func TestEthicalScore_EventosConCertificaciones(t *testing.T) {
	p := &entity.Product{SustainabilityScore: floatPtr(60)}
	events := []*entity.SupplyChainEvent{
		{Certifications: []string{"Organic", "NonGMO"}}, // +2, no +4
		{Certifications: nil},                           // +0
		{Certifications: []string{"Halal"}},             // +2
	}
	assert.Equal(t, 64.0, scoring.EthicalScore(p, events))
}

// El puntaje tiene tope superior en 100.
func TestEthicalScore_TopeSuperior(t *testing.T) {
	p := &entity.Product{
		SustainabilityScore: floatPtr(95),
		Certifications:      []string{"a", "b", "c"},
	}
	assert.Equal(t, 100.0, scoring.EthicalScore(p, nil))
}

// No hay tope inferior: un sustainability_score negativo fluye tal cual.
func TestEthicalScore_SinTopeInferior(t *testing.T) {
	p := &entity.Product{SustainabilityScore: floatPtr(-30)}
	assert.Equal(t, -30.0, scoring.EthicalScore(p, nil))
}

// Determinista: mismas entradas, mismo resultado en cada lectura.
func TestEthicalScore_Determinista(t *testing.T) {
	p := &entity.Product{
		SustainabilityScore: floatPtr(40),
		Certifications:      []string{"ISO-9001"},
	}
	events := []*entity.SupplyChainEvent{{Certifications: []string{"x"}}}

	first := scoring.EthicalScore(p, events)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, scoring.EthicalScore(p, events))
	}
	assert.Equal(t, 47.0, first)
}
