package identifier_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/chaintrace-api/pkg/identifier"
)

var (
	productIDPattern = regexp.MustCompile(`^CT-2024-[0-9A-F]{6}$`)
	eventIDPattern   = regexp.MustCompile(`^EVT-[0-9A-F]{8}$`)
)

func TestNewProductID_Formato(t *testing.T) {
	id := identifier.NewProductID("Electronics", time.Now())
	assert.Regexp(t, productIDPattern, id)
}

func TestNewEventID_Formato(t *testing.T) {
	id := identifier.NewEventID(time.Now())
	assert.Regexp(t, eventIDPattern, id)
}

// La derivación es determinista: mismo (categoría, instante), mismo id.
func TestNewProductID_Determinista(t *testing.T) {
	instant := time.Date(2024, 6, 15, 10, 30, 0, 123456789, time.UTC)
	a := identifier.NewProductID("Food", instant)
	b := identifier.NewProductID("Food", instant)
	assert.Equal(t, a, b)

	// Categoría distinta cambia el digest.
	c := identifier.NewProductID("Textiles", instant)
	assert.NotEqual(t, a, c)
}

func TestNewEventID_Determinista(t *testing.T) {
	instant := time.Date(2024, 6, 15, 10, 30, 0, 123456789, time.UTC)
	assert.Equal(t, identifier.NewEventID(instant), identifier.NewEventID(instant))

	otro := identifier.NewEventID(instant.Add(time.Nanosecond))
	assert.NotEqual(t, identifier.NewEventID(instant), otro)
}

// El prefijo de producto lleva el año fijo 2024, independiente del instante.
func TestNewProductID_AnioFijo(t *testing.T) {
	instant := time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)
	id := identifier.NewProductID("Food", instant)
	assert.Regexp(t, productIDPattern, id)
}
