package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain"
)

func sampleEvent(productID, stage, status string) dto.AddEventRequest {
	return dto.AddEventRequest{
		ProductID: productID,
		Stage:     stage,
		Location:  "Centro logístico Bogotá",
		Status:    status,
		Details:   "movimiento registrado",
	}
}

// Añadir un evento deriva el estado del producto desde la etapa y sobrescribe
// la ubicación; el ledger crece en exactamente uno.
func TestEventAdd_DerivaEstadoDelProducto(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-fab", "Manufacturer", "Acme")
	registerUser(t, env, "p-log", "LogisticsProvider", "TransCarga")
	id := registerProduct(t, env, "p-fab", sampleProduct("Taza", "Hogar"))

	out, err := env.events.Add("p-log", sampleEvent(id, "Shipping", "InProgress"))
	require.NoError(t, err)
	assert.Regexp(t, `^EVT-[0-9A-F]{8}$`, out.EventID)

	product, err := env.products.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "InTransit", product.Product.CurrentStatus)
	assert.Equal(t, "Centro logístico Bogotá", product.Product.CurrentLocation)
	require.Len(t, product.SupplyChainEvents, 2, "siembra + evento añadido")

	last := product.SupplyChainEvents[1]
	assert.Equal(t, "TransCarga", last.Actor, "actor es snapshot del caller")
	assert.Equal(t, "p-log", last.ActorID)
}

// El último evento manda aunque su etapa sea "anterior": Retail deja el producto
// Delivered y un Packaging posterior lo regresa a Manufacturing.
func TestEventAdd_UltimoEventoManda(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-fab", "Manufacturer", "Acme")
	id := registerProduct(t, env, "p-fab", sampleProduct("Taza", "Hogar"))

	_, err := env.events.Add("p-fab", sampleEvent(id, "Retail", "Completed"))
	require.NoError(t, err)
	product, err := env.products.Get(id)
	require.NoError(t, err)
	require.Equal(t, "Delivered", product.Product.CurrentStatus)

	_, err = env.events.Add("p-fab", sampleEvent(id, "Packaging", "InProgress"))
	require.NoError(t, err)
	product, err = env.products.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Manufacturing", product.Product.CurrentStatus,
		"no hay monotonicidad: el último evento define el estado")
	require.Len(t, product.SupplyChainEvents, 3)
}

// Consumer carece de can_update_supply_chain.
func TestEventAdd_ConsumerRechazado(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-fab", "Manufacturer", "Acme")
	registerUser(t, env, "p-cons", "Consumer", "Acme")
	id := registerProduct(t, env, "p-fab", sampleProduct("Taza", "Hogar"))

	_, err := env.events.Add("p-cons", sampleEvent(id, "Shipping", "InProgress"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	product, err := env.products.Get(id)
	require.NoError(t, err)
	assert.Len(t, product.SupplyChainEvents, 1, "el rechazo no debe tocar el ledger")
}

// Etapa o estado fuera del conjunto cerrado se rechazan antes de mutar nada.
func TestEventAdd_EntradaInvalida(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-fab", "Manufacturer", "Acme")
	id := registerProduct(t, env, "p-fab", sampleProduct("Taza", "Hogar"))

	_, err := env.events.Add("p-fab", sampleEvent(id, "Almacenaje", "Completed"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.events.Add("p-fab", sampleEvent(id, "Shipping", "Cancelled"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEventAdd_ProductoInexistente(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-fab", "Manufacturer", "Acme")

	_, err := env.events.Add("p-fab", sampleEvent("CT-2024-FFFFFF", "Shipping", "InProgress"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// El listado devuelve el ledger completo en orden de append.
func TestEventList_OrdenDeAppend(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-fab", "Manufacturer", "Acme")
	id := registerProduct(t, env, "p-fab", sampleProduct("Taza", "Hogar"))

	stages := []string{"Manufacturing", "QualityControl", "Packaging", "Shipping"}
	for _, s := range stages {
		_, err := env.events.Add("p-fab", sampleEvent(id, s, "Completed"))
		require.NoError(t, err)
	}

	out, err := env.events.List(id)
	require.NoError(t, err)
	require.Equal(t, 5, out.Total)
	assert.Equal(t, "RawMaterialSourcing", out.Items[0].Stage, "la siembra siempre va primera")
	for i, s := range stages {
		assert.Equal(t, s, out.Items[i+1].Stage)
	}
}

func TestEventList_ProductoInexistente(t *testing.T) {
	env := newTestEnv()
	_, err := env.events.List("CT-2024-FFFFFF")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
