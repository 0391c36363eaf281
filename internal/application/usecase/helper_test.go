package usecase_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/application/usecase"
	"github.com/tu-usuario/chaintrace-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: entorno completo sobre el backend en memoria
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	users     *usecase.UserUseCase
	products  *usecase.ProductUseCase
	events    *usecase.EventUseCase
	partners  *usecase.PartnerUseCase
	analytics *usecase.AnalyticsUseCase
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	var mu sync.Mutex

	userRepo := store.Users()
	productRepo := store.Products()
	eventRepo := store.Events()
	partnerRepo := store.Partners()

	return &testEnv{
		users:     usecase.NewUserUseCase(&mu, userRepo),
		products:  usecase.NewProductUseCase(&mu, userRepo, productRepo, eventRepo),
		events:    usecase.NewEventUseCase(&mu, userRepo, productRepo, eventRepo),
		partners:  usecase.NewPartnerUseCase(&mu, userRepo, partnerRepo),
		analytics: usecase.NewAnalyticsUseCase(&mu, userRepo, productRepo, eventRepo, partnerRepo),
	}
}

// registerUser registra un usuario de prueba con el rol indicado.
func registerUser(t *testing.T, env *testEnv, principal, role, company string) *dto.UserResponse {
	t.Helper()
	out, err := env.users.Register(principal, dto.RegisterUserRequest{
		Email:     principal + "@example.com",
		FirstName: "Ana",
		LastName:  "Prueba",
		Company:   company,
		Role:      role,
	})
	require.NoError(t, err, "el registro del usuario %s debe funcionar", principal)
	return out
}

// sampleProduct arma una petición de registro de producto mínima válida.
func sampleProduct(name, category string) dto.RegisterProductRequest {
	return dto.RegisterProductRequest{
		Name:                  name,
		Category:              category,
		ProductionDate:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ManufacturingLocation: "Planta Medellín",
		RawMaterials:          []string{"acero"},
	}
}

// registerProduct registra un producto y devuelve su id.
func registerProduct(t *testing.T, env *testEnv, principal string, in dto.RegisterProductRequest) string {
	t.Helper()
	out, err := env.products.Register(principal, in)
	require.NoError(t, err)
	return out.ProductID
}
