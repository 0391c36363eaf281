package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/chaintrace-api/internal/application/usecase"
	"github.com/tu-usuario/chaintrace-api/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/chaintrace-api/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/chaintrace-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test de integración del router sobre el backend en memoria
// ──────────────────────────────────────────────────────────────────────────────

func buildAPI() *fiber.App {
	store := memory.NewStore()
	var mu sync.Mutex

	userRepo := store.Users()
	productRepo := store.Products()
	eventRepo := store.Events()
	partnerRepo := store.Partners()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		UserUC:      usecase.NewUserUseCase(&mu, userRepo),
		ProductUC:   usecase.NewProductUseCase(&mu, userRepo, productRepo, eventRepo),
		EventUC:     usecase.NewEventUseCase(&mu, userRepo, productRepo, eventRepo),
		PartnerUC:   usecase.NewPartnerUseCase(&mu, userRepo, partnerRepo),
		AnalyticsUC: usecase.NewAnalyticsUseCase(&mu, userRepo, productRepo, eventRepo, partnerRepo),
		ReportUC:    usecase.NewReportUseCase(&mu, productRepo, eventRepo, infrapdf.NewMarotoPDFGenerator()),
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
		JWTExpMin:   testExpMin,
		DevAuth:     true,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// devToken emite un token de desarrollo para el principal dado.
func devToken(t *testing.T, app *fiber.App, principal string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/dev-token", "", fiber.Map{"principal": principal})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	return body["token"]
}

// registerUserHTTP registra un usuario vía API.
func registerUserHTTP(t *testing.T, app *fiber.App, token, role, company string) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/users", token, fiber.Map{
		"email":      "ana@example.com",
		"first_name": "Ana",
		"last_name":  "Prueba",
		"company":    company,
		"role":       role,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

// Las escrituras exigen Bearer Token.
func TestRouter_EscrituraSinToken_Retorna401(t *testing.T) {
	app := buildAPI()
	resp := doJSON(t, app, http.MethodPost, "/api/users", "", fiber.Map{"email": "a@b.c", "role": "Consumer"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Flujo completo: token de dev → registro de usuario → producto → evento →
// lectura pública de la trazabilidad.
func TestRouter_FlujoCompleto(t *testing.T) {
	app := buildAPI()
	token := devToken(t, app, "p-fab")
	registerUserHTTP(t, app, token, "Manufacturer", "Acme")

	// Perfil del caller
	resp := doJSON(t, app, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var profile map[string]any
	decode(t, resp, &profile)
	assert.Equal(t, "p-fab", profile["id"])

	// Registrar producto
	resp = doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"name":                   "Café Premium",
		"category":               "Alimentos",
		"manufacturing_location": "Planta Medellín",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]string
	decode(t, resp, &created)
	productID := created["product_id"]
	assert.Regexp(t, `^CT-2024-[0-9A-F]{6}$`, productID)

	// Añadir evento
	resp = doJSON(t, app, http.MethodPost, "/api/events", token, fiber.Map{
		"product_id": productID,
		"stage":      "Shipping",
		"location":   "Puerto Cartagena",
		"status":     "InProgress",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Lectura pública: sin token
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+productID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var withHistory struct {
		Product struct {
			CurrentStatus   string `json:"current_status"`
			CurrentLocation string `json:"current_location"`
		} `json:"product"`
		SupplyChainEvents []map[string]any `json:"supply_chain_events"`
		EthicalScore      float64          `json:"ethical_score"`
	}
	decode(t, resp, &withHistory)
	assert.Equal(t, "InTransit", withHistory.Product.CurrentStatus)
	assert.Equal(t, "Puerto Cartagena", withHistory.Product.CurrentLocation)
	assert.Len(t, withHistory.SupplyChainEvents, 2)
	assert.Equal(t, 50.0, withHistory.EthicalScore)

	// Estado del servicio (público)
	resp = doJSON(t, app, http.MethodGet, "/api/status", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status map[string]any
	decode(t, resp, &status)
	assert.Equal(t, "1.0.0", status["version"])
}

// Un Consumer autenticado no puede registrar productos: 403, no 401.
func TestRouter_ConsumerRegistraProducto_Retorna403(t *testing.T) {
	app := buildAPI()
	token := devToken(t, app, "p-cons")
	registerUserHTTP(t, app, token, "Consumer", "Acme")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"name":                   "Taza",
		"category":               "Hogar",
		"manufacturing_location": "Planta",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_ProductoInexistente_Retorna404(t *testing.T) {
	app := buildAPI()
	resp := doJSON(t, app, http.MethodGet, "/api/products/CT-2024-FFFFFF", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// El reporte PDF es público y responde application/pdf.
func TestRouter_ReportePDF(t *testing.T) {
	app := buildAPI()
	token := devToken(t, app, "p-fab")
	registerUserHTTP(t, app, token, "Manufacturer", "Acme")

	resp := doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"name":                   "Café Premium",
		"category":               "Alimentos",
		"manufacturing_location": "Planta Medellín",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created map[string]string
	decode(t, resp, &created)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+created["product_id"]+"/report", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}
