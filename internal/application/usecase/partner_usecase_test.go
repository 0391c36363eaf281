package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain"
)

func samplePartner(name, partnerType string) dto.RegisterPartnerRequest {
	return dto.RegisterPartnerRequest{
		CompanyName:   name,
		PartnerType:   partnerType,
		ContactEmail:  "contacto@example.com",
		ContactPerson: "Carlos Gómez",
	}
}

// Registrar socio requiere can_manage_partners: SupplyChainManager y Admin sí,
// Manufacturer no.
func TestPartnerRegister_RequiereCapacidad(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-scm", "SupplyChainManager", "Logis")
	registerUser(t, env, "p-fab", "Manufacturer", "Acme")

	_, err := env.partners.Register("p-fab", samplePartner("Globex", "Supplier"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := env.partners.Register("p-scm", samplePartner("Globex", "Supplier"))
	require.NoError(t, err)
	assert.Equal(t, "p-scm", out.ID, "el socio queda bajo la identidad del caller")
	assert.False(t, out.Verified, "el socio nace sin verificar")
	assert.Zero(t, out.ReputationScore)
}

// Un socio por identidad: re-registrar bajo el mismo principal sobrescribe.
func TestPartnerRegister_UpsertPorPrincipal(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-scm", "SupplyChainManager", "Logis")

	_, err := env.partners.Register("p-scm", samplePartner("Globex", "Supplier"))
	require.NoError(t, err)
	_, err = env.partners.Register("p-scm", samplePartner("Initech", "Distributor"))
	require.NoError(t, err)

	list, err := env.partners.List()
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Initech", list.Items[0].CompanyName)
	assert.Equal(t, "Distributor", list.Items[0].PartnerType)
}

func TestPartnerRegister_TipoInvalido(t *testing.T) {
	env := newTestEnv()
	registerUser(t, env, "p-scm", "SupplyChainManager", "Logis")

	_, err := env.partners.Register("p-scm", samplePartner("Globex", "Mayorista"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPartnerRegister_PrincipalSinUsuario(t *testing.T) {
	env := newTestEnv()
	_, err := env.partners.Register("p-fantasma", samplePartner("Globex", "Supplier"))
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPartnerList_Vacio(t *testing.T) {
	env := newTestEnv()
	out, err := env.partners.List()
	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.NotNil(t, out.Items)
}
