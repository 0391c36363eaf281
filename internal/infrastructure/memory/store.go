// Package memory implementa los puertos de persistencia sobre mapas en proceso.
//
// Pensado para desarrollo y tests: los cuatro mapeos (usuarios, productos, ledgers,
// socios) viven en un único Store y NO sobreviven reinicios. En producción se usa el
// backend postgres, que sí cumple el requisito de durabilidad.
package memory

import (
	"sync"

	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
)

// Store agrupa los cuatro mapeos del dominio tras un solo RWMutex.
// El candado protege la integridad de los mapas; la serialización total de las
// operaciones de negocio (chequeo → mutación → derivación) la impone el candado
// global del nivel de aplicación, no este.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*entity.User
	products map[string]*entity.Product
	events   map[string][]*entity.SupplyChainEvent // ledger por producto, orden de append
	partners map[string]*entity.Partner
}

// NewStore construye un Store vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]*entity.User),
		products: make(map[string]*entity.Product),
		events:   make(map[string][]*entity.SupplyChainEvent),
		partners: make(map[string]*entity.Partner),
	}
}

// Users devuelve el adaptador del puerto UserRepository.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Products devuelve el adaptador del puerto ProductRepository.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// Events devuelve el adaptador del puerto EventRepository.
func (s *Store) Events() *EventRepo { return &EventRepo{s: s} }

// Partners devuelve el adaptador del puerto PartnerRepository.
func (s *Store) Partners() *PartnerRepo { return &PartnerRepo{s: s} }
