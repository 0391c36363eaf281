package memory

import (
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación en memoria del puerto PartnerRepository.
type PartnerRepo struct {
	s *Store
}

// Put inserta o sobrescribe el socio (upsert por principal).
func (r *PartnerRepo) Put(partner *entity.Partner) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *partner
	r.s.partners[partner.ID] = &cp
	return nil
}

// List devuelve todos los socios (orden de iteración del mapa, no determinista).
func (r *PartnerRepo) List() ([]*entity.Partner, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Partner, 0, len(r.s.partners))
	for _, p := range r.s.partners {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Count devuelve el total de socios.
func (r *PartnerRepo) Count() (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.partners)), nil
}
