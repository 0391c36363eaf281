package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
)

var _ repository.PartnerRepository = (*PartnerRepo)(nil)

// PartnerRepo implementación del puerto PartnerRepository sobre PostgreSQL.
type PartnerRepo struct {
	q Querier
}

// NewPartnerRepository construye el adaptador de persistencia para socios. Pasar pool o tx (Querier).
func NewPartnerRepository(q Querier) *PartnerRepo {
	return &PartnerRepo{q: q}
}

// Put inserta o sobrescribe el socio (upsert por principal).
func (r *PartnerRepo) Put(partner *entity.Partner) error {
	query := `
		INSERT INTO partners (principal, company_name, partner_type, contact_email, contact_person, certifications, verified, created_at, reputation_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (principal) DO UPDATE SET
			company_name = EXCLUDED.company_name, partner_type = EXCLUDED.partner_type,
			contact_email = EXCLUDED.contact_email, contact_person = EXCLUDED.contact_person,
			certifications = EXCLUDED.certifications, verified = EXCLUDED.verified,
			created_at = EXCLUDED.created_at, reputation_score = EXCLUDED.reputation_score`
	_, err := r.q.Exec(context.Background(), query,
		partner.ID, partner.CompanyName, string(partner.PartnerType),
		partner.ContactEmail, partner.ContactPerson, partner.Certifications,
		partner.Verified, partner.CreatedAt, int32(partner.ReputationScore),
	)
	if err != nil {
		return fmt.Errorf("upsert partner: %w", err)
	}
	return nil
}

// List devuelve todos los socios.
func (r *PartnerRepo) List() ([]*entity.Partner, error) {
	query := `
		SELECT principal, company_name, partner_type, contact_email, contact_person, certifications, verified, created_at, reputation_score
		FROM partners`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()
	var list []*entity.Partner
	for rows.Next() {
		var p entity.Partner
		var ptype string
		var reputation int32
		if err := rows.Scan(&p.ID, &p.CompanyName, &ptype, &p.ContactEmail,
			&p.ContactPerson, &p.Certifications, &p.Verified, &p.CreatedAt, &reputation); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		p.PartnerType = entity.PartnerType(ptype)
		p.ReputationScore = uint32(reputation)
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count devuelve el total de socios.
func (r *PartnerRepo) Count() (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM partners`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count partners: %w", err)
	}
	return n, nil
}
