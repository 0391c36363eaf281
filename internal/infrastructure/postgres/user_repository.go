package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `principal, email, first_name, last_name, company, role, created_at, is_verified,
	can_register_products, can_update_supply_chain, can_manage_partners, can_view_analytics, can_verify_users`

// Put inserta o sobrescribe el usuario (upsert por principal).
func (r *UserRepo) Put(user *entity.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (principal) DO UPDATE SET
			email = EXCLUDED.email, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name,
			company = EXCLUDED.company, role = EXCLUDED.role, created_at = EXCLUDED.created_at,
			is_verified = EXCLUDED.is_verified,
			can_register_products = EXCLUDED.can_register_products,
			can_update_supply_chain = EXCLUDED.can_update_supply_chain,
			can_manage_partners = EXCLUDED.can_manage_partners,
			can_view_analytics = EXCLUDED.can_view_analytics,
			can_verify_users = EXCLUDED.can_verify_users`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Email, user.FirstName, user.LastName, user.Company, string(user.Role),
		user.CreatedAt, user.IsVerified,
		user.Permissions.CanRegisterProducts, user.Permissions.CanUpdateSupplyChain,
		user.Permissions.CanManagePartners, user.Permissions.CanViewAnalytics,
		user.Permissions.CanVerifyUsers,
	)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// GetByID devuelve el usuario o nil si no existe.
func (r *UserRepo) GetByID(principal string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE principal = $1`
	u, err := scanUser(r.q.QueryRow(context.Background(), query, principal))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Count devuelve el total de usuarios.
func (r *UserRepo) Count() (int64, error) {
	var n int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var role string
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Company, &role, &u.CreatedAt, &u.IsVerified,
		&u.Permissions.CanRegisterProducts, &u.Permissions.CanUpdateSupplyChain,
		&u.Permissions.CanManagePartners, &u.Permissions.CanViewAnalytics,
		&u.Permissions.CanVerifyUsers,
	)
	if err != nil {
		return nil, err
	}
	u.Role = entity.UserRole(role)
	return &u, nil
}
