package usecase

import (
	"sync"
	"time"

	"github.com/tu-usuario/chaintrace-api/internal/application/dto"
	"github.com/tu-usuario/chaintrace-api/internal/domain"
	"github.com/tu-usuario/chaintrace-api/internal/domain/entity"
	"github.com/tu-usuario/chaintrace-api/internal/domain/repository"
)

// UserUseCase casos de uso de participantes. Todas las operaciones de negocio del
// servicio se serializan bajo un único mutex compartido entre los casos de uso:
// cada operación observa el estado resultante de la anterior, sin intercalado.
type UserUseCase struct {
	mu    *sync.Mutex
	users repository.UserRepository
}

// NewUserUseCase construye el caso de uso. mu es el mutex global del servicio.
func NewUserUseCase(mu *sync.Mutex, users repository.UserRepository) *UserUseCase {
	return &UserUseCase{mu: mu, users: users}
}

// Register registra al caller con el rol pedido. Es upsert: re-registrarse
// sobrescribe el registro previo completo (incluye created_at y is_verified,
// que vuelven a ahora y false). Los permisos se copian de la política del rol
// en este instante y quedan congelados en el usuario.
func (uc *UserUseCase) Register(principal string, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if principal == "" || principal == entity.AnonymousPrincipal {
		return nil, domain.ErrUnauthorized
	}
	role, err := entity.ParseUserRole(in.Role)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	user := &entity.User{
		ID:          principal,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Company:     in.Company,
		Role:        role,
		CreatedAt:   time.Now(),
		IsVerified:  false,
		Permissions: entity.DefaultPermissions(role),
	}
	if err := uc.users.Put(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetProfile devuelve el perfil del caller.
func (uc *UserUseCase) GetProfile(principal string) (*dto.UserResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	user, err := uc.users.GetByID(principal)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdateVerification marca o desmarca la verificación de un usuario. Sólo un
// caller cuyo rol ALMACENADO sea Admin puede hacerlo; la decisión usa el rol,
// no el snapshot de permisos.
func (uc *UserUseCase) UpdateVerification(caller, targetID string, verified bool) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	admin, err := uc.users.GetByID(caller)
	if err != nil {
		return err
	}
	if admin == nil {
		return domain.ErrUserNotFound
	}
	if admin.Role != entity.RoleAdmin {
		return domain.ErrUnauthorized
	}

	target, err := uc.users.GetByID(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return domain.ErrUserNotFound
	}
	target.IsVerified = verified
	return uc.users.Put(target)
}
