package user

import (
	"context"
	"database/sql"
	"errors"

	"storefront-be/internal/apperr"
	"storefront-be/internal/auth"
	"storefront-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, input RegisterInput) (User, error)
	Login(ctx context.Context, username, password string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, input RegisterInput) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Register"),
		zap.String("username", input.Username),
	)

	taken, err := s.repo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		log.Error("failed to check username", zap.Error(err))
		return User{}, err
	}
	if taken {
		return User{}, apperr.New("Error: Username is already taken")
	}

	inUse, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		log.Error("failed to check email", zap.Error(err))
		return User{}, err
	}
	if inUse {
		return User{}, apperr.New("Error: Email is already in use")
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return User{}, err
	}

	u, err := s.repo.Create(ctx, input.Username, input.Email, hashed, resolveRoles(input.Roles))
	if err != nil {
		log.Error("failed to create user", zap.Error(err))
		return User{}, err
	}

	log.Info("user registered", zap.Int64("user_id", u.ID))
	return u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Login"),
	)

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		// Same answer for unknown user and wrong password so the response
		// never reveals which usernames exist.
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrBadCredentials
		}
		log.Error("failed to look up user", zap.Error(err))
		return User{}, err
	}

	if !auth.CheckPasswordHash(password, u.Password) {
		return User{}, ErrBadCredentials
	}

	return u, nil
}

func (s *service) GetByUsername(ctx context.Context, username string) (User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, apperr.NotFound("User", "username", username)
		}
		return User{}, err
	}
	return u, nil
}

// resolveRoles maps requested role names onto the closed role set. Unknown
// names degrade to USER; an empty request gets the default USER role.
func resolveRoles(requested []string) []Role {
	if len(requested) == 0 {
		return []Role{RoleUser}
	}

	seen := make(map[Role]bool, len(requested))
	roles := make([]Role, 0, len(requested))
	for _, name := range requested {
		var role Role
		switch name {
		case "admin":
			role = RoleAdmin
		case "seller":
			role = RoleSeller
		default:
			role = RoleUser
		}
		if !seen[role] {
			seen[role] = true
			roles = append(roles, role)
		}
	}
	return roles
}
