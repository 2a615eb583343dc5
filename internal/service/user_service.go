package service

import (
	"context"
	"errors"
	"strings"

	"socialpod/internal/models"
	"socialpod/internal/repository"
	"socialpod/internal/validation"
)

// UserExistsMessage is returned instead of an insert result when the email is taken.
const UserExistsMessage = "user already exists"

// ErrUserExists reports that CreateUser found the email already registered.
var ErrUserExists = errors.New(UserExistsMessage)

type UserService struct {
	users repository.UserRepository
}

// CreateUserInput is the sign-in payload. Any role the client sends is ignored.
type CreateUserInput struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required,max=120"`
	Photo string `json:"photo" validate:"omitempty,url"`
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// CreateUser inserts a user with role "user" and no badge, or returns
// ErrUserExists when the email is already present.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.InsertResult, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrUserExists
	} else if !isNotFound(err) {
		return nil, storeError(err)
	}

	res, err := s.users.Create(ctx, &models.User{
		Email: in.Email,
		Name:  in.Name,
		Photo: in.Photo,
		Role:  models.RoleUser,
		Badge: models.BadgeNone,
	})
	if errors.Is(err, repository.ErrDuplicateKey) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, storeError(err)
	}
	return &res, nil
}

// GetByEmail returns the user, or nil when there is none.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, storeError(err)
	}
	return user, nil
}

// IsAdmin reports whether email belongs to an admin. Unknown emails are not admins.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// ListUsers returns users whose name contains search, case-insensitively.
func (s *UserService) ListUsers(ctx context.Context, search string) ([]models.User, error) {
	users, err := s.users.List(ctx, strings.TrimSpace(search))
	return users, storeError(err)
}

// ListAdmins returns every user holding the admin role.
func (s *UserService) ListAdmins(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListByRole(ctx, models.RoleAdmin)
	return users, storeError(err)
}

// SetAdmin grants the admin role to the user with id.
func (s *UserService) SetAdmin(ctx context.Context, id string) (*models.UpdateResult, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	res, err := s.users.SetRole(ctx, id, models.RoleAdmin)
	if err != nil {
		return nil, storeError(err)
	}
	return &res, nil
}

// PromoteByEmail grants the admin role to an existing user.
func (s *UserService) PromoteByEmail(ctx context.Context, email string) (*models.UpdateResult, error) {
	if err := validation.Var("email", email, "required,email"); err != nil {
		return nil, err
	}
	res, err := s.users.SetRoleByEmail(ctx, email, models.RoleAdmin)
	if err != nil {
		return nil, storeError(err)
	}
	if res.MatchedCount == 0 {
		return nil, models.NewNotFoundError("User", email)
	}
	return &res, nil
}

// EnsureAdmin creates email as an admin, or promotes it if it already exists.
func (s *UserService) EnsureAdmin(ctx context.Context, email, name string) error {
	if err := validation.Var("email", email, "required,email"); err != nil {
		return err
	}
	_, err := s.users.Create(ctx, &models.User{
		Email: email,
		Name:  name,
		Role:  models.RoleAdmin,
		Badge: models.BadgeNone,
	})
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return storeError(err)
	}
	_, err = s.users.SetRoleByEmail(ctx, email, models.RoleAdmin)
	return storeError(err)
}

// Badge returns the badge of email, or nil when the user does not exist.
func (s *UserService) Badge(ctx context.Context, email string) (*models.BadgeView, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil || user == nil {
		return nil, err
	}
	return &models.BadgeView{Badge: user.Badge}, nil
}
