// Package users covers registration and the admin user-management list.
package users

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/modasmart/storefront/internal/apperr"
	"github.com/modasmart/storefront/internal/authn"
	"github.com/modasmart/storefront/internal/models"
)

type UserStore interface {
	SetUser(ctx context.Context, uid string, u models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
	InsertUser(ctx context.Context, u models.User) (string, error)
	DeleteUser(ctx context.Context, id string) error
}

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required"`
	Phone    string `validate:"required"`
	Role     string `validate:"required,oneof=admin client"`
}

// DirectoryInput is an entry added from the management screen. It is a
// plain directory record: no auth account is created for it.
type DirectoryInput struct {
	Name  string `validate:"required"`
	Email string `validate:"required"`
	Phone string `validate:"required"`
}

type Service struct {
	Auth  authn.Authenticator
	Store UserStore

	validate *validator.Validate
}

func NewService(auth authn.Authenticator, store UserStore) *Service {
	return &Service{Auth: auth, Store: store, validate: validator.New()}
}

// Register creates the auth account, then writes the users/<uid>
// document holding the role. If the second write fails the account
// exists without a role document and the next sign-in surfaces the
// invalid-role state.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*authn.Credential, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("registration fields invalid: %w", apperr.ErrValidation)
	}

	cred, err := s.Auth.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	u := models.User{
		Email: in.Email,
		Name:  in.Name,
		Phone: in.Phone,
		Role:  models.Role(in.Role),
	}
	if err := s.Store.SetUser(ctx, cred.UID, u); err != nil {
		return cred, err
	}
	return cred, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	return s.Store.ListUsers(ctx)
}

func (s *Service) Add(ctx context.Context, in DirectoryInput) (string, error) {
	if err := s.validate.Struct(in); err != nil {
		return "", fmt.Errorf("all fields are required: %w", apperr.ErrValidation)
	}
	return s.Store.InsertUser(ctx, models.User{
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
	})
}

// Delete removes a user document; absent ids succeed.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Store.DeleteUser(ctx, id)
}
