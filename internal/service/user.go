package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

const passwordSpecialChars = `!@#$%^&*()-_=+[]{};:'",.<>/?\|~` + "`"

// validPassword reports whether pass satisfies the account password rule:
// at least 8 characters, at least one uppercase letter, and at least one
// special character.
func validPassword(pass string) bool {
	if len(pass) < 8 {
		return false
	}

	var hasUpper, hasSpecial bool
	for _, r := range pass {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}

	return hasUpper && hasSpecial
}

type userService struct {
	adapter  adapter.APIGateway
	validate *validator.Validate
	logger   *logger.Logger
}

// NewUserService constructs a [UserService] backed by the provided gateway
// and validator.
func NewUserService(gateway adapter.APIGateway, validate *validator.Validate, logger *logger.Logger) UserService {
	return &userService{adapter: gateway, validate: validate, logger: logger}
}

// List implements [UserService]. Pagination follows the same clamping rules
// as the prospect listing.
func (u *userService) List(ctx context.Context, page, limit int) (models.UserPage, error) {
	limit = clampLimit(limit)
	if page < 1 {
		page = 1
	}

	result, err := u.adapter.ListUsers(ctx, page, limit)
	if err != nil {
		return models.UserPage{}, err
	}

	switch {
	case result.TotalPages == 0:
		// an empty listing is one empty page
		page = 1
		result.CurrentPage = 1
	case page > result.TotalPages:
		page = result.TotalPages
		result, err = u.adapter.ListUsers(ctx, page, limit)
		if err != nil {
			return models.UserPage{}, err
		}
	}

	if result.CurrentPage == 0 {
		result.CurrentPage = page
	}

	return result, nil
}

// Create implements [UserService]. Field and password-strength validation
// run before any request; failures are wrapped in [ErrValidation] or
// reported as [ErrWeakPassword].
func (u *userService) Create(ctx context.Context, req models.CreateUserRequest) error {
	if err := u.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !validPassword(req.Password) {
		return ErrWeakPassword
	}

	if err := u.adapter.CreateUser(ctx, req); err != nil {
		return err
	}

	u.logger.Debug().Str("func", "*userService.Create").Str("username", req.Username).Msg("account created")
	return nil
}

// Edit implements [UserService]. A blank password means "keep the current
// one" and skips the strength check; a non-blank password is validated like
// on creation.
func (u *userService) Edit(ctx context.Context, id int64, patch models.EditUserRequest) error {
	if err := u.validate.Struct(patch); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if patch.Password != "" && !validPassword(patch.Password) {
		return ErrWeakPassword
	}

	if err := u.adapter.EditUser(ctx, id, patch); err != nil {
		return err
	}

	u.logger.Debug().Str("func", "*userService.Edit").Int64("id", id).Msg("account updated")
	return nil
}
