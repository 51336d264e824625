package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/internal/mock"
	"github.com/inohub/prospect-console/models"
)

func newUserService(t *testing.T) (UserService, *mock.MockAPIGateway) {
	t.Helper()

	ctrl := gomock.NewController(t)
	gateway := mock.NewMockAPIGateway(ctrl)
	validate := validator.New(validator.WithRequiredStructEnabled())

	return NewUserService(gateway, validate, logger.Nop()), gateway
}

func TestValidPassword(t *testing.T) {
	tests := []struct {
		pass string
		want bool
	}{
		{pass: "Abcdefg!", want: true},
		{pass: "Senha#Forte1", want: true},
		{pass: "abc12345", want: false}, // no uppercase, no special
		{pass: "A1!", want: false},      // too short
		{pass: "ABCDEFGH", want: false}, // no special
		{pass: "abcdefg!", want: false}, // no uppercase
		{pass: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.pass, func(t *testing.T) {
			assert.Equal(t, tt.want, validPassword(tt.pass))
		})
	}
}

func TestUserService_List(t *testing.T) {
	svc, gateway := newUserService(t)

	gateway.EXPECT().
		ListUsers(gomock.Any(), 1, 50).
		Return(models.UserPage{
			Data:        []models.UserAccount{{ID: 7, Username: "admin", Status: 1}},
			Total:       1,
			TotalPages:  1,
			CurrentPage: 1,
		}, nil)

	got, err := svc.List(context.Background(), 1, 200)

	require.NoError(t, err)
	assert.Equal(t, 1, got.Total)
}

func TestUserService_List_RefetchesLastPage(t *testing.T) {
	svc, gateway := newUserService(t)

	gateway.EXPECT().
		ListUsers(gomock.Any(), 9, 10).
		Return(models.UserPage{Total: 12, TotalPages: 2}, nil)
	gateway.EXPECT().
		ListUsers(gomock.Any(), 2, 10).
		Return(models.UserPage{
			Data:       []models.UserAccount{{ID: 11}},
			Total:      12,
			TotalPages: 2,
		}, nil)

	got, err := svc.List(context.Background(), 9, 10)

	require.NoError(t, err)
	assert.Equal(t, 2, got.CurrentPage)
}

func TestUserService_List_EmptyResultClampsDeepPage(t *testing.T) {
	svc, gateway := newUserService(t)

	gateway.EXPECT().
		ListUsers(gomock.Any(), 4, 10).
		Return(models.UserPage{Total: 0, TotalPages: 0}, nil)

	got, err := svc.List(context.Background(), 4, 10)

	require.NoError(t, err)
	assert.Empty(t, got.Data)
	assert.Equal(t, 1, got.CurrentPage)
}

func TestUserService_Create(t *testing.T) {
	svc, gateway := newUserService(t)

	req := models.CreateUserRequest{
		Username: "maria",
		Email:    "maria@inohub.com.br",
		Password: "Abcdefg!",
	}

	gateway.EXPECT().
		CreateUser(gomock.Any(), req).
		Return(nil)

	require.NoError(t, svc.Create(context.Background(), req))
}

func TestUserService_Create_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateUserRequest
		wantErr error
	}{
		{
			name:    "missing username",
			req:     models.CreateUserRequest{Email: "a@b.com", Password: "Abcdefg!"},
			wantErr: ErrValidation,
		},
		{
			name:    "bad email",
			req:     models.CreateUserRequest{Username: "x", Email: "nope", Password: "Abcdefg!"},
			wantErr: ErrValidation,
		},
		{
			name:    "weak password",
			req:     models.CreateUserRequest{Username: "x", Email: "a@b.com", Password: "abc12345"},
			wantErr: ErrWeakPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newUserService(t)

			// no gateway expectation: validation must stop the call locally
			err := svc.Create(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserService_Edit_BlankPasswordKeepsCurrent(t *testing.T) {
	svc, gateway := newUserService(t)

	patch := models.EditUserRequest{Email: "maria@inohub.com.br", Status: 1}

	gateway.EXPECT().
		EditUser(gomock.Any(), int64(7), patch).
		Return(nil)

	require.NoError(t, svc.Edit(context.Background(), 7, patch))
}

func TestUserService_Edit_WeakNewPassword(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.Edit(context.Background(), 7, models.EditUserRequest{
		Email:    "maria@inohub.com.br",
		Status:   1,
		Password: "short",
	})

	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestUserService_Edit_InvalidStatus(t *testing.T) {
	svc, _ := newUserService(t)

	err := svc.Edit(context.Background(), 7, models.EditUserRequest{
		Email:  "maria@inohub.com.br",
		Status: 2,
	})

	assert.ErrorIs(t, err, ErrValidation)
}
