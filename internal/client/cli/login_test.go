package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/fortranov/neoastrology/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runLogin_Success(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO("user@example.com", "secret-pass")

	user := &api.User{
		Email:            "user@example.com",
		SubscriptionTier: api.TierPremium,
	}
	mockSession := &SessionMock{
		LoginFunc: func(ctx context.Context, creds api.LoginRequest) error {
			return nil
		},
		CurrentUserFunc: func() *api.User {
			return user
		},
	}

	cli := New(mockIO, mockSession, &ChartAPIMock{})

	err := cli.runLogin(ctx)
	require.NoError(t, err)

	loginCalls := mockSession.LoginCalls()
	require.Len(t, loginCalls, 1)
	assert.Equal(t, "user@example.com", loginCalls[0].Creds.Email)
	assert.Equal(t, "secret-pass", loginCalls[0].Creds.Password)

	// Пароль запрашивается скрытым вводом
	assert.Len(t, mockIO.ReadPasswordCalls(), 1)

	output := out.String()
	assert.Contains(t, output, "Login successful")
	assert.Contains(t, output, "premium")
}

func TestCli_runLogin_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newMockIO("user@example.com", "wrong")

	mockSession := &SessionMock{
		LoginFunc: func(ctx context.Context, creds api.LoginRequest) error {
			return errors.New("Invalid credentials")
		},
	}

	cli := New(mockIO, mockSession, &ChartAPIMock{})

	err := cli.runLogin(ctx)
	require.Error(t, err)
	// Текст ошибки сервера отдается пользователю как есть
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestCli_runLogout(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO()

	mockSession := &SessionMock{
		InitializeFunc: func(ctx context.Context) {},
		LogoutFunc: func(ctx context.Context) error {
			return nil
		},
	}

	cli := New(mockIO, mockSession, &ChartAPIMock{})

	err := cli.runLogout(ctx)
	require.NoError(t, err)
	assert.Len(t, mockSession.LogoutCalls(), 1)
	assert.Contains(t, out.String(), "Logout successful")
}

func TestCli_runLogout_StorageError(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newMockIO()

	mockSession := &SessionMock{
		InitializeFunc: func(ctx context.Context) {},
		LogoutFunc: func(ctx context.Context) error {
			return errors.New("db is locked")
		},
	}

	cli := New(mockIO, mockSession, &ChartAPIMock{})

	err := cli.runLogout(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logout failed")
}
