package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fortranov/neoastrology/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runStatus_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO()

	mockSession := &SessionMock{
		InitializeFunc:      func(ctx context.Context) {},
		IsAuthenticatedFunc: func() bool { return false },
	}

	cli := New(mockIO, mockSession, &ChartAPIMock{})

	err := cli.runStatus(ctx)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Not authenticated")
	assert.Contains(t, out.String(), "neoastro login")
}

func TestCli_runStatus_Authenticated(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO()

	endDate := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	user := &api.User{
		Email:               "user@example.com",
		FullName:            "Jane Doe",
		SubscriptionTier:    api.TierBasic,
		SubscriptionEndDate: &endDate,
		IsVerified:          true,
		CreatedAt:           time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
	}

	mockSession := &SessionMock{
		InitializeFunc:      func(ctx context.Context) {},
		IsAuthenticatedFunc: func() bool { return true },
		RefreshUserFunc:     func(ctx context.Context) error { return nil },
		CurrentUserFunc:     func() *api.User { return user },
		// Непрозрачный токен без exp claim, блок срока действия пропускается
		AuthTokenFunc: func() string { return "opaque-token" },
	}

	cli := New(mockIO, mockSession, &ChartAPIMock{})

	err := cli.runStatus(ctx)
	require.NoError(t, err)

	// Профиль обновляется с сервера перед показом
	assert.Len(t, mockSession.RefreshUserCalls(), 1)

	output := out.String()
	assert.Contains(t, output, "Status: Authenticated")
	assert.Contains(t, output, "user@example.com")
	assert.Contains(t, output, "basic")
	assert.Contains(t, output, "2027-03-01")
	assert.Contains(t, output, "Member since: 2025-05-20")
}

func TestCli_runStatus_StaleToken(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO()

	mockSession := &SessionMock{
		InitializeFunc:      func(ctx context.Context) {},
		IsAuthenticatedFunc: func() bool { return true },
		RefreshUserFunc: func(ctx context.Context) error {
			return errors.New("Could not validate credentials")
		},
	}

	cli := New(mockIO, mockSession, &ChartAPIMock{})

	// Просроченный токен не считается ошибкой команды
	err := cli.runStatus(ctx)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no longer valid")
}
