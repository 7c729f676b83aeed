package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fortranov/neoastrology/internal/client/iocli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMockIO возвращает IOMock, который пишет весь вывод в builder,
// а ввод берет из очереди inputs (и ReadInput, и ReadPassword)
func newMockIO(inputs ...string) (*iocli.IOMock, *strings.Builder) {
	out := &strings.Builder{}
	queue := inputs

	next := func(prompt string) (string, error) {
		if len(queue) == 0 {
			return "", fmt.Errorf("no input left for prompt %q", prompt)
		}
		value := queue[0]
		queue = queue[1:]
		return value, nil
	}

	mockIO := &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			fmt.Fprintln(out, a...)
		},
		PrintfFunc: func(format string, a ...any) {
			fmt.Fprintf(out, format, a...)
		},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
		WriteFunc: func(p []byte) (int, error) {
			return out.Write(p)
		},
	}
	return mockIO, out
}

// authenticatedSession возвращает мок сессии уже авторизованного пользователя
func authenticatedSession(token string) *SessionMock {
	return &SessionMock{
		InitializeFunc:      func(ctx context.Context) {},
		IsAuthenticatedFunc: func() bool { return true },
		AuthTokenFunc:       func() string { return token },
	}
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	mockIO, out := newMockIO()
	cli := New(mockIO, &SessionMock{}, &ChartAPIMock{})

	err := cli.Run(context.Background(), "teleport", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: teleport")
	assert.Contains(t, out.String(), "Usage:")
}

func TestCli_requireAuth_NotAuthenticated(t *testing.T) {
	mockIO, _ := newMockIO()
	mockSession := &SessionMock{
		InitializeFunc:      func(ctx context.Context) {},
		IsAuthenticatedFunc: func() bool { return false },
	}
	cli := New(mockIO, mockSession, &ChartAPIMock{})

	_, err := cli.requireAuth(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
	// Гидрация должна выполняться до проверки
	assert.Len(t, mockSession.InitializeCalls(), 1)
}

func TestCli_requireAuth_ReturnsToken(t *testing.T) {
	mockIO, _ := newMockIO()
	cli := New(mockIO, authenticatedSession("tok-123"), &ChartAPIMock{})

	token, err := cli.requireAuth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}
