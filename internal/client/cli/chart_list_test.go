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

func TestCli_runChartList_EmptyList(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO()

	mockCharts := &ChartAPIMock{
		ListChartsFunc: func(ctx context.Context, token string) ([]api.NatalChart, error) {
			return []api.NatalChart{}, nil
		},
	}

	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartList(ctx)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "No charts found")
	assert.Contains(t, out.String(), "neoastro chart create")
}

func TestCli_runChartList_WithEntries(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO()

	charts := []api.NatalChart{
		{
			ID:           "chart-1",
			Name:         "My Chart",
			BirthDate:    time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			BirthTime:    "14:30",
			BirthCity:    "Moscow",
			BirthCountry: "Russia",
			IsPrimary:    true,
		},
		{
			ID:           "chart-2",
			Name:         "Partner",
			BirthDate:    time.Date(1992, 1, 3, 0, 0, 0, 0, time.UTC),
			BirthTime:    "08:00",
			BirthCity:    "Berlin",
			BirthCountry: "Germany",
		},
	}

	mockCharts := &ChartAPIMock{
		ListChartsFunc: func(ctx context.Context, token string) ([]api.NatalChart, error) {
			return charts, nil
		},
	}

	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartList(ctx)
	require.NoError(t, err)

	// Токен должен прокидываться в API
	listCalls := mockCharts.ListChartsCalls()
	require.Len(t, listCalls, 1)
	assert.Equal(t, "tok", listCalls[0].Token)

	output := out.String()
	assert.Contains(t, output, "Found 2 chart(s)")
	assert.Contains(t, output, "My Chart (primary)")
	assert.Contains(t, output, "chart-1")
	assert.Contains(t, output, "1990-06-15 14:30")
	assert.Contains(t, output, "Partner")
	assert.Contains(t, output, "Berlin, Germany")
}

func TestCli_runChartList_APIError(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newMockIO()

	mockCharts := &ChartAPIMock{
		ListChartsFunc: func(ctx context.Context, token string) ([]api.NatalChart, error) {
			return nil, errors.New("connection refused")
		},
	}

	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartList(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list charts")
}

func TestCli_runChartList_NotAuthenticated(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newMockIO()

	mockSession := &SessionMock{
		InitializeFunc:      func(ctx context.Context) {},
		IsAuthenticatedFunc: func() bool { return false },
	}
	mockCharts := &ChartAPIMock{}

	cli := New(mockIO, mockSession, mockCharts)

	err := cli.runChartList(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not authenticated")
	// API не должен вызываться без авторизации
	assert.Empty(t, mockCharts.ListChartsCalls())
}
