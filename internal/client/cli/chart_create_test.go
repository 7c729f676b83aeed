package cli

import (
	"context"
	"testing"

	"github.com/fortranov/neoastrology/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCli_runChartCreate_Success(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO(
		"My Chart",        // name
		"1990-06-15",      // birth date
		"14:30",           // birth time
		"Europe/Moscow",   // timezone
		"Moscow",          // city
		"Russia",          // country
		"55.7558",         // latitude
		"37.6173",         // longitude
		"y",               // primary
	)

	mockCharts := &ChartAPIMock{
		CreateChartFunc: func(ctx context.Context, token string, req api.NatalChartCreate) (*api.NatalChart, error) {
			return &api.NatalChart{ID: "chart-new", Name: req.Name}, nil
		},
	}

	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartCreate(ctx)
	require.NoError(t, err)

	createCalls := mockCharts.CreateChartCalls()
	require.Len(t, createCalls, 1)
	req := createCalls[0].Req
	assert.Equal(t, "My Chart", req.Name)
	assert.Equal(t, "1990-06-15", req.BirthDate)
	assert.Equal(t, "14:30", req.BirthTime)
	assert.Equal(t, "Europe/Moscow", req.BirthTimezone)
	assert.InDelta(t, 55.7558, req.BirthLatitude, 0.0001)
	assert.InDelta(t, 37.6173, req.BirthLongitude, 0.0001)
	assert.True(t, req.IsPrimary)

	assert.Contains(t, out.String(), "Natal chart created")
	assert.Contains(t, out.String(), "chart-new")
}

func TestCli_runChartCreate_InvalidBirthDate(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newMockIO("My Chart", "15.06.1990")

	mockCharts := &ChartAPIMock{}
	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartCreate(ctx)
	require.Error(t, err)
	assert.Empty(t, mockCharts.CreateChartCalls())
}

func TestCli_runChartCreate_InvalidLatitude(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := newMockIO(
		"My Chart",
		"1990-06-15",
		"14:30",
		"Europe/Moscow",
		"Moscow",
		"Russia",
		"95.0", // за пределами диапазона
	)

	mockCharts := &ChartAPIMock{}
	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartCreate(ctx)
	require.Error(t, err)
	assert.Empty(t, mockCharts.CreateChartCalls())
}

func TestCli_runChartDelete_Confirmed(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO("y")

	mockCharts := &ChartAPIMock{
		DeleteChartFunc: func(ctx context.Context, token, chartID string) error {
			return nil
		},
	}

	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartDelete(ctx, []string{"chart-1"})
	require.NoError(t, err)

	deleteCalls := mockCharts.DeleteChartCalls()
	require.Len(t, deleteCalls, 1)
	assert.Equal(t, "chart-1", deleteCalls[0].ChartID)
	assert.Contains(t, out.String(), "Chart deleted")
}

func TestCli_runChartDelete_Aborted(t *testing.T) {
	ctx := context.Background()
	mockIO, out := newMockIO("n")

	mockCharts := &ChartAPIMock{}
	cli := New(mockIO, authenticatedSession("tok"), mockCharts)

	err := cli.runChartDelete(ctx, []string{"chart-1"})
	require.NoError(t, err)
	assert.Empty(t, mockCharts.DeleteChartCalls())
	assert.Contains(t, out.String(), "Aborted")
}

func TestCli_runChartDelete_MissingID(t *testing.T) {
	mockIO, _ := newMockIO()
	cli := New(mockIO, authenticatedSession("tok"), &ChartAPIMock{})

	err := cli.runChartDelete(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing chart ID")
}
