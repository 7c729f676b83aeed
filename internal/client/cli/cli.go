package cli

import (
	"context"
	"fmt"
	"text/template"

	"github.com/fortranov/neoastrology/internal/client/iocli"
	"github.com/fortranov/neoastrology/pkg/api"
)

//go:generate moq -out session_mock.go . Session
//go:generate moq -out chart_api_mock.go . ChartAPI

// Session описывает менеджер сессии, от которого зависят команды.
// Реализуется *session.Manager.
type Session interface {
	Initialize(ctx context.Context)
	Login(ctx context.Context, creds api.LoginRequest) error
	Register(ctx context.Context, data api.RegisterRequest) error
	Logout(ctx context.Context) error
	RefreshUser(ctx context.Context) error
	IsAuthenticated() bool
	CurrentUser() *api.User
	AuthToken() string
}

// ChartAPI описывает операции Chart Service, используемые командами.
// Реализуется *api.Client.
type ChartAPI interface {
	ListCharts(ctx context.Context, token string) ([]api.NatalChart, error)
	CreateChart(ctx context.Context, token string, req api.NatalChartCreate) (*api.NatalChart, error)
	GetChart(ctx context.Context, token, chartID string) (*api.NatalChart, error)
	DeleteChart(ctx context.Context, token, chartID string) error
	GetDailyHoroscope(ctx context.Context, token, sign, date string) (*api.Horoscope, error)
	GetAllSignsHoroscopes(ctx context.Context, token, date string) ([]api.Horoscope, error)
}

type Cli struct {
	io      iocli.IO
	session Session
	charts  ChartAPI
}

func New(io iocli.IO, session Session, charts ChartAPI) *Cli {
	return &Cli{
		io:      io,
		session: session,
		charts:  charts,
	}
}

// requireAuth гидрирует сессию из локального хранилища и проверяет,
// что пользователь авторизован. Возвращает bearer токен для запросов.
func (c *Cli) requireAuth(ctx context.Context) (string, error) {
	c.session.Initialize(ctx)

	if !c.session.IsAuthenticated() {
		return "", fmt.Errorf("not authenticated. Please run 'neoastro login' first")
	}
	return c.session.AuthToken(), nil
}

// renderTemplate выполняет текстовый шаблон прямо в c.io
func (c *Cli) renderTemplate(tmplText string, data any) error {
	tmpl, err := template.New("output").Parse(tmplText)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(c.io, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}

func (c *Cli) PrintUsage() {
	_ = c.renderTemplate(usageTemplate, nil)
}
