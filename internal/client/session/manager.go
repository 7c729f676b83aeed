// Package session владеет единственным источником правды о текущем
// пользователе: bearer токен, профиль и признак загрузки. Manager
// переживает перезапуски процесса через durable token store и
// уведомляет подписчиков об изменениях состояния.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fortranov/neoastrology/internal/client/storage"
	"github.com/fortranov/neoastrology/pkg/api"
)

// AccountAPI defines the subset of the Account Service the manager needs
type AccountAPI interface {
	// Register регистрирует пользователя и возвращает токен с профилем
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthToken, error)

	// Login выполняет аутентификацию пользователя
	Login(ctx context.Context, req api.LoginRequest) (*api.AuthToken, error)

	// GetCurrentUser возвращает профиль по bearer токену
	GetCurrentUser(ctx context.Context, token string) (*api.User, error)
}

// State is a snapshot of the session visible to consumers.
// User is present only if Token is present; "is authenticated"
// means User is present. Loading is a third state distinct from
// authenticated/unauthenticated: consumers must not treat the
// session as logged out while Loading is true.
type State struct {
	User    *api.User
	Token   string
	Loading bool
}

// Manager владеет in-memory сессией и является единственным писателем
// durable token store. Все мутирующие операции сериализуются opMu,
// поэтому login/logout/refresh никогда не перекрываются. Счетчик
// поколений защищает от применения устаревшего асинхронного результата
// поверх более нового состояния.
type Manager struct {
	account AccountAPI
	tokens  storage.TokenStorage

	mu      sync.Mutex
	subs    []func()
	token   string
	user    *api.User
	gen     uint64
	loading bool

	opMu     sync.Mutex
	initOnce sync.Once
}

// NewManager создает менеджер сессии. Сессия пустая и находится
// в состоянии loading до завершения Initialize.
func NewManager(account AccountAPI, tokens storage.TokenStorage) *Manager {
	return &Manager{
		account: account,
		tokens:  tokens,
		loading: true,
	}
}

// Initialize восстанавливает сессию из хранилища (hydration). Выполняется
// ровно один раз; повторные вызовы не имеют эффекта. Любая ошибка проверки
// сохраненного токена превращается в logged-out состояние, а не в ошибку:
// клиент никогда не предъявляет невалидный токен как валидный.
func (m *Manager) Initialize(ctx context.Context) {
	m.initOnce.Do(func() {
		m.opMu.Lock()
		defer m.opMu.Unlock()
		m.hydrate(ctx)
	})
}

func (m *Manager) hydrate(ctx context.Context) {
	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	token, err := m.tokens.GetToken(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			slog.Warn("failed to read stored token", "error", err)
		}
		m.applyHydration(gen, "", nil)
		return
	}

	user, err := m.account.GetCurrentUser(ctx, token)
	if err != nil {
		// Истекший токен, сетевая ошибка, кривой ответ - без разницы:
		// сохраненный токен удаляется и сессия сбрасывается
		slog.Debug("stored session is no longer valid", "error", err)
		if delErr := m.tokens.DeleteToken(ctx); delErr != nil {
			slog.Warn("failed to delete invalid token", "error", delErr)
		}
		m.applyHydration(gen, "", nil)
		return
	}

	m.applyHydration(gen, token, user)
}

// applyHydration применяет результат hydration только если поколение
// не изменилось, и в любом случае завершает состояние loading
func (m *Manager) applyHydration(gen uint64, token string, user *api.User) {
	m.mu.Lock()
	if m.gen == gen {
		m.token = token
		m.user = user
	}
	m.loading = false
	m.mu.Unlock()
	m.notify()
}

// Login выполняет аутентификацию и атомарно заполняет сессию из единственного
// ответа: сначала токен сохраняется в хранилище, затем устанавливаются token
// и user. При любой ошибке сессия остается без изменений, а ошибка (detail
// сервера либо generic fallback) возвращается вызывающему.
func (m *Manager) Login(ctx context.Context, creds api.LoginRequest) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	tok, err := m.account.Login(ctx, creds)
	if err != nil {
		return err
	}

	return m.establish(ctx, tok)
}

// Register создает аккаунт и устанавливает сессию по тому же контракту,
// что и Login: persist-then-set, без второго запроса за профилем.
func (m *Manager) Register(ctx context.Context, data api.RegisterRequest) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	tok, err := m.account.Register(ctx, data)
	if err != nil {
		return err
	}

	return m.establish(ctx, tok)
}

// establish сохраняет токен и переводит сессию в authenticated.
// Частичного состояния не бывает: либо записаны и токен и профиль,
// либо сессия не тронута.
func (m *Manager) establish(ctx context.Context, tok *api.AuthToken) error {
	if err := m.tokens.SaveToken(ctx, tok.AccessToken); err != nil {
		return fmt.Errorf("failed to persist access token: %w", err)
	}

	user := tok.User
	m.setSession(tok.AccessToken, &user)
	return nil
}

// Logout очищает сессию. In-memory состояние сбрасывается всегда и поколение
// инкрементируется, даже если удаление токена из хранилища не удалось;
// ошибка хранилища возвращается для информации. Сетевых вызовов нет.
func (m *Manager) Logout(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()
	return m.logoutLocked(ctx)
}

func (m *Manager) logoutLocked(ctx context.Context) error {
	err := m.tokens.DeleteToken(ctx)
	m.setSession("", nil)
	if err != nil {
		return fmt.Errorf("failed to delete stored token: %w", err)
	}
	return nil
}

// RefreshUser повторно запрашивает профиль по токену из ХРАНИЛИЩА, а не из
// памяти - так переживаются внешние изменения хранилища. Успех заменяет
// только user, сохраненный токен не трогается. Любая ошибка трактуется как
// инвалидация сессии: выполняется полный logout, после чего ошибка
// возвращается вызывающему. Повторных попыток нет.
func (m *Manager) RefreshUser(ctx context.Context) error {
	m.opMu.Lock()
	defer m.opMu.Unlock()

	m.mu.Lock()
	gen := m.gen
	m.mu.Unlock()

	token, err := m.tokens.GetToken(ctx)
	if err != nil {
		if logoutErr := m.logoutLocked(ctx); logoutErr != nil {
			slog.Warn("failed to clear session", "error", logoutErr)
		}
		return fmt.Errorf("failed to read stored token: %w", err)
	}

	user, err := m.account.GetCurrentUser(ctx, token)
	if err != nil {
		slog.Debug("session invalidated on refresh", "error", err)
		if logoutErr := m.logoutLocked(ctx); logoutErr != nil {
			slog.Warn("failed to clear session", "error", logoutErr)
		}
		return err
	}

	// Устаревший результат не применяется поверх более нового состояния
	m.mu.Lock()
	if m.gen == gen {
		m.user = user
	}
	m.mu.Unlock()
	m.notify()

	return nil
}

// setSession заменяет состояние сессии целиком и инкрементирует поколение,
// отсекая незавершенные hydration/refresh
func (m *Manager) setSession(token string, user *api.User) {
	m.mu.Lock()
	m.gen++
	m.token = token
	m.user = user
	m.loading = false
	m.mu.Unlock()
	m.notify()
}

// State возвращает снимок текущего состояния сессии
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return State{
		Token:   m.token,
		User:    m.copyUser(),
		Loading: m.loading,
	}
}

// IsAuthenticated определяется наличием профиля, не токена:
// токен без профиля - это переходное состояние hydration
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user != nil
}

// CurrentUser возвращает копию профиля текущего пользователя или nil
func (m *Manager) CurrentUser() *api.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.copyUser()
}

// AuthToken возвращает in-memory bearer токен ("" если его нет)
func (m *Manager) AuthToken() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

// Loading сообщает, идет ли еще hydration
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Subscribe регистрирует callback, вызываемый после каждого изменения
// состояния сессии. Callback вызывается без удерживаемых блокировок.
func (m *Manager) Subscribe(fn func()) {
	m.mu.Lock()
	m.subs = append(m.subs, fn)
	m.mu.Unlock()
}

func (m *Manager) notify() {
	m.mu.Lock()
	subs := make([]func(), len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

func (m *Manager) copyUser() *api.User {
	if m.user == nil {
		return nil
	}
	u := *m.user
	return &u
}
