package api

import "time"

// SubscriptionTier определяет уровень подписки пользователя
type SubscriptionTier string

const (
	// TierFree бесплатный тариф
	TierFree SubscriptionTier = "free"
	// TierBasic базовый платный тариф
	TierBasic SubscriptionTier = "basic"
	// TierPremium премиальный тариф
	TierPremium SubscriptionTier = "premium"
)

// User представляет профиль пользователя, возвращаемый Account Service.
// Клиент никогда не вычисляет и не изменяет эти поля локально,
// он только целиком заменяет свою копию ответом сервера.
type User struct {
	CreatedAt           time.Time        `json:"created_at"`            // дата регистрации
	SubscriptionEndDate *time.Time       `json:"subscription_end_date"` // окончание подписки (может отсутствовать)
	ID                  string           `json:"id"`                    // UUID пользователя
	Email               string           `json:"email"`                 // email (логин)
	FullName            string           `json:"full_name"`             // полное имя (опционально)
	SubscriptionTier    SubscriptionTier `json:"subscription_tier"`     // free | basic | premium
	IsActive            bool             `json:"is_active"`
	IsVerified          bool             `json:"is_verified"`
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Email    string `json:"email"`               // email пользователя
	Password string `json:"password"`            // пароль
	FullName string `json:"full_name,omitempty"` // полное имя (опционально)
}

// AuthToken представляет ответ login/register: bearer токен вместе со
// встроенным профилем пользователя, чтобы сессия заполнялась за один запрос
type AuthToken struct {
	AccessToken string `json:"access_token"` // opaque bearer token
	TokenType   string `json:"token_type"`   // всегда "bearer"
	User        User   `json:"user"`         // профиль пользователя
}

// ErrorResponse представляет структурированный ответ сервера с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"` // human-readable описание ошибки
}
