// Package config resolves client settings: the API base URL and the
// path to the local database. Приоритет: флаг командной строки >
// переменная окружения > значение по умолчанию. Файлы .env
// подхватываются через godotenv/autoload в cmd/client.
package config

import "os"

const (
	// DefaultServerURL адрес backend для локальной разработки
	DefaultServerURL = "http://localhost:8001"
	// DefaultDBPath путь к локальной базе с токеном сессии
	DefaultDBPath = "neoastro.db"

	// EnvServerURL переменная окружения с адресом backend
	EnvServerURL = "NEOASTROLOGY_SERVER_URL"
	// EnvDBPath переменная окружения с путем к локальной базе
	EnvDBPath = "NEOASTROLOGY_DB_PATH"
)

// Config содержит настройки клиента
type Config struct {
	ServerURL string
	DBPath    string
}

// Load возвращает конфигурацию из окружения с дефолтами.
// Значения используются как default для флагов в cmd/client,
// поэтому флаг всегда побеждает окружение.
func Load() *Config {
	return &Config{
		ServerURL: envOrDefault(EnvServerURL, DefaultServerURL),
		DBPath:    envOrDefault(EnvDBPath, DefaultDBPath),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
