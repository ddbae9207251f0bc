package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Storage StorageConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StorageConfig persistencia del snapshot: directorio local autoritativo y
// réplica remota opcional en PostgreSQL.
type StorageConfig struct {
	// DataDir directorio del snapshot local (snapshot.json y session.json).
	DataDir string
	// DatabaseURL connection string de la réplica remota. Vacío = sin réplica.
	DatabaseURL string
}

// SessionConfig sesiones y firma del token de transporte.
type SessionConfig struct {
	TTLHours    int // vida de la sesión; 24 por defecto
	TokenSecret string
	TokenIssuer string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// HTTP_PORT, DATA_DIR, DATABASE_URL, TOKEN_SECRET, SESSION_TTL_HOURS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "compras-pro"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			DataDir:     getString(v, "DATA_DIR", "./data"),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
		},
		Session: SessionConfig{
			TTLHours:    getInt(v, "SESSION_TTL_HOURS", 24),
			TokenSecret: getString(v, "TOKEN_SECRET", ""),
			TokenIssuer: getString(v, "TOKEN_ISSUER", "compras-pro"),
		},
	}

	if cfg.Session.TTLHours <= 0 {
		cfg.Session.TTLHours = 24
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
