package config

import "os"

type AppConfig struct {
	DebugMode      bool
	HTTPConfig     *HTTPConfig
	StoreConfig    *StoreConfig
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	DiscordConfig  *DiscordConfig
	DispatchConfig *DispatchConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPConfig:     NewHTTPConfig(),
		StoreConfig:    NewStoreConfig(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		DiscordConfig:  NewDiscordConfig(),
		DispatchConfig: NewDispatchConfig(),
	}
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
