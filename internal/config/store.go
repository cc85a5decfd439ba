package config

const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

type StoreConfig struct {
	Backend string
}

func NewStoreConfig() *StoreConfig {
	return &StoreConfig{
		Backend: getEnv("STORE_BACKEND", StoreBackendMemory),
	}
}
