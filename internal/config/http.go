package config

import "strconv"

type HTTPConfig struct {
	Port int
}

func NewHTTPConfig() *HTTPConfig {
	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		port = 8080
	}
	return &HTTPConfig{
		Port: port,
	}
}
