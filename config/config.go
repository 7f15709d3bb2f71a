package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Observ   ObservabilityConfig
	Business BusinessConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
	TracingEnabled bool
}

type BusinessConfig struct {
	// CapitalProvince gets the low flat shipping rate; every other
	// province pays the interior rate.
	CapitalProvince      string
	ShippingRateCapital  int64
	ShippingRateInterior int64
	SettlementDelay      time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	rateCapital, _ := strconv.ParseInt(getEnv("SHIPPING_RATE_CAPITAL", "2000"), 10, 64)
	rateInterior, _ := strconv.ParseInt(getEnv("SHIPPING_RATE_INTERIOR", "5000"), 10, 64)
	settlementMs, _ := strconv.Atoi(getEnv("SETTLEMENT_DELAY_MS", "2500"))
	tracingEnabled, _ := strconv.ParseBool(getEnv("TRACING_ENABLED", "false"))

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
			TracingEnabled: tracingEnabled,
		},
		Business: BusinessConfig{
			CapitalProvince:      getEnv("CAPITAL_PROVINCE", "Luanda"),
			ShippingRateCapital:  rateCapital,
			ShippingRateInterior: rateInterior,
			SettlementDelay:      time.Duration(settlementMs) * time.Millisecond,
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
