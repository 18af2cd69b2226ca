package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by the CLI and the Lambda handler.
type Config struct {
	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	ReportFormat  string
	Locale        string
	PaymentMethod string
}

// Load reads configuration from the environment. Variables in envFiles are
// loaded first without overriding ones already set; missing files are ignored.
func Load(envFiles ...string) Config {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	cfg := Config{
		LogLevel:      "info",
		LogMaxSizeMB:  10,
		ReportFormat:  "text",
		Locale:        "en",
		PaymentMethod: "paypal",
	}

	if v := os.Getenv("SOLID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.LogFile = os.Getenv("SOLID_LOG_FILE")
	if v := os.Getenv("SOLID_LOG_MAX_SIZE_MB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			cfg.LogMaxSizeMB = parsed
		}
	}
	if v := os.Getenv("SOLID_REPORT_FORMAT"); v != "" {
		cfg.ReportFormat = v
	}
	if v := os.Getenv("SOLID_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("SOLID_PAYMENT_METHOD"); v != "" {
		cfg.PaymentMethod = v
	}

	return cfg
}
