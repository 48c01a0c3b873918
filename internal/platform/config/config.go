package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/core/domain"
	"github.com/alexispinzongalindo/DIEGO-SOTO/internal/utils/billing"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// Login rate limiting, e.g. "10-M" for 10 requests per minute.
	LoginRateLimit string

	// Per-kind numbering series (prefix and zero padding).
	NumberingStyles map[domain.DocumentKind]billing.SeriesStyle
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "billing-ledger")
	viper.SetDefault("LOGIN_RATE_LIMIT", "10-M")
	viper.SetDefault("INVOICE_NUMBER_PREFIX", "INV-")
	viper.SetDefault("INVOICE_NUMBER_WIDTH", 6)
	viper.SetDefault("BILL_NUMBER_PREFIX", "")
	viper.SetDefault("BILL_NUMBER_WIDTH", 4)
	viper.SetDefault("QUOTE_NUMBER_PREFIX", "Q-")
	viper.SetDefault("QUOTE_NUMBER_WIDTH", 6)
	viper.SetDefault("PO_NUMBER_PREFIX", "")
	viper.SetDefault("PO_NUMBER_WIDTH", 4)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")

	cfg.NumberingStyles = map[domain.DocumentKind]billing.SeriesStyle{
		domain.KindInvoice: {
			Prefix: viper.GetString("INVOICE_NUMBER_PREFIX"),
			Width:  viper.GetInt("INVOICE_NUMBER_WIDTH"),
		},
		domain.KindBill: {
			Prefix: viper.GetString("BILL_NUMBER_PREFIX"),
			Width:  viper.GetInt("BILL_NUMBER_WIDTH"),
		},
		domain.KindQuote: {
			Prefix: viper.GetString("QUOTE_NUMBER_PREFIX"),
			Width:  viper.GetInt("QUOTE_NUMBER_WIDTH"),
		},
		domain.KindPurchaseOrder: {
			Prefix: viper.GetString("PO_NUMBER_PREFIX"),
			Width:  viper.GetInt("PO_NUMBER_WIDTH"),
		},
	}

	return cfg, nil
}
