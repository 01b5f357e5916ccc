package config

import (
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Billing   BillingConfig
	Notice    NoticeConfig
	Session   SessionConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// BackendConfig points at the remote billing API.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// BillingConfig holds the invoice builder constants.
type BillingConfig struct {
	TaxRate            decimal.Decimal
	TaxPlaces          int32
	SearchLimit        int
	KeepDraftOnFailure bool
}

type NoticeConfig struct {
	TTL time.Duration
}

type SessionConfig struct {
	IdleTTL       time.Duration
	SweepInterval time.Duration
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// PrinterConfig selects the receipt printer.
type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Width   int
	Header  string
}

type LogConfig struct {
	Level string
}

// Load reads .env (if present) and the environment.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	return FromViper(viper.GetViper())
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "billerone-web")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("BACKEND_BASE_URL", "https://billerone-backend.onrender.com/api")
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", 15)
	v.SetDefault("BILLING_TAX_RATE", "0.18")
	v.SetDefault("BILLING_TAX_PLACES", 2)
	v.SetDefault("BILLING_SEARCH_LIMIT", 10)
	v.SetDefault("BILLING_KEEP_DRAFT_ON_FAILURE", false)
	v.SetDefault("NOTICE_TTL_SECONDS", 5)
	v.SetDefault("SESSION_IDLE_TTL_MINUTES", 120)
	v.SetDefault("SESSION_SWEEP_INTERVAL_MINUTES", 5)
	v.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	v.SetDefault("JWT_EXPIRY_HOURS", 12)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PRINTER_TYPE", "none")
	v.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	v.SetDefault("PRINTER_ADDRESS", "")
	v.SetDefault("PRINTER_WIDTH", 32)
	v.SetDefault("PRINTER_HEADER", "BillerOne")
}

// FromViper builds a Config from v after registering defaults.
func FromViper(v *viper.Viper) *Config {
	SetDefaults(v)

	taxRate, err := decimal.NewFromString(v.GetString("BILLING_TAX_RATE"))
	if err != nil {
		log.Printf("Warning: invalid BILLING_TAX_RATE %q, using 0.18", v.GetString("BILLING_TAX_RATE"))
		taxRate = decimal.RequireFromString("0.18")
	}

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(v.GetString("BACKEND_BASE_URL"), "/"),
			Timeout: time.Duration(v.GetInt("BACKEND_TIMEOUT_SECONDS")) * time.Second,
		},
		Billing: BillingConfig{
			TaxRate:            taxRate,
			TaxPlaces:          v.GetInt32("BILLING_TAX_PLACES"),
			SearchLimit:        v.GetInt("BILLING_SEARCH_LIMIT"),
			KeepDraftOnFailure: v.GetBool("BILLING_KEEP_DRAFT_ON_FAILURE"),
		},
		Notice: NoticeConfig{
			TTL: time.Duration(v.GetInt("NOTICE_TTL_SECONDS")) * time.Second,
		},
		Session: SessionConfig{
			IdleTTL:       time.Duration(v.GetInt("SESSION_IDLE_TTL_MINUTES")) * time.Minute,
			SweepInterval: time.Duration(v.GetInt("SESSION_SWEEP_INTERVAL_MINUTES")) * time.Minute,
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: v.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Printer: PrinterConfig{
			Type:    v.GetString("PRINTER_TYPE"),
			USBPath: v.GetString("PRINTER_USB_PATH"),
			Address: v.GetString("PRINTER_ADDRESS"),
			Width:   v.GetInt("PRINTER_WIDTH"),
			Header:  v.GetString("PRINTER_HEADER"),
		},
	}
}
