package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BkashConfig holds credentials for the two-phase bKash wallet flow.
type BkashConfig struct {
	BaseURL   string
	AppKey    string
	AppSecret string
}

func (c BkashConfig) Configured() bool {
	return c.AppKey != "" && c.AppSecret != ""
}

// NagadConfig holds credentials for the verify-required Nagad wallet flow.
type NagadConfig struct {
	BaseURL     string
	MerchantID  string
	MerchantKey string
}

func (c NagadConfig) Configured() bool {
	return c.MerchantID != "" && c.MerchantKey != ""
}

// SSLCommerzConfig holds credentials for the card gateway.
type SSLCommerzConfig struct {
	BaseURL       string
	StoreID       string
	StorePassword string
}

func (c SSLCommerzConfig) Configured() bool {
	return c.StoreID != "" && c.StorePassword != ""
}

// BackendConfig points at the storefront backend that proxies provider RPCs.
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
}

// RedirectConfig holds the navigation targets the callback resolver
// sends the shopper to once a redirect has been resolved.
type RedirectConfig struct {
	SuccessURL string
	FailureURL string
	HomeURL    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	ListenAddr string

	Backend    BackendConfig
	Redirect   RedirectConfig
	Redis      RedisConfig
	Bkash      BkashConfig
	Nagad      NagadConfig
	SSLCommerz SSLCommerzConfig
}

// Load reads configuration from the environment. A .env file is honored
// when present but never required.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("LISTEN_ADDR", ":8080")
	v.SetDefault("BACKEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("BACKEND_TIMEOUT", "10s")
	v.SetDefault("REDIRECT_SUCCESS_URL", "/payment/success")
	v.SetDefault("REDIRECT_FAILURE_URL", "/payment/failed")
	v.SetDefault("REDIRECT_HOME_URL", "/")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)

	return Config{
		ListenAddr: v.GetString("LISTEN_ADDR"),
		Backend: BackendConfig{
			BaseURL: v.GetString("BACKEND_BASE_URL"),
			Timeout: v.GetDuration("BACKEND_TIMEOUT"),
		},
		Redirect: RedirectConfig{
			SuccessURL: v.GetString("REDIRECT_SUCCESS_URL"),
			FailureURL: v.GetString("REDIRECT_FAILURE_URL"),
			HomeURL:    v.GetString("REDIRECT_HOME_URL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Bkash: BkashConfig{
			BaseURL:   v.GetString("BKASH_BASE_URL"),
			AppKey:    v.GetString("BKASH_APP_KEY"),
			AppSecret: v.GetString("BKASH_APP_SECRET"),
		},
		Nagad: NagadConfig{
			BaseURL:     v.GetString("NAGAD_BASE_URL"),
			MerchantID:  v.GetString("NAGAD_MERCHANT_ID"),
			MerchantKey: v.GetString("NAGAD_MERCHANT_KEY"),
		},
		SSLCommerz: SSLCommerzConfig{
			BaseURL:       v.GetString("SSLCOMMERZ_BASE_URL"),
			StoreID:       v.GetString("SSLCOMMERZ_STORE_ID"),
			StorePassword: v.GetString("SSLCOMMERZ_STORE_PASSWORD"),
		},
	}
}
