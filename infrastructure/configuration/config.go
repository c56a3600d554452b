package configuration

import (
	"fmt"
	"os"
	"strconv"

	"jobcast/infrastructure/logger"

	"github.com/spf13/viper"
)

type Config struct {
	App      App      `json:"app"`
	Database Database `json:"database"`
	Redis    Redis    `json:"redis"`
	Neynar   Neynar   `json:"neynar"`
	Chain    Chain    `json:"chain"`
	Payment  Payment  `json:"payment"`
	Store    Store    `json:"store"`
}

type App struct {
	Port       int      `json:"port"`
	BaseURL    string   `json:"baseUrl"`
	SecretKey  string   `json:"secretKey"`
	SessionTTL int      `json:"sessionTtlHours"`
	CORS       []string `json:"corsOrigins"`
}

type Database struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
	SSLMode  string `json:"sslMode"`
}

type Redis struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type Neynar struct {
	APIKey   string `json:"apiKey"`
	ClientID string `json:"clientId"`
	BaseURL  string `json:"baseUrl"`
}

type Chain struct {
	RPCURL string `json:"rpcUrl"`
}

// Payment holds the on-chain fee schedule. Amounts are strings in the smallest
// unit (wei for the native coin) so they survive JSON without precision loss.
type Payment struct {
	ChainID          int64        `json:"chainId"`
	RecipientAddress string       `json:"recipientAddress"`
	JobPostingFee    string       `json:"jobPostingFee"`
	FeaturedJobFee   string       `json:"featuredJobFee"`
	Token            PaymentToken `json:"token"`
}

// PaymentToken describes the single accepted ERC-20 alternative, if configured.
type PaymentToken struct {
	Symbol          string `json:"symbol"`
	ContractAddress string `json:"contractAddress"`
	JobPostingFee   string `json:"jobPostingFee"`
	FeaturedJobFee  string `json:"featuredJobFee"`
}

// Store toggles the demo-data fallback behavior of the job store.
type Store struct {
	// FailFast disables the in-memory fallback: store errors propagate instead
	// of being masked with demo data.
	FailFast bool `json:"failFast"`
}

var C Config

func init() {
	LoadConfig()
	initDatabase(&C)
	initApp(&C)
	initPayment(&C)
}

func LoadConfig() {
	name := getConfig()
	viper.SetConfigName(name)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../")
	viper.AddConfigPath("../../")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.GetLogger().Warn("Config file not found")
		} else {
			logger.GetLogger().WithField("error", err).Error("Error reading config file")
		}
	}

	logger.GetLogger().WithField("config", name).Info("Config set up successfully")
	if err := viper.Unmarshal(&C); err != nil {
		logger.GetLogger().WithField("error", err).Error("Viper unable to decode into struct")
	}
}

func getConfig() string {
	name := "config"
	env := os.Getenv("ENV")
	if env != "" {
		name = fmt.Sprintf("%s-%s", name, env)
	}
	return name
}

func initDatabase(C *Config) {
	if C.Database.Name == "" {
		C.Database.Name = os.Getenv("DB_NAME")
	}
	if C.Database.Host == "" {
		C.Database.Host = os.Getenv("DB_HOST")
	}
	if C.Database.Port == "" {
		C.Database.Port = os.Getenv("DB_PORT")
	}
	if C.Database.User == "" {
		C.Database.User = os.Getenv("DB_USER")
	}
	if C.Database.Password == "" {
		C.Database.Password = os.Getenv("DB_PASSWORD")
	}
	if C.Database.SSLMode == "" {
		C.Database.SSLMode = "disable"
	}

	if C.Redis.Host == "" {
		C.Redis.Host = os.Getenv("REDIS_HOST")
	}
	if C.Redis.Port == "" {
		if v := os.Getenv("REDIS_PORT"); v != "" {
			C.Redis.Port = v
		} else {
			C.Redis.Port = "6379"
		}
	}
	if C.Redis.Password == "" {
		C.Redis.Password = os.Getenv("REDIS_PASSWORD")
	}
}

func initApp(C *Config) {
	// Prefer SECRET_KEY from environment for session token signing
	if v := os.Getenv("SECRET_KEY"); v != "" {
		C.App.SecretKey = v
	}
	// Port resolution order (env overrides config): APP_PORT -> PORT -> config -> default 8080
	if v := os.Getenv("APP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	} else if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			C.App.Port = p
		}
	}
	if C.App.Port == 0 {
		C.App.Port = 8080
	}
	if v := os.Getenv("APP_URL"); v != "" {
		C.App.BaseURL = v
	}
	if C.App.BaseURL == "" {
		C.App.BaseURL = fmt.Sprintf("http://localhost:%d", C.App.Port)
	}
	if C.App.SessionTTL == 0 {
		C.App.SessionTTL = 24 * 7
	}
	if len(C.App.CORS) == 0 {
		C.App.CORS = []string{C.App.BaseURL, "http://localhost:3000"}
	}
	if C.App.SecretKey == "" {
		logger.GetLogger().Warn("App.SecretKey not set; session tokens cannot be issued. Provide SECRET_KEY via environment.")
	}

	if v := os.Getenv("NEYNAR_API_KEY"); v != "" {
		C.Neynar.APIKey = v
	}
	if v := os.Getenv("NEYNAR_CLIENT_ID"); v != "" {
		C.Neynar.ClientID = v
	}
	if C.Neynar.BaseURL == "" {
		C.Neynar.BaseURL = "https://api.neynar.com"
	}
	if v := os.Getenv("CHAIN_RPC_URL"); v != "" {
		C.Chain.RPCURL = v
	}
	if v := os.Getenv("STORE_FAIL_FAST"); v == "1" || v == "true" {
		C.Store.FailFast = true
	}
}

func initPayment(C *Config) {
	if v := os.Getenv("PAYMENT_RECIPIENT_ADDRESS"); v != "" {
		C.Payment.RecipientAddress = v
	}
	if v := os.Getenv("PAYMENT_CHAIN_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			C.Payment.ChainID = id
		}
	}
	// Base mainnet, 0.01 ETH posting fee, 0.05 ETH featured surcharge
	if C.Payment.ChainID == 0 {
		C.Payment.ChainID = 8453
	}
	if C.Payment.JobPostingFee == "" {
		C.Payment.JobPostingFee = "10000000000000000"
	}
	if C.Payment.FeaturedJobFee == "" {
		C.Payment.FeaturedJobFee = "50000000000000000"
	}
	if C.Payment.RecipientAddress == "" {
		logger.GetLogger().Warn("Payment.RecipientAddress not set; payment verification will reject every transaction")
	}
}
