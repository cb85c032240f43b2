package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	LogLevel      string
	DatabaseURL   string
	AdminJWTSecret string
	AdminEmails   []string

	CORSAllowedOrigins []string

	// Slot reservation store
	SlotStoreBackend string // postgres | dynamo | memory
	SlotTableName    string
	SlotCacheTTL     time.Duration

	// AWS (DynamoDB slot store backend)
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Redis (confirmed-slot read cache)
	RedisAddr     string
	RedisPassword string
	RedisTLS      bool
	RedisDisabled bool

	// Distance provider (Kakao)
	KakaoRESTKey        string
	KakaoLocalBaseURL   string
	KakaoMobilityBaseURL string
	DistanceTimeout     time.Duration

	// Inquiry channel
	SMSInquiryNumber string

	// Pricing levers
	OperatorMultiplier  float64
	DisplayMultiplier   float64
	HalfPackingPremium  float64
	ItemPriceMultiplier float64
	ItemGrowthRate      float64
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		AdminJWTSecret: getEnv("ADMIN_JWT_SECRET", ""),
		AdminEmails:    getEnvAsList("ADMIN_EMAILS", nil),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),

		SlotStoreBackend: strings.ToLower(strings.TrimSpace(getEnv("SLOT_STORE_BACKEND", "postgres"))),
		SlotTableName:    getEnv("SLOT_TABLE_NAME", "confirmed_slots"),
		SlotCacheTTL:     getEnvAsDuration("SLOT_CACHE_TTL", 15*time.Second),

		AWSRegion:           getEnv("AWS_REGION", "ap-northeast-2"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),
		RedisDisabled: getEnvAsBool("REDIS_DISABLED", false),

		KakaoRESTKey:         getEnv("KAKAO_MOBILITY_REST_KEY", ""),
		KakaoLocalBaseURL:    getEnv("KAKAO_LOCAL_BASE_URL", "https://dapi.kakao.com"),
		KakaoMobilityBaseURL: getEnv("KAKAO_MOBILITY_BASE_URL", "https://apis-navi.kakaomobility.com"),
		DistanceTimeout:      getEnvAsDuration("DISTANCE_TIMEOUT", 5*time.Second),

		SMSInquiryNumber: getEnv("SMS_INQUIRY_NUMBER", "01040941666"),

		OperatorMultiplier:  getEnvAsFloat("OPERATOR_MULTIPLIER", 1.0),
		DisplayMultiplier:   getEnvAsFloat("DISPLAY_MULTIPLIER", 0.95),
		HalfPackingPremium:  getEnvAsFloat("HALF_PACKING_PREMIUM", 1.18),
		ItemPriceMultiplier: getEnvAsFloat("ITEM_PRICE_MULTIPLIER", 1.1),
		ItemGrowthRate:      getEnvAsFloat("ITEM_GROWTH_RATE", 0.03),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsFloat retrieves an environment variable as a float or returns a default value
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
