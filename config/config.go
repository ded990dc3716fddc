package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment
type Config struct {
	Port     string
	MongoURI string
	MongoDB  string

	JWTSecret string
	JWTTTL    time.Duration

	EmailProvider    string
	PostmarkAPIToken string
	SendGridAPIKey   string
	EmailSender      string
	FrontendURL      string

	RedisAddr string
	CacheTTL  time.Duration

	KafkaBroker string
	OrderTopic  string

	CORSOrigins []string
}

// Load reads .env when present and then the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	return &Config{
		Port:             getEnv("PORT", "5000"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:          getEnv("MONGO_DB", "food_ordering"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		JWTTTL:           getDuration("JWT_TTL", 30*24*time.Hour),
		EmailProvider:    strings.ToLower(getEnv("EMAIL_PROVIDER", "none")),
		PostmarkAPIToken: os.Getenv("POSTMARK_API_TOKEN"),
		SendGridAPIKey:   os.Getenv("SENDGRID_API_KEY"),
		EmailSender:      getEnv("EMAIL_SENDER", "orders@foodorderingapp.com"),
		FrontendURL:      strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		CacheTTL:         getDuration("CACHE_TTL", 5*time.Minute),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		OrderTopic:       getEnv("ORDER_TOPIC", "orders"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s %q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
