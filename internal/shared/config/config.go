package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	UploadDir       string
	MetadataFile    string
	ObjectStoreType string
	AWSRegion       string
	S3Bucket        string
	S3Prefix        string
	SSEKMSKeyID     string
	LLMProvider     string
	LLMModel        string
	LLMAPIKey       string
	DatabaseURL     string
	LogLevel        string
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	_ = godotenv.Load(".env")

	provider := strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", "groq")))

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		UploadDir:       getEnv("UPLOAD_DIR", "./data/uploads"),
		MetadataFile:    getEnv("METADATA_FILE", "./data/data.json"),
		ObjectStoreType: normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		AWSRegion:       getEnv("AWS_REGION", ""),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Prefix:        getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:     getEnv("SSE_KMS_KEY_ID", ""),
		LLMProvider:     provider,
		LLMModel:        modelFor(provider),
		LLMAPIKey:       apiKeyFor(provider),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
	}
}

// apiKeyFor resolves the provider-specific API key variable.
func apiKeyFor(provider string) string {
	switch provider {
	case "openai":
		return os.Getenv("OPENAI_API_KEY")
	default:
		return os.Getenv("GROQ_API_KEY")
	}
}

// modelFor resolves the provider-specific model, with LLM_MODEL as an
// override.
func modelFor(provider string) string {
	if model := os.Getenv("LLM_MODEL"); model != "" {
		return model
	}
	switch provider {
	case "openai":
		return getEnv("OPENAI_MODEL", "gpt-4o-mini")
	default:
		return getEnv("GROQ_MODEL", "openai/gpt-oss-20b")
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}
