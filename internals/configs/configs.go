package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret          string
	JWTRefreshSecret   string
	GoogleClientID     string
	OSSBucketName      string
	OSSEndpoint        string
	PDFRendererBaseURL string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ .env file not found, falling back to system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	JWTRefreshSecret = GetEnv("JWT_REFRESH_SECRET")
	GoogleClientID = GetEnv("GOOGLE_CLIENT_ID")
	OSSBucketName = GetEnv("OSS_BUCKET_NAME")
	OSSEndpoint = GetEnv("OSS_ENDPOINT")
	PDFRendererBaseURL = GetEnv("PDF_RENDERER_BASE_URL")

	for _, kv := range []struct{ key, val string }{
		{"JWT_SECRET", JWTSecret},
		{"JWT_REFRESH_SECRET", JWTRefreshSecret},
		{"OSS_BUCKET_NAME", OSSBucketName},
	} {
		if kv.val == "" {
			log.Printf("❌ %s is not set!", kv.key)
		}
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
