package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Settings loaded from the environment at startup
var (
	ApiPort string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	RedisAddr     string
	RedisPassword string

	JWTSecret string
	JWTExpire string

	MailHost     string
	MailPort     string
	MailUsername string
	MailPassword string
	MailSupport  string

	ClientUrl       string
	DefaultPassword string
	BackupDir       string
)

// Init loads the .env file if present and reads all settings from the
// environment. Must be called before InitDB.
func Init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ApiPort = getEnv("API_PORT", "8080")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "fieldscore")

	RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	JWTSecret = getEnv("JWT_SECRET", "")
	JWTExpire = getEnv("JWT_EXPIRE", "24h")

	MailHost = getEnv("MAIL_HOST", "")
	MailPort = getEnv("MAIL_PORT", "587")
	MailUsername = getEnv("MAIL_USERNAME", "")
	MailPassword = getEnv("MAIL_PASSWORD", "")
	MailSupport = getEnv("MAIL_SUPPORT", "")

	ClientUrl = getEnv("CLIENT_URL", "http://localhost:3000")
	DefaultPassword = getEnv("DEFAULT_ADMIN_PASSWORD", "")
	BackupDir = getEnv("BACKUP_DIR", "./backups")

	loadScoringRules()
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
