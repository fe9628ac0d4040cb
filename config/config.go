package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	ModelPath string
	UploadDir string
}

func Load() *Config {
	// Load .env if present; real env vars win.
	_ = godotenv.Load()

	return &Config{
		Port:      getenv("PORT", "8000"),
		ModelPath: getenv("MODEL_PATH", "models/brain_tumor_model.onnx"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
