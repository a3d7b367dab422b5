package config

import (
	"log"
	"os"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	Storage   string
	JWTSecret string
	MongoURI  string
	MongoDB   string
}

// Defaults возвращает значения по умолчанию для всего, что не задано в окружении
func Defaults() Config {
	return Config{
		Port:     "8080",
		Storage:  "memory",
		MongoURI: "mongodb://localhost:27017",
		MongoDB:  "bloccit",
	}
}

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found")
	}
}

// Load собирает конфиг из окружения и дополняет пустые поля значениями по умолчанию
func Load() (Config, error) {
	cfg := Config{
		Port:      os.Getenv("PORT"),
		Storage:   os.Getenv("STORAGE"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		MongoURI:  os.Getenv("MONGO_URI"),
		MongoDB:   os.Getenv("MONGO_DB"),
	}

	err := mergo.Merge(&cfg, Defaults())
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func GetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("environment variable %s is not set", key)
	}
	return value
}
