package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	FirebaseProject string
	Environment     string

	// StorageDriver picks the backing store: "firestore" or "local".
	StorageDriver  string
	LocalCachePath string

	ChatEnabled bool

	// Featured placement is paid out-of-band over PIX; the service
	// only displays these values, it never verifies a payment.
	FeaturedPixKey string
	FeaturedPrice  string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		Environment:     getEnv("ENVIRONMENT", "development"),
		StorageDriver:   getEnv("STORAGE_DRIVER", "firestore"),
		LocalCachePath:  getEnv("LOCAL_CACHE_PATH", "./swapbook-cache.json"),
		ChatEnabled:     getEnvAsBool("CHAT_ENABLED", true),
		FeaturedPixKey:  getEnv("FEATURED_PIX_KEY", "557a2d16-c830-4777-884a-834943c1b05e"),
		FeaturedPrice:   getEnv("FEATURED_PRICE", "R$ 5,00"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}
