package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables consumed by the pull command.
const (
	EnvMongoURI      = "PUBNET_MONGO_URI"
	EnvMongoUser     = "PUBNET_MONGO_USER"
	EnvMongoPassword = "PUBNET_MONGO_PASSWORD"
	EnvMongoHost     = "PUBNET_MONGO_HOST"
)

// ErrMongoNotConfigured is returned when no usable Mongo credentials are
// present in the environment.
var ErrMongoNotConfigured = errors.New("mongo credentials not configured")

// MongoURI resolves the Mongo connection string from the environment,
// loading a .env file from the current directory first if one exists.
// Either PUBNET_MONGO_URI is set directly, or user, password and host are
// combined into an SRV URI. A partial credential set is an error rather
// than a guessed connection.
func MongoURI() (string, error) {
	_ = godotenv.Load()

	if uri := os.Getenv(EnvMongoURI); uri != "" {
		return uri, nil
	}

	user := os.Getenv(EnvMongoUser)
	password := os.Getenv(EnvMongoPassword)
	host := os.Getenv(EnvMongoHost)
	if user == "" && password == "" && host == "" {
		return "", ErrMongoNotConfigured
	}
	if user == "" || password == "" || host == "" {
		return "", fmt.Errorf("%w: %s, %s and %s must all be set",
			ErrMongoNotConfigured, EnvMongoUser, EnvMongoPassword, EnvMongoHost)
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/", user, password, host), nil
}
