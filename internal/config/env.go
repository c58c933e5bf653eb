package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file.
// It uses the ENV_PATH environment variable to determine the path to the .env
// file, falling back to defaultPath. A missing file is not an error; variables
// already set in the environment are not overridden.
func LoadDotEnv(defaultPath string) error {
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = defaultPath
	}

	err := godotenv.Load(envPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Skipping .env", "path", envPath)
			return nil
		}
		slog.Error("Failed to load environment variables", "path", envPath, "error", err)
		return err
	}
	slog.Debug("Loaded .env", "path", envPath)
	return nil
}
