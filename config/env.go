package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/cityroute/logger"
)

// Environment variable names.
const (
	EnvConfigFile  = "CITYROUTE_CONFIG"
	EnvVertices    = "CITYROUTE_VERTICES"
	EnvDistances   = "CITYROUTE_DISTANCES"
	EnvLogLevel    = "CITYROUTE_LOG_LEVEL"
	EnvRenderTitle = "CITYROUTE_RENDER_TITLE"

	EnvClosedRoadWeight = "CITYROUTE_CLOSED_ROAD_WEIGHT"
	EnvMaxDistance      = "CITYROUTE_MAX_DISTANCE"
)

// LoadEnv reads KEY=VALUE pairs from the given dotenv files (".env" when
// none are named) into the process environment. Variables that are already
// set keep their value. A missing file is not an error.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		logger.Debug("No .env file found, using system environment variables")
	}
}

// GetEnvString returns the value of key, or defaultValue when it is unset.
func GetEnvString(key string, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	return value
}

// GetEnvInt64 returns key parsed as a base-10 integer, or defaultValue when
// it is unset or empty.
func GetEnvInt64(key string, defaultValue int64) (int64, error) {
	value := GetEnvString(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("%s=%q is not an integer", key, value)
	}

	return n, nil
}
