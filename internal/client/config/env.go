package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/packmate/internal/flagx"
)

const defaultEnvFile = ".env"

// Environment variables recognised by parseEnv.
const (
	EnvAPIURL    = "PACKMATE_API_URL"
	EnvDBPath    = "PACKMATE_DB_PATH"
	EnvLogLevel  = "PACKMATE_LOG_LEVEL"
	EnvLogFormat = "PACKMATE_LOG_FORMAT"
)

// parseEnv overlays cfg with values from a dotenv file and the process
// environment. The file is taken from -env, or .env in the working
// directory when that exists. Process variables win over the file, the same
// way godotenv.Load never overrides what is already set.
func parseEnv(cfg *Config, args []string) error {
	path := flagx.EnvFileFlag(args)
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	fileVals, err := godotenv.Read(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		fileVals = map[string]string{}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fileVals[key]
	}

	for key, dst := range map[string]*string{
		EnvAPIURL:    &cfg.APIBaseURL,
		EnvDBPath:    &cfg.DBPath,
		EnvLogLevel:  &cfg.LogLevel,
		EnvLogFormat: &cfg.LogFormat,
	} {
		if v := lookup(key); v != "" {
			*dst = v
		}
	}
	return nil
}
