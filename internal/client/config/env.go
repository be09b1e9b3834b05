package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "AIVANTU_"

// envFile is loaded before reading the environment. Variables already set
// in the process environment win over the file.
var envFile = ".env"

// parseEnv overlays cfg with AIVANTU_* variables. Invalid durations panic,
// like malformed flags.
func parseEnv(cfg *Config) {
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	strs := map[string]*string{
		"SERVER_BASE_URL":  &cfg.ServerBaseURL,
		"USER_EMAIL":       &cfg.UserEmail,
		"LANG":             &cfg.Lang,
		"DATABASE_PATH":    &cfg.DatabasePath,
		"DOWNLOAD_DIR":     &cfg.DownloadDir,
		"LOG_LEVEL":        &cfg.LogLevel,
		"CURRENCY":         &cfg.Currency,
		"S3_BUCKET":        &cfg.S3Bucket,
		"S3_REGION":        &cfg.S3Region,
		"S3_BASE_ENDPOINT": &cfg.S3BaseEndpoint,
		"S3_ACCESS_KEY":    &cfg.S3AccessKey,
		"S3_SECRET_KEY":    &cfg.S3SecretKey,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			*dst = v
		}
	}

	durs := map[string]*time.Duration{
		"ONLINE_CHECK_INTERVAL": &cfg.OnlineCheckInterval,
		"REQUEST_TIMEOUT":       &cfg.RequestTimeout,
	}
	for name, dst := range durs {
		v, ok := os.LookupEnv(envPrefix + name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		*dst = d
	}
}
