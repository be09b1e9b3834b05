package config

import (
	"time"

	"github.com/aivantu/aivantu/internal/common"
)

// Config holds runtime settings for the AiVantu CLI.
//
// RequestTimeout bounds a whole HTTP exchange. Rendering happens inside the
// /generate_video request, so it is generous by default.
type Config struct {
	ServerBaseURL       string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	UserEmail           string
	Lang                string
	DatabasePath        string
	DownloadDir         string
	LogLevel            string
	Currency            string

	// Render archive. An empty S3Bucket disables it.
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 10 * time.Minute
	c.UserEmail = common.DefaultUserEmail
	c.Lang = "hi"
	c.DatabasePath = "aivantu.db"
	c.DownloadDir = "downloads"
	c.LogLevel = "info"
	c.Currency = "INR"
	c.S3Region = "us-east-1"
}

// ArchiveEnabled reports whether renders can be copied to object storage.
func (c *Config) ArchiveEnabled() bool { return c.S3Bucket != "" }

// LoadConfig applies defaults, then JSON, environment and flags, each
// overriding the previous source.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
