package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	// Config holds the application's runtime configuration.
	Config struct {
		Debug    bool
		TestMode bool
		AppName  string
		Env      string // DEV (local; default), TEST, QA, PROD
		Build    string

		Server   ServerConfig
		Upstream UpstreamConfig
		Session  SessionConfig

		RollbarToken string
	}

	ServerConfig struct {
		Host            string
		Port            int
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
	}

	// UpstreamConfig points at the thesis-management REST API that owns
	// all business logic and persistence.
	UpstreamConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	SessionConfig struct {
		CookieName string
		MaxAge     time.Duration
		Secure     bool
	}
)

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// NewConfig loads the configuration from defaults, an optional per-env .env
// file and environment variables (prefixed with the current ENV).
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "University Portal")
	conf.SetDefault("build", "dev")
	conf.SetDefault("serverHost", "")
	conf.SetDefault("serverPort", 3000)
	conf.SetDefault("serverDebugHost", "localhost:4000")
	conf.SetDefault("serverReadTimeout", 5*time.Second)
	conf.SetDefault("serverWriteTimeout", 10*time.Second)
	conf.SetDefault("serverShutdownTimeout", 5*time.Second)
	conf.SetDefault("upstreamBaseUrl", "http://localhost:8080")
	conf.SetDefault("upstreamTimeout", 30*time.Second)
	conf.SetDefault("sessionCookieName", "portal_token")
	conf.SetDefault("sessionMaxAge", 7*24*time.Hour)
	conf.SetDefault("sessionSecure", false)
	conf.SetDefault("rollbarToken", "")

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Debug:    conf.GetBool("debug"),
		TestMode: conf.GetBool("testMode"),
		AppName:  conf.GetString("appName"),
		Env:      env,
		Build:    conf.GetString("build"),
		Server: ServerConfig{
			Host:            conf.GetString("serverHost"),
			Port:            conf.GetInt("serverPort"),
			DebugHost:       conf.GetString("serverDebugHost"),
			ReadTimeout:     conf.GetDuration("serverReadTimeout"),
			WriteTimeout:    conf.GetDuration("serverWriteTimeout"),
			ShutdownTimeout: conf.GetDuration("serverShutdownTimeout"),
		},
		Upstream: UpstreamConfig{
			BaseURL: strings.TrimRight(conf.GetString("upstreamBaseUrl"), "/"),
			Timeout: conf.GetDuration("upstreamTimeout"),
		},
		Session: SessionConfig{
			CookieName: conf.GetString("sessionCookieName"),
			MaxAge:     conf.GetDuration("sessionMaxAge"),
			Secure:     conf.GetBool("sessionSecure"),
		},
		RollbarToken: conf.GetString("rollbarToken"),
	}
}
