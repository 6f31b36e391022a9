package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	Port      int
	StaticDir string
	BestOf    int
	Log       Log
}

type Log struct {
	File       string // empty means stderr, no rotation
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	Level      string
}

// Load reads settings from the environment, with an optional .env file for
// local development. All keys are prefixed SLIME_ (SLIME_PORT, SLIME_BEST_OF,
// SLIME_STATIC_DIR, SLIME_LOG_*).
func Load() Config {
	_ = godotenv.Load() // missing .env is fine

	v := viper.New()
	v.SetEnvPrefix("slime")
	v.AutomaticEnv()

	v.SetDefault("port", 8080)
	v.SetDefault("static_dir", "./public")
	v.SetDefault("best_of", 3)
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size", 50)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age", 14)
	v.SetDefault("log_compress", true)
	v.SetDefault("log_level", "info")

	return Config{
		Port:      cast.ToInt(v.Get("port")),
		StaticDir: cast.ToString(v.Get("static_dir")),
		BestOf:    cast.ToInt(v.Get("best_of")),
		Log: Log{
			File:       cast.ToString(v.Get("log_file")),
			MaxSizeMB:  cast.ToInt(v.Get("log_max_size")),
			MaxBackups: cast.ToInt(v.Get("log_max_backups")),
			MaxAgeDays: cast.ToInt(v.Get("log_max_age")),
			Compress:   cast.ToBool(v.Get("log_compress")),
			Level:      cast.ToString(v.Get("log_level")),
		},
	}
}
