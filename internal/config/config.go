package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/ftracker/internal/report"
	"github.com/garrettladley/ftracker/internal/xslog"
)

type Config struct {
	LogLevel xslog.Level   `env:"LOG_LEVEL" envDefault:"info"`
	Format   report.Format `env:"FTRACKER_FORMAT" envDefault:"text"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
