package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PipelinePath string // hcl pipeline definitions
	DataPath     string // csv data file
	Target       string // target column name in the data file

	Describe bool
	Dot      bool

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		return nil, errors.New("PipelinePath is a required configuration field and cannot be empty")
	}
	if cfg.DataPath != "" && cfg.Target == "" {
		return nil, errors.New("Target is required when DataPath is set")
	}
	return &cfg, nil
}
