package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/lshigami/nihongo-test/internal/scoring"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed exam.yaml
var defaultExamYAML []byte

// NewExamConfig loads the scoring table from EXAM_CONFIG_PATH, or the
// embedded default, and refuses to start on an invalid table.
func NewExamConfig(cfg *Config) (*scoring.Config, error) {
	raw := defaultExamYAML
	source := "embedded"
	if cfg.Exam.ConfigPath != "" {
		b, err := os.ReadFile(cfg.Exam.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("read exam config: %w", err)
		}
		raw = b
		source = cfg.Exam.ConfigPath
	}

	exam, err := ParseExamConfig(raw)
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", source).Str("version", exam.Version).Int("levels", len(exam.Levels)).Msg("Exam config loaded")
	return exam, nil
}

func ParseExamConfig(raw []byte) (*scoring.Config, error) {
	var exam scoring.Config
	if err := yaml.Unmarshal(raw, &exam); err != nil {
		return nil, fmt.Errorf("parse exam config: %w", err)
	}
	if err := exam.Validate(); err != nil {
		return nil, err
	}
	return &exam, nil
}
