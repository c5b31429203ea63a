package scoring

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config is the versioned scoring and snapshot table. It is passed explicitly
// to every engine call; nothing in this package keeps a global copy.
type Config struct {
	Version string        `yaml:"version" json:"version" validate:"required"`
	Levels  []LevelConfig `yaml:"levels" json:"levels" validate:"required,min=1,dive"`
}

type LevelConfig struct {
	Level         string          `yaml:"level" json:"level" validate:"required"`
	TotalPassMark int             `yaml:"total_pass_mark" json:"total_pass_mark" validate:"gte=0"`
	Sections      []SectionConfig `yaml:"sections" json:"sections" validate:"required,min=1,dive"`
}

type SectionConfig struct {
	Type            string         `yaml:"type" json:"type" validate:"required"`
	ScaleMax        int            `yaml:"scale_max" json:"scale_max" validate:"gt=0"`
	PassMark        int            `yaml:"pass_mark" json:"pass_mark" validate:"gte=0"`
	GradeCutA       int            `yaml:"grade_cut_a" json:"grade_cut_a" validate:"gte=0"`
	GradeCutB       int            `yaml:"grade_cut_b" json:"grade_cut_b" validate:"gte=0"`
	DurationMinutes int            `yaml:"duration_minutes" json:"duration_minutes" validate:"gt=0"`
	Mondai          []MondaiConfig `yaml:"mondai" json:"mondai" validate:"required,min=1,dive"`
}

type MondaiConfig struct {
	Number    int     `yaml:"number" json:"number" validate:"gt=0"`
	Questions int     `yaml:"questions" json:"questions" validate:"gt=0"`
	Weight    float64 `yaml:"weight" json:"weight" validate:"gt=0"`
}

var configValidator = validator.New()

// Validate checks field ranges with struct tags, then the cross-field rules
// the tags cannot express.
func (c *Config) Validate() error {
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSectionConfig, err)
	}
	levels := make(map[string]bool, len(c.Levels))
	for _, lvl := range c.Levels {
		if levels[lvl.Level] {
			return fmt.Errorf("%w: duplicate level %q", ErrInvalidSectionConfig, lvl.Level)
		}
		levels[lvl.Level] = true

		sections := make(map[string]bool, len(lvl.Sections))
		for _, sec := range lvl.Sections {
			if sections[sec.Type] {
				return fmt.Errorf("%w: level %s: duplicate section %q", ErrInvalidSectionConfig, lvl.Level, sec.Type)
			}
			sections[sec.Type] = true

			if sec.GradeCutB > sec.GradeCutA {
				return fmt.Errorf("%w: level %s section %s: grade cut B (%d) above cut A (%d)",
					ErrInvalidSectionConfig, lvl.Level, sec.Type, sec.GradeCutB, sec.GradeCutA)
			}
			if sec.GradeCutA > sec.ScaleMax || sec.PassMark > sec.ScaleMax {
				return fmt.Errorf("%w: level %s section %s: cut points exceed scale max %d",
					ErrInvalidSectionConfig, lvl.Level, sec.Type, sec.ScaleMax)
			}
			numbers := make(map[int]bool, len(sec.Mondai))
			for _, m := range sec.Mondai {
				if numbers[m.Number] {
					return fmt.Errorf("%w: level %s section %s: duplicate mondai %d",
						ErrInvalidSectionConfig, lvl.Level, sec.Type, m.Number)
				}
				numbers[m.Number] = true
			}
		}
	}
	return nil
}

func (c *Config) Level(level string) (*LevelConfig, error) {
	for i := range c.Levels {
		if c.Levels[i].Level == level {
			return &c.Levels[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
}

func (c *Config) Section(level, section string) (*SectionConfig, error) {
	lvl, err := c.Level(level)
	if err != nil {
		return nil, err
	}
	return lvl.Section(section)
}

func (l *LevelConfig) Section(section string) (*SectionConfig, error) {
	for i := range l.Sections {
		if l.Sections[i].Type == section {
			return &l.Sections[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q at level %s", ErrUnknownSection, section, l.Level)
}

// SectionTypes returns the configured section order for the level.
func (l *LevelConfig) SectionTypes() []string {
	types := make([]string, len(l.Sections))
	for i, s := range l.Sections {
		types[i] = s.Type
	}
	return types
}

func (s *SectionConfig) FindMondai(number int) (*MondaiConfig, bool) {
	for i := range s.Mondai {
		if s.Mondai[i].Number == number {
			return &s.Mondai[i], true
		}
	}
	return nil, false
}
