package store

import (
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where data lives and how the calendar is laid out.
type Config interface {
	BasePath() string
	Season() []time.Month
	Debug() bool
}

// DefaultSeason is the pollen season shown for the current year: April to
// August.
var DefaultSeason = []int{4, 5, 6, 7, 8}

// LoadConfig reads .allergy config files and ALLERGY_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.allergy.db")
	viper.SetDefault("season", DefaultSeason)
	viper.SetDefault("debug", false)
	viper.SetConfigName(".allergy") // .yaml is implicit
	viper.SetEnvPrefix("ALLERGY")
	viper.AutomaticEnv()

	if override := os.Getenv("ALLERGY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:        path,
		SeasonMonth: viper.GetIntSlice("season"),
		DebugMode:   viper.GetBool("debug"),
	}, nil
}

type fileConfig struct {
	Path        string `json:"path"`
	SeasonMonth []int  `json:"season"`
	DebugMode   bool   `json:"debug"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Season() []time.Month {
	return toMonths(f.SeasonMonth)
}

func (f *fileConfig) Debug() bool {
	return f.DebugMode
}

// StaticConfig is a fixed Config, used by tests and callers that already know
// the base path.
type StaticConfig struct {
	Path    string
	Months  []int
	Verbose bool
}

func (s StaticConfig) BasePath() string {
	return s.Path
}

func (s StaticConfig) Season() []time.Month {
	if len(s.Months) == 0 {
		return toMonths(DefaultSeason)
	}
	return toMonths(s.Months)
}

func (s StaticConfig) Debug() bool {
	return s.Verbose
}

func toMonths(in []int) []time.Month {
	out := make([]time.Month, 0, len(in))
	for _, m := range in {
		if m < 1 || m > 12 {
			continue
		}
		out = append(out, time.Month(m))
	}
	return out
}
