package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mrlokans/bookscollector/internal/collector"
)

type (
	Config struct {
		Collector
		Session
	}

	Collector struct {
		Genres              []string
		AgeRestrictedGenres []string
		MaxTitleLength      int
	}
	Session struct {
		Prompt string
	}
)

// NewConfig reads configuration from the environment and, when
// COLLECTOR_CONFIG_FILE is set, from that file. Environment variables
// take precedence over the file.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.AllowEmptyEnv(true) // COLLECTOR_AGE_RESTRICTED_GENRES="" means no restricted genres
	v.SetDefault("collector_max_title_length", collector.DefaultMaxTitleLength)
	v.SetDefault("collector_prompt", DefaultPrompt)

	if path := v.GetString("COLLECTOR_CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	genres, ageRestricted := genreLists(v)

	return &Config{
		Collector: Collector{
			Genres:              genres,
			AgeRestrictedGenres: ageRestricted,
			MaxTitleLength:      v.GetInt("COLLECTOR_MAX_TITLE_LENGTH"),
		},
		Session: Session{
			Prompt: v.GetString("COLLECTOR_PROMPT"),
		},
	}, nil
}

// genreLists returns the registry and its age-restricted subset. The
// default subset only applies to the default registry: a custom registry
// without COLLECTOR_AGE_RESTRICTED_GENRES has no restricted genres.
func genreLists(v *viper.Viper) ([]string, []string) {
	genres := strings.Split(DefaultGenres, ",")
	ageRestricted := strings.Split(DefaultAgeRestrictedGenres, ",")

	if v.IsSet("collector_genres") {
		genres = stringList(v, "collector_genres")
		ageRestricted = nil
	}
	if v.IsSet("collector_age_restricted_genres") {
		ageRestricted = stringList(v, "collector_age_restricted_genres")
	}
	return genres, ageRestricted
}

// stringList accepts either a comma-separated string (environment) or a
// list (config file). Genre names may contain spaces, so the string form
// is not split on whitespace.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// CollectorOptions validates the genre registry and returns the options
// for a new collector.
func (c *Config) CollectorOptions() (collector.Options, error) {
	genres, err := collector.NewGenres(c.Collector.Genres, c.Collector.AgeRestrictedGenres)
	if err != nil {
		return collector.Options{}, fmt.Errorf("invalid genre configuration: %w", err)
	}
	if c.MaxTitleLength <= 0 {
		return collector.Options{}, fmt.Errorf("invalid max title length: %d", c.MaxTitleLength)
	}

	return collector.Options{
		Genres:         genres,
		MaxTitleLength: c.MaxTitleLength,
	}, nil
}
