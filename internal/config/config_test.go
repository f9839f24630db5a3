package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookscollector/internal/collector"
)

// clearCollectorEnv unsets every COLLECTOR_* variable for the duration of the test.
func clearCollectorEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, value, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "COLLECTOR_") {
			t.Setenv(key, value)
			require.NoError(t, os.Unsetenv(key))
		}
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	clearCollectorEnv(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Фантастика", "Ужасы", "Детективы", "Мультфильмы", "Комедии"}, cfg.Collector.Genres)
	assert.Equal(t, []string{"Ужасы", "Детективы"}, cfg.AgeRestrictedGenres)
	assert.Equal(t, collector.DefaultMaxTitleLength, cfg.MaxTitleLength)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)

	opts, err := cfg.CollectorOptions()
	require.NoError(t, err)
	assert.Equal(t, collector.DefaultGenres().All(), opts.Genres.All())
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	clearCollectorEnv(t)
	t.Setenv("COLLECTOR_GENRES", "Научная фантастика, Поэзия ,Хоррор")
	t.Setenv("COLLECTOR_AGE_RESTRICTED_GENRES", "Хоррор")
	t.Setenv("COLLECTOR_MAX_TITLE_LENGTH", "60")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Научная фантастика", "Поэзия", "Хоррор"}, cfg.Collector.Genres)
	assert.Equal(t, []string{"Хоррор"}, cfg.AgeRestrictedGenres)
	assert.Equal(t, 60, cfg.MaxTitleLength)
}

func TestNewConfig_FromFile(t *testing.T) {
	clearCollectorEnv(t)
	path := filepath.Join(t.TempDir(), "collector.yaml")
	content := `collector_genres:
  - Poetry
  - Horror
collector_age_restricted_genres:
  - Horror
collector_prompt: "books> "
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("COLLECTOR_CONFIG_FILE", path)
	t.Setenv("COLLECTOR_MAX_TITLE_LENGTH", "10")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Poetry", "Horror"}, cfg.Collector.Genres)
	assert.Equal(t, []string{"Horror"}, cfg.AgeRestrictedGenres)
	assert.Equal(t, "books> ", cfg.Prompt)
	assert.Equal(t, 10, cfg.MaxTitleLength)
}

func TestNewConfig_CustomGenresWithoutRestricted(t *testing.T) {
	clearCollectorEnv(t)
	t.Setenv("COLLECTOR_GENRES", "Poetry,Drama")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Poetry", "Drama"}, cfg.Collector.Genres)
	assert.Empty(t, cfg.AgeRestrictedGenres)

	opts, err := cfg.CollectorOptions()
	require.NoError(t, err)
	assert.Equal(t, []string{"Poetry", "Drama"}, opts.Genres.All())
	assert.Empty(t, opts.Genres.AgeRestricted())
}

func TestNewConfig_EmptyRestrictedGenres(t *testing.T) {
	tests := []struct {
		name       string
		genres     string
		wantGenres []string
	}{
		{"custom registry", "Poetry,Drama", []string{"Poetry", "Drama"}},
		{"default registry", "", strings.Split(DefaultGenres, ",")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCollectorEnv(t)
			if tt.genres != "" {
				t.Setenv("COLLECTOR_GENRES", tt.genres)
			}
			t.Setenv("COLLECTOR_AGE_RESTRICTED_GENRES", "")

			cfg, err := NewConfig()
			require.NoError(t, err)

			assert.Equal(t, tt.wantGenres, cfg.Collector.Genres)
			assert.Empty(t, cfg.AgeRestrictedGenres)
			_, err = cfg.CollectorOptions()
			assert.NoError(t, err)
		})
	}
}

func TestNewConfig_CustomGenresFromFileWithoutRestricted(t *testing.T) {
	clearCollectorEnv(t)
	path := filepath.Join(t.TempDir(), "collector.yaml")
	require.NoError(t, os.WriteFile(path, []byte("collector_genres:\n  - Poetry\n"), 0644))
	t.Setenv("COLLECTOR_CONFIG_FILE", path)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, []string{"Poetry"}, cfg.Collector.Genres)
	assert.Empty(t, cfg.AgeRestrictedGenres)
}

func TestNewConfig_MissingFile(t *testing.T) {
	clearCollectorEnv(t)
	t.Setenv("COLLECTOR_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := NewConfig()
	assert.Error(t, err)
}

func TestCollectorOptions_Invalid(t *testing.T) {
	cfg := &Config{Collector: Collector{
		Genres:              []string{"Poetry"},
		AgeRestrictedGenres: []string{"Horror"},
		MaxTitleLength:      40,
	}}
	_, err := cfg.CollectorOptions()
	assert.ErrorIs(t, err, collector.ErrUnknownAgeRestrictedGenre)

	cfg.AgeRestrictedGenres = nil
	cfg.MaxTitleLength = 0
	_, err = cfg.CollectorOptions()
	assert.Error(t, err)
}
