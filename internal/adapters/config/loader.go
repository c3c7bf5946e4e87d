// Package config provides the settings loader for transfer.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/transfer/internal/core/domain"
	"go.trai.ch/transfer/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds transfer.yaml in cwd or one of its parents and merges it over the defaults.
// When no file exists the defaults are returned.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	configPath, found := findConfiguration(cwd)
	if !found {
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
		return domain.DefaultSettings(), nil
	}

	var file File
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	settings, err := l.toSettings(configPath, &file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	l.Logger.Debug("loaded settings from " + configPath)
	return settings, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) toSettings(configPath string, file *File) (*domain.Settings, error) {
	settings := domain.DefaultSettings()
	settings.Source = configPath
	base := filepath.Dir(configPath)

	if file.Engine.Home != "" {
		settings.Engine.Home = resolvePath(base, file.Engine.Home)
	}
	settings.Engine.Version = file.Engine.Version
	settings.Engine.Symbols = file.Engine.Symbols
	if file.Engine.CacheDetection != nil {
		settings.Engine.CacheDetection = *file.Engine.CacheDetection
	}

	if file.LocalRepository != "" {
		settings.LocalRepository = resolvePath(base, file.LocalRepository)
	}
	settings.Offline = file.Offline

	if file.Parallelism != nil {
		if *file.Parallelism < 1 {
			return nil, domain.Annotate(domain.ErrInvalidParallelism, "parallelism", *file.Parallelism)
		}
		settings.Parallelism = *file.Parallelism
	}

	if len(file.Repositories) > 0 {
		settings.RemoteRepositories = make([]domain.RemoteRepository, 0, len(file.Repositories))
		for i, repo := range file.Repositories {
			id := repo.ID
			if id == "" {
				id = fmt.Sprintf("repo-%d", i+1)
				l.Logger.Warn(fmt.Sprintf("repository %q has no id, using %q", repo.URL, id))
			}
			settings.RemoteRepositories = append(settings.RemoteRepositories, domain.RemoteRepository{
				ID:  id,
				URL: strings.TrimSuffix(repo.URL, "/"),
			})
		}
	}

	return settings, nil
}

// resolvePath expands a leading ~ and makes relative paths relative to base.
func resolvePath(base, p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(base, p)
	}
	return filepath.Clean(p)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
