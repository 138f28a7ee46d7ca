// Package config wires viper configuration to service construction. All
// policy constants (nest overlap threshold, history capacity, default
// offsets) live here as configurable defaults, never as magic numbers in
// the core packages.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/golker16/pizarra/pkg/assets"
	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/persist"
	"github.com/golker16/pizarra/pkg/projects"
	"github.com/golker16/pizarra/pkg/search"
	"github.com/golker16/pizarra/pkg/service"
	"github.com/golker16/pizarra/pkg/subtree"
)

var cfgFile string

// InitConfig loads the config file and environment overrides.
func InitConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, ".config", "pizarra")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("PIZARRA")

	viper.SetDefault("data_dir", filepath.Join(os.Getenv("HOME"), ".local", "share", "pizarra"))
	viper.SetDefault("nest_threshold", 0.35)
	viper.SetDefault("history_capacity", 12)
	viper.SetDefault("paste_pos", []float64{60, 60})
	viper.SetDefault("nest_pos", []float64{40, 40})

	_ = viper.ReadInConfig()
}

// NewLogger builds the shared logger: stderr, quiet unless something is
// wrong.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// DataDir returns the configured data directory.
func DataDir() string {
	return viper.GetString("data_dir")
}

// ProjectPath returns the file of the active project. A project selected
// through the registry wins; otherwise the shared default file is used.
func ProjectPath() string {
	fallback := filepath.Join(DataDir(), "last.json")

	reg, err := projects.NewRegistry(DataDir())
	if err != nil {
		return fallback
	}
	defer reg.Close()

	if cur, err := reg.Current(); err == nil && cur != nil {
		return cur.Path
	}
	return fallback
}

// SessionPath returns the navigation session file paired with a project
// file, so switching projects never mixes histories.
func SessionPath(projectPath string) string {
	if filepath.Base(projectPath) == "last.json" {
		return filepath.Join(DataDir(), "session.json")
	}
	return strings.TrimSuffix(projectPath, ".json") + ".session.json"
}

// ClipFallbackPath is where clips go when no system clipboard is
// available.
func ClipFallbackPath() string {
	return filepath.Join(DataDir(), "clip.json")
}

// Policy builds the subtree policy from configuration.
func Policy() subtree.Policy {
	policy := subtree.DefaultPolicy()
	if t := viper.GetFloat64("nest_threshold"); t > 0 && t <= 1 {
		policy.NestThreshold = t
	}
	if f := floatPair("paste_pos"); f != nil {
		policy.PastePos = *f
	}
	if f := floatPair("nest_pos"); f != nil {
		policy.NestPos = *f
	}
	return policy
}

func floatPair(key string) *[2]float64 {
	switch raw := viper.Get(key).(type) {
	case []float64:
		if len(raw) == 2 {
			return &[2]float64{raw[0], raw[1]}
		}
	case []interface{}:
		if len(raw) != 2 {
			return nil
		}
		var vals [2]float64
		for i, x := range raw {
			switch f := x.(type) {
			case float64:
				vals[i] = f
			case int:
				vals[i] = float64(f)
			default:
				return nil
			}
		}
		return &vals
	}
	return nil
}

// InitService loads (or creates) the project and assembles the service.
// A corrupt project file is reported and replaced with a fresh empty
// project; the broken file stays on disk until the next save overwrites
// it.
func InitService(log *logrus.Logger) (*service.Service, error) {
	dataDir := DataDir()
	projectPath := ProjectPath()

	project, err := persist.Load(projectPath)
	if err != nil {
		if !errors.Is(err, models.ErrCorruptState) {
			return nil, err
		}
		log.WithError(err).Warn("project file is corrupt, starting from an empty project")
		project = models.NewProject()
	}

	store, err := assets.New(filepath.Join(dataDir, "assets"))
	if err != nil {
		return nil, err
	}

	index, err := search.NewIndex(filepath.Join(dataDir, "index.db"))
	if err != nil {
		log.WithError(err).Warn("search index unavailable")
		index = nil
	}

	capacity := viper.GetInt("history_capacity")
	sessionPath := SessionPath(projectPath)
	hist := service.LoadSession(sessionPath, project, capacity)

	return service.New(service.Options{
		Project:     project,
		Assets:      store,
		History:     hist,
		Index:       index,
		SessionPath: sessionPath,
		Policy:      Policy(),
		Log:         log,
		Save: func(p *models.Project) error {
			return persist.Save(p, projectPath)
		},
	})
}

// AddGlobalFlags registers the persistent flags shared by every command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/pizarra/config.yaml)")
}
