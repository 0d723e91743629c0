package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/questions/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// envPrefix namespaces environment overrides (QUESTIONS_LOG_LEVEL, ...).
	envPrefix = "QUESTIONS"

	cfgKeyBackend  = "backend"
	cfgKeyDataDir  = "data_dir"
	cfgKeyDBFile   = "db_file"
	cfgKeyLogLevel = "log_level"

	defaultLogLevel = "warn"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# questions CLI configuration

# Backend selection
backend: sqlite

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Database file inside the data directory
db_file: questions.db

# Log level: debug, info, warn, error
log_level: warn
`

// settings are the values read from config.yaml.
type settings struct {
	Backend  string
	DataDir  string
	DBFile   string
	LogLevel string
}

// loadSettings reads config.yaml from configDir using Viper, creating the
// directory and a default file on first run. A missing or empty config file
// yields defaults.
func loadSettings(configDir string) (settings, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return settings{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return settings{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendSQLite)
	v.SetDefault(cfgKeyDBFile, types.DefaultDBFile)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	// data_dir is not bound here; paths.ResolveDataDir reads
	// QUESTIONS_DATA_DIR after config.yaml.
	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyBackend, cfgKeyDBFile, cfgKeyLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return settings{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return settings{}, fmt.Errorf("read config: %w", err)
		}
	}

	return settings{
		Backend:  v.GetString(cfgKeyBackend),
		DataDir:  v.GetString(cfgKeyDataDir),
		DBFile:   v.GetString(cfgKeyDBFile),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
