package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/go-i2p/go-casc/lib/util"
	"github.com/go-i2p/go-casc/lib/util/logger"
	"github.com/samber/oops"
	"github.com/spf13/viper"
)

var (
	CfgFile string
	log     = logger.GetGoCascLogger()
)

const (
	GOCASC_BASE_DIR = ".go-casc"
	EnvPrefix       = "GOCASC"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resolved configuration.
type Config struct {
	Decrypt DecryptConfig `yaml:"decrypt"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

type DecryptConfig struct {
	Workers    int    `yaml:"workers"`
	StartIndex uint32 `yaml:"start_index"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Suffix string `yaml:"suffix"`
	Force  bool   `yaml:"force"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// InitConfig sets defaults, wires the environment and reads the config file.
func InitConfig() error {
	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath(BuildCascDirPath())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return handleConfigFile()
}

func setDefaults() {
	d := Defaults()

	viper.SetDefault("decrypt.workers", d.Decrypt.Workers)
	viper.SetDefault("decrypt.start_index", d.Decrypt.StartIndex)

	viper.SetDefault("output.dir", d.Output.Dir)
	viper.SetDefault("output.suffix", d.Output.Suffix)
	viper.SetDefault("output.force", d.Output.Force)

	viper.SetDefault("log.level", d.Log.Level)
}

func handleConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && CfgFile == "" {
			log.Debug("No config file found, using defaults")
			return nil
		}
		return oops.Wrapf(err, "reading config file")
	}
	log.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
	return nil
}

// CurrentConfig builds a Config from the current viper settings.
func CurrentConfig() *Config {
	return &Config{
		Decrypt: DecryptConfig{
			Workers:    viper.GetInt("decrypt.workers"),
			StartIndex: viper.GetUint32("decrypt.start_index"),
		},
		Output: OutputConfig{
			Dir:    viper.GetString("output.dir"),
			Suffix: viper.GetString("output.suffix"),
			Force:  viper.GetBool("output.force"),
		},
		Log: LogConfig{
			Level: viper.GetString("log.level"),
		},
	}
}

// Validate rejects settings that would make the CLI misbehave.
func (c *Config) Validate() error {
	if c.Decrypt.Workers < 0 {
		return oops.Wrapf(ErrInvalidConfig, "decrypt.workers must not be negative, got %d", c.Decrypt.Workers)
	}
	if c.Output.Dir == "" && c.Output.Suffix == "" {
		return oops.Wrapf(ErrInvalidConfig, "output.suffix must be set when output.dir is empty")
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return oops.Wrapf(ErrInvalidConfig, "unknown log.level %q", c.Log.Level)
	}
	return nil
}

// OutputPath returns where the result for input should be written.
func (c *Config) OutputPath(input string) string {
	dir := c.Output.Dir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, filepath.Base(input)+c.Output.Suffix)
}

func BuildCascDirPath() string {
	return filepath.Join(util.UserHome(), GOCASC_BASE_DIR)
}
