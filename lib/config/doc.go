// Package config provides configuration management for the go-casc tool.
//
// Values are resolved by viper in this order: command line flags bound by
// the CLI, GOCASC_* environment variables (dots become underscores, so
// decrypt.workers is GOCASC_DECRYPT_WORKERS), the yaml config file, and the
// defaults from Defaults().
//
// The config file is read from $HOME/.go-casc/config.yaml unless a path is
// given with --config. A missing default file is not an error.
package config
