package config

/*
 * Licensed under LGPL-3.0.
 *
 * You can get a copy of the LGPL-3.0 License at
 *
 * https://www.gnu.org/licenses/lgpl-3.0.en.html
 *
 * @wcgcyx - https://github.com/wcgcyx
 */

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ethereum/go-ethereum/common"
	logging "github.com/ipfs/go-log"
	"github.com/spf13/viper"
	"github.com/wcgcyx/l2core/forks"
)

// Logger
var log = logging.Logger("config")

const (
	defaultConfigPath = ".l2core"
)

type Config struct {
	// Global
	GlobalLoggingLevel string        `mapstructure:"LOGGING"`    // Log Level: FATAL, PANIC, ERROR, WARN, INFO, DEBUG.
	Path               string        `mapstructure:"DATA_DIR"`   // Main datastore path.
	DSTimeout          time.Duration `mapstructure:"DS_TIMEOUT"` // Datastore timeout.

	// Engine
	Fork              string `mapstructure:"FORK"`                // Active fork name.
	Beneficiary       string `mapstructure:"BENEFICIARY"`         // Fee vault address credited with transaction fees.
	BytecodeCacheSize int    `mapstructure:"BYTECODE_CACHE_SIZE"` // Size of the analyzed bytecode cache.

	// Hashing capabilities
	ProverCodeHash bool `mapstructure:"PROVER_CODE_HASH"` // Use the prover hash scheme as the primary code hash.
	CodeSizeCache  bool `mapstructure:"CODE_SIZE_CACHE"`  // Persist code length on account records.
}

// Default configs
var DefaultConfig Config = Config{
	GlobalLoggingLevel: "INFO",
	Path:               "$HOME/.l2core",
	DSTimeout:          5 * time.Second,
	Fork:               forks.Latest.String(),
	Beneficiary:        "0x5300000000000000000000000000000000000005",
	BytecodeCacheSize:  4096,
	ProverCodeHash:     true,
	CodeSizeCache:      true,
}

// NewConfig creates a new configuration.
//
// @output - configuration, error.
func NewConfig(configFile string) (Config, error) {
	// Try to load config file from $HOME/.l2core
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/" + defaultConfigPath)
	if configFile != "" {
		viper.SetConfigFile(configFile)
	}
	viper.AutomaticEnv()

	conf := Config{}

	// Parse global config
	conf.GlobalLoggingLevel = viper.GetString("LOGGING")
	if conf.GlobalLoggingLevel == "" {
		conf.GlobalLoggingLevel = DefaultConfig.GlobalLoggingLevel
	}
	logLevel, err := logging.LevelFromString(conf.GlobalLoggingLevel)
	if err != nil {
		return Config{}, err
	}
	logging.SetAllLoggers(logLevel)
	conf.Path = viper.GetString("DATA_DIR")
	if conf.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		conf.Path = filepath.Join(home, defaultConfigPath)
		log.Infof("DATA_DIR not defined, use default: %v", conf.Path)
	}
	conf.DSTimeout = viper.GetDuration("DS_TIMEOUT")
	if conf.DSTimeout <= 0 {
		conf.DSTimeout = DefaultConfig.DSTimeout
		log.Infof("Invalid DS_TIMEOUT found, use default: %v", conf.DSTimeout)
	}

	// Parse engine config
	conf.Fork = viper.GetString("FORK")
	if conf.Fork == "" {
		conf.Fork = DefaultConfig.Fork
		log.Infof("FORK not set, use default %v", conf.Fork)
	}
	_, err = forks.ParseFork(conf.Fork)
	if err != nil {
		return Config{}, err
	}
	conf.Beneficiary = viper.GetString("BENEFICIARY")
	if conf.Beneficiary == "" {
		conf.Beneficiary = DefaultConfig.Beneficiary
		log.Infof("BENEFICIARY not set, use default %v", conf.Beneficiary)
	}
	if !common.IsHexAddress(conf.Beneficiary) {
		return Config{}, fmt.Errorf("invalid BENEFICIARY address %v", conf.Beneficiary)
	}
	conf.BytecodeCacheSize = viper.GetInt("BYTECODE_CACHE_SIZE")
	if conf.BytecodeCacheSize <= 0 {
		conf.BytecodeCacheSize = DefaultConfig.BytecodeCacheSize
		log.Infof("BYTECODE_CACHE_SIZE not set, use default %v", conf.BytecodeCacheSize)
	}

	// Parse capability config
	if viper.IsSet("PROVER_CODE_HASH") {
		conf.ProverCodeHash = viper.GetBool("PROVER_CODE_HASH")
	} else {
		conf.ProverCodeHash = DefaultConfig.ProverCodeHash
	}
	if viper.IsSet("CODE_SIZE_CACHE") {
		conf.CodeSizeCache = viper.GetBool("CODE_SIZE_CACHE")
	} else {
		conf.CodeSizeCache = DefaultConfig.CodeSizeCache
	}

	return conf, nil
}
