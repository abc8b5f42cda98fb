package main

import (
	"fmt"
	"strings"

	"github.com/arkade-os/ledger-assets/internal/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

// EnvReplacer replaces `-` to `_`.
// This is used to map flag like `--my-param` to environment variables like `MY_PARAM`.
var envReplacer = strings.NewReplacer("-", "_")

func init() {
	viper.SetEnvPrefix("ASSETS")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(envReplacer)
}

// loadConfigFile reads the optional config file and uses its values for the global flags
// that were set neither on the command line nor in the environment.
func loadConfigFile(ctx *cli.Context) error {
	configFile := ctx.String(config.ConfigFile.Name)
	if configFile == "" {
		return nil
	}

	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %s", err)
	}

	for _, flag := range config.Flags {
		name := flag.Names()[0]
		if name == config.ConfigFile.Name || ctx.IsSet(name) || !viper.IsSet(name) {
			continue
		}
		if err := ctx.Set(name, viper.GetString(name)); err != nil {
			return fmt.Errorf("invalid %s in config file: %s", name, err)
		}
		log.Debugf("%s set from config file", name)
	}
	return nil
}
