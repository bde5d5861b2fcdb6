package config

import (
	"flag"
	"fmt"

	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	"github.com/kontza/mediawalker/config"
)

func init() {
	subcommands.Register("config", cmd_config)
}

func cmd_config(ctx *appcontext.AppContext, args []string) int {
	flags := flag.NewFlagSet("config", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr())
	if err := flags.Parse(args); err != nil {
		return 1
	}

	logger := ctx.GetLogger()
	cfg := ctx.GetConfig()

	switch flags.Arg(0) {
	case "":
		for _, key := range config.Keys() {
			value, _ := cfg.Get(key)
			fmt.Fprintf(ctx.Stdout(), "%s: %s\n", key, value)
		}
		return 0

	case "get":
		if flags.NArg() != 2 {
			logger.Error("usage: config get key")
			return 1
		}
		value, err := cfg.Get(flags.Arg(1))
		if err != nil {
			logger.Error("%s", err)
			return 1
		}
		fmt.Fprintln(ctx.Stdout(), value)
		return 0

	case "set":
		if flags.NArg() != 3 {
			logger.Error("usage: config set key value")
			return 1
		}
		if err := cfg.Set(flags.Arg(1), flags.Arg(2)); err != nil {
			logger.Error("%s", err)
			return 1
		}
		if err := cfg.Save(ctx.GetConfigPath()); err != nil {
			logger.Error("could not save configuration: %s", err)
			return 1
		}
		return 0

	default:
		logger.Error("unknown config action: %s", flags.Arg(0))
		return 1
	}
}
