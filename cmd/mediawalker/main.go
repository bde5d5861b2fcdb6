package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"runtime"
	"strings"
	"syscall"

	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	"github.com/kontza/mediawalker/config"
	"github.com/kontza/mediawalker/logging"
	"github.com/kontza/mediawalker/profiler"

	_ "github.com/kontza/mediawalker/cmd/mediawalker/subcommands/backends"
	_ "github.com/kontza/mediawalker/cmd/mediawalker/subcommands/classify"
	_ "github.com/kontza/mediawalker/cmd/mediawalker/subcommands/config"
	_ "github.com/kontza/mediawalker/cmd/mediawalker/subcommands/help"
	_ "github.com/kontza/mediawalker/cmd/mediawalker/subcommands/stats"
	_ "github.com/kontza/mediawalker/cmd/mediawalker/subcommands/version"
	_ "github.com/kontza/mediawalker/cmd/mediawalker/subcommands/walk"
)

func main() {
	os.Exit(entryPoint(os.Args[1:]))
}

func entryPoint(args []string) int {
	var opt_config string
	var opt_info bool
	var opt_trace string
	var opt_profile bool
	var opt_nocolor bool
	var opt_classifier string

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}

	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: could not get current directory: %s\n", flag.CommandLine.Name(), err)
		return 1
	}

	homeDir, _ := os.UserHomeDir()
	username := "unknown"
	if pwUser, err := user.Current(); err == nil {
		username = pwUser.Username
		if homeDir == "" {
			homeDir = pwUser.HomeDir
		}
	}

	flags := flag.NewFlagSet("mediawalker", flag.ContinueOnError)
	flags.StringVar(&opt_config, "config", config.DefaultPath(homeDir), "configuration file")
	flags.BoolVar(&opt_info, "info", false, "enable info output")
	flags.StringVar(&opt_trace, "trace", "", "display trace logs for subsystems (comma separated, or all)")
	flags.BoolVar(&opt_profile, "profile", false, "display profiling logs")
	flags.BoolVar(&opt_nocolor, "no-color", false, "disable colored output")
	flags.StringVar(&opt_classifier, "classifier", "", "classifier backend, overrides the configuration")
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: mediawalker [options] <command> [arguments]\n\noptions:\n")
		flags.PrintDefaults()
		fmt.Fprintf(flags.Output(), "\ncommands: %s\n", strings.Join(subcommands.List(), ", "))
	}
	if err := flags.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.LoadConfig(opt_config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mediawalker: could not load configuration: %s\n", err)
		return 1
	}
	if opt_classifier != "" {
		cfg.Classifier = opt_classifier
	}
	if opt_nocolor {
		cfg.Color = false
	}

	logger := logging.NewLogger(os.Stdout, os.Stderr)
	if opt_info {
		logger.EnableInfo()
	}
	if opt_trace != "" {
		logger.EnableTrace(opt_trace)
	}
	if opt_profile {
		logger.EnableProfiling()
	}

	ctx := appcontext.NewAppContext(context.Background())
	defer ctx.Close()

	ctx.SetLogger(logger)
	ctx.SetConfig(cfg)
	ctx.SetConfigPath(opt_config)
	ctx.SetCWD(cwd)
	ctx.SetHostname(strings.ToLower(hostname))
	ctx.SetUsername(username)
	ctx.SetHomeDir(homeDir)
	ctx.SetNumCPU(runtime.NumCPU())
	ctx.SetOperatingSystem(runtime.GOOS)
	ctx.SetArchitecture(runtime.GOARCH)
	ctx.SetProcessID(os.Getpid())
	ctx.SetCommandLine(strings.Join(os.Args, " "))

	if flags.NArg() == 0 {
		flags.Usage()
		return 1
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalChan)
	go func() {
		select {
		case <-signalChan:
			logger.Warn("interrupted, stopping")
			ctx.Cancel()
		case <-ctx.Done():
		}
	}()

	status, err := subcommands.Execute(ctx, flags.Arg(0), flags.Args()[1:])
	if err != nil {
		logger.Error("%s", err)
	}

	if opt_profile {
		profiler.Display(logger)
	}
	return status
}
