package version

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/classifier"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	"golang.org/x/mod/semver"
)

const VERSION = "v0.3.1"

func init() {
	subcommands.Register("version", cmd_version)
}

func cmd_version(ctx *appcontext.AppContext, args []string) int {
	var opt_verbose bool

	flags := flag.NewFlagSet("version", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr())
	flags.BoolVar(&opt_verbose, "verbose", false, "display build details")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if !semver.IsValid(VERSION) {
		panic("invalid version string: " + VERSION)
	}
	fmt.Fprintln(ctx.Stdout(), VERSION)

	if opt_verbose {
		fmt.Fprintf(ctx.Stdout(), "classifier: %s\n", classifier.VERSION)
		fmt.Fprintf(ctx.Stdout(), "go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return 0
}
