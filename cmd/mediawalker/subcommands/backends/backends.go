package backends

import (
	"flag"
	"fmt"

	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/classifier"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	_ "github.com/kontza/mediawalker/cmd/mediawalker/utils"
	"github.com/kontza/mediawalker/importer"
)

func init() {
	subcommands.Register("backends", cmd_backends)
}

func cmd_backends(ctx *appcontext.AppContext, args []string) int {
	var opt_importers bool

	flags := flag.NewFlagSet("backends", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr())
	flags.BoolVar(&opt_importers, "importers", false, "list location schemes instead of classifiers")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if opt_importers {
		for _, name := range importer.Backends() {
			fmt.Fprintln(ctx.Stdout(), name)
		}
		return 0
	}

	current := ctx.GetConfig().Classifier
	for _, name := range classifier.Backends() {
		marker := " "
		if name == current {
			marker = "*"
		}
		fmt.Fprintf(ctx.Stdout(), "%s %s\n", marker, name)
	}
	return 0
}
