package classify

import (
	"flag"

	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	"github.com/kontza/mediawalker/cmd/mediawalker/utils"
	"github.com/kontza/mediawalker/report"
	"github.com/kontza/mediawalker/walker"
)

func init() {
	subcommands.Register("classify", cmd_classify)
}

func cmd_classify(ctx *appcontext.AppContext, args []string) int {
	var opt_format string

	config := ctx.GetConfig()
	logger := ctx.GetLogger()

	flags := flag.NewFlagSet("classify", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr())
	flags.StringVar(&opt_format, "format", config.Format, "output format (text, json, msgpack)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() == 0 {
		logger.Error("classify: at least one file is required")
		return 1
	}

	enc, err := report.NewEncoder(opt_format, ctx.Stdout(), &report.Options{Color: config.Color})
	if err != nil {
		logger.Error("%s", err)
		return 1
	}

	cf, err := utils.NewClassifier(ctx)
	if err != nil {
		logger.Error("%s", err)
		return 1
	}
	defer cf.Close()

	status := 0
	for _, pathname := range flags.Args() {
		result := walker.NewResult(pathname, cf.Classify(pathname))
		if result.Status == walker.StatusFailed {
			status = 1
		}
		if err := enc.Encode(result); err != nil {
			logger.Error("%s", err)
			return 1
		}
	}
	if err := enc.Close(); err != nil {
		logger.Error("%s", err)
		return 1
	}
	return status
}
