package stats

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	"github.com/kontza/mediawalker/cmd/mediawalker/utils"
	"github.com/kontza/mediawalker/progress"
	"github.com/kontza/mediawalker/report"
	"github.com/kontza/mediawalker/walker"
	"golang.org/x/term"
)

func init() {
	subcommands.Register("stats", cmd_stats)
}

func cmd_stats(ctx *appcontext.AppContext, args []string) int {
	var opt_progress bool

	config := ctx.GetConfig()
	logger := ctx.GetLogger()

	flags := flag.NewFlagSet("stats", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr())
	flags.BoolVar(&opt_progress, "progress", config.Progress, "display a spinner on terminals")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	w, err := utils.NewWalker(ctx, config.BufferSize)
	if err != nil {
		logger.Error("%s", err)
		return 1
	}

	roots := flags.Args()
	if len(roots) == 0 {
		roots = []string{ctx.GetCWD()}
	}

	summary := report.NewSummary()
	done := utils.EventsProcessor(ctx)

	status := 0
	for _, root := range roots {
		if err := collect(ctx, w, root, summary, opt_progress); err != nil {
			logger.Error("%s: %s", root, err)
			status = 1
			break
		}
	}
	ctx.Events().Close()
	<-done

	if _, err := summary.WriteTo(ctx.Stdout()); err != nil {
		logger.Error("%s", err)
		return 1
	}
	fmt.Fprintf(ctx.Stdout(), "%s of %s files are media\n",
		humanize.Comma(int64(summary.Matched())), humanize.Comma(int64(summary.Files)))

	if ctx.Err() != nil {
		logger.Warn("interrupted")
		return 1
	}
	return status
}

func isTerminal(ctx *appcontext.AppContext) bool {
	fp, ok := ctx.Stderr().(*os.File)
	return ok && term.IsTerminal(int(fp.Fd()))
}

func collect(ctx *appcontext.AppContext, w *walker.Walker, root string, summary *report.Summary, showProgress bool) error {
	results, err := w.Start(ctx, root)
	if err != nil {
		return err
	}

	var bar *progress.Progress
	if showProgress && isTerminal(ctx) {
		bar = progress.NewProgress(ctx.Stderr(), "stats", root)
		defer bar.Close()
	}

	for result := range results {
		var size int64
		if result.Status != walker.StatusFailed {
			if info, err := os.Stat(result.Pathname); err == nil {
				size = info.Size()
			}
		}
		summary.Add(result, size)
		if bar != nil {
			bar.Add(1)
		}
	}
	return nil
}
