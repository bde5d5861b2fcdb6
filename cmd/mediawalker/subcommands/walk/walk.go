package walk

import (
	"context"
	"flag"

	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	"github.com/kontza/mediawalker/cmd/mediawalker/utils"
	"github.com/kontza/mediawalker/report"
	"github.com/kontza/mediawalker/walker"
)

func init() {
	subcommands.Register("walk", cmd_walk)
}

func cmd_walk(ctx *appcontext.AppContext, args []string) int {
	var opt_format string
	var opt_buffer int
	var opt_matched bool

	config := ctx.GetConfig()
	logger := ctx.GetLogger()

	flags := flag.NewFlagSet("walk", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr())
	flags.StringVar(&opt_format, "format", config.Format, "output format (text, json, msgpack)")
	flags.IntVar(&opt_buffer, "buffer", config.BufferSize, "result channel capacity")
	flags.BoolVar(&opt_matched, "matched", false, "only output media files")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	enc, err := report.NewEncoder(opt_format, ctx.Stdout(), &report.Options{Color: config.Color})
	if err != nil {
		logger.Error("%s", err)
		return 1
	}

	w, err := utils.NewWalker(ctx, opt_buffer)
	if err != nil {
		logger.Error("%s", err)
		return 1
	}

	roots := flags.Args()
	if len(roots) == 0 {
		roots = []string{ctx.GetCWD()}
	}

	done := utils.EventsProcessor(ctx)
	failures := 0
	for _, root := range roots {
		if err := walkRoot(ctx, w, root, enc, opt_matched, &failures); err != nil {
			logger.Error("%s: %s", root, err)
			failures++
			break
		}
	}
	ctx.Events().Close()
	<-done

	if err := enc.Close(); err != nil {
		logger.Error("%s", err)
		return 1
	}
	if ctx.Err() != nil {
		logger.Warn("interrupted")
		return 1
	}
	if failures != 0 {
		return 1
	}
	return 0
}

func walkRoot(ctx *appcontext.AppContext, w *walker.Walker, root string, enc report.Encoder, matchedOnly bool, failures *int) error {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results, err := w.Start(wctx, root)
	if err != nil {
		return err
	}

	for result := range results {
		if result.Status == walker.StatusFailed {
			ctx.GetLogger().Error("%s: %s", result.Pathname, result.Err)
			*failures++
		}
		if matchedOnly && !result.Matched() {
			continue
		}
		if err := enc.Encode(result); err != nil {
			cancel()
			for range results {
			}
			return err
		}
	}
	return nil
}
