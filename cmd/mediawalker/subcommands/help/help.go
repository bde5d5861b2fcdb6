package help

import (
	"embed"
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/kontza/mediawalker/appcontext"
	"github.com/kontza/mediawalker/cmd/mediawalker/subcommands"
	"github.com/muesli/termenv"
)

//go:embed docs/*
var docs embed.FS

func init() {
	subcommands.Register("help", cmd_help)
}

func cmd_help(ctx *appcontext.AppContext, args []string) int {
	var opt_style string
	flags := flag.NewFlagSet("help", flag.ContinueOnError)
	flags.SetOutput(ctx.Stderr())
	flags.StringVar(&opt_style, "style", "dracula", "style to use")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if flags.NArg() == 0 {
		fmt.Fprintf(ctx.Stdout(), "available commands:\n")
		for _, command := range subcommands.List() {
			fmt.Fprintf(ctx.Stdout(), "  %s\n", command)
		}
		return 0
	}

	content, err := docs.ReadFile(fmt.Sprintf("docs/%s.md", flags.Arg(0)))
	if err != nil {
		ctx.GetLogger().Error("unknown command: %s", flags.Arg(0))
		return 1
	}

	profile := termenv.TrueColor
	if !ctx.GetConfig().Color {
		profile = termenv.Ascii
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opt_style),
		glamour.WithColorProfile(profile),
	)
	if err != nil {
		ctx.GetLogger().Error("failed to create renderer: %s", err)
		return 1
	}

	out, err := r.RenderBytes(content)
	if err != nil {
		ctx.GetLogger().Error("failed to render: %s", err)
		return 1
	}
	fmt.Fprint(ctx.Stdout(), string(out))

	return 0
}
