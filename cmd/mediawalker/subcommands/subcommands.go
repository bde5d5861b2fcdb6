package subcommands

import (
	"fmt"
	"log"
	"sort"

	"github.com/kontza/mediawalker/appcontext"
)

type Subcommand func(*appcontext.AppContext, []string) int

var subcommands map[string]Subcommand = make(map[string]Subcommand)

func Register(command string, fn Subcommand) {
	if _, exists := subcommands[command]; exists {
		log.Fatalf("subcommand '%s' registered twice", command)
	}
	subcommands[command] = fn
}

func Execute(ctx *appcontext.AppContext, command string, args []string) (int, error) {
	fn, exists := subcommands[command]
	if !exists {
		return 1, fmt.Errorf("unknown command: %s", command)
	}
	return fn(ctx, args), nil
}

func List() []string {
	var list []string
	for command := range subcommands {
		list = append(list, command)
	}
	sort.Strings(list)
	return list
}
