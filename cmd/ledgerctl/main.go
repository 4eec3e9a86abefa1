// Command ledgerctl opera el libro de caja desde la terminal: migraciones, catálogo de ejemplo,
// resúmenes, reportes PDF y ajustes de stock.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&migrateCmd{}, "store")
	commander.Register(&seedCmd{}, "store")
	commander.Register(&adjustCmd{}, "stock")
	commander.Register(&summaryCmd{}, "reports")
	commander.Register(&reportCmd{}, "reports")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
