// Command labelgen generates TypeLabel methods binding string labels to Go
// types. Run "labelgen --help" for usage.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirkon/typelabel/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
