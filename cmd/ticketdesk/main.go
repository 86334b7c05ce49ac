package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ticketdesk/internal/interfaces/cli/migrate"
	"ticketdesk/internal/interfaces/cli/server"
)

func main() {
	root := &cobra.Command{
		Use:   "ticketdesk",
		Short: "Ticket tracking API with JWT session authentication",
	}

	root.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
