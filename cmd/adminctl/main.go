// Command adminctl is the operator CLI for the editorial admin backend:
// schema migrations, audit log exports and access token issuing.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/editorial-admin/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "adminctl",
		Short:        "Operator CLI for the editorial admin backend",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newAuditCmd(),
		newTokenCmd(),
	)
	return rootCmd
}
