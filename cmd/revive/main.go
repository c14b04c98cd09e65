package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/toruktube/revive-app-sub001/internal/config"
	"github.com/toruktube/revive-app-sub001/internal/database"
	"github.com/toruktube/revive-app-sub001/internal/repository"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "revive",
		Short:         "Inspect the trainer's agenda, payments, journal and conversations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newAgendaCmd(),
		newPaymentsCmd(),
		newJournalCmd(),
		newConversationsCmd(),
	)
	return root
}

// withStore loads the configured snapshot and hands the Store to run.
func withStore(cmd *cobra.Command, run func(store *repository.Store) (any, error)) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, closeStore, err := database.OpenStore(cmd.Context(), cfg, time.Now())
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	defer closeStore()

	view, err := run(store)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), view)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
