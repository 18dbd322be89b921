package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/voxsh/internal/domain"
	"github.com/doeshing/voxsh/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands.
// The journal is read-only audit data; it never seeds a new session's transcript.
func NewHistoryCommand(build ContainerFunc) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the journal of executed commands",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(build),
		newHistoryClearCommand(build),
	)

	return historyCmd
}

func newHistoryListCommand(build ContainerFunc) *cobra.Command {
	var (
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent executions",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd, build)
			if err != nil {
				return err
			}
			return listHistoryEntries(cmd.OutOrStdout(), store, limit, search)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", DefaultHistoryLimit, "Max entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Only show entries containing this text")
	return cmd
}

func newHistoryClearCommand(build ContainerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := historyStore(cmd, build)
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), MsgHistoryCleared)
			return nil
		},
	}
}

func historyStore(cmd *cobra.Command, build ContainerFunc) (ports.HistoryRepository, error) {
	container, err := build(cmd)
	if err != nil {
		return nil, err
	}
	if container.HistoryStore == nil {
		return nil, fmt.Errorf(ErrHistoryStoreUnavailable)
	}
	return container.HistoryStore, nil
}

func listHistoryEntries(out io.Writer, store ports.HistoryRepository, limit int, search string) error {
	records, err := store.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | exit %d | %s\n",
			rec.Timestamp.Local().Format(TimestampFormat),
			shortSession(rec),
			rec.ExitCode,
			rec.Command)
	}

	return nil
}

func shortSession(rec domain.HistoryRecord) string {
	if len(rec.SessionID) > 8 {
		return rec.SessionID[:8]
	}
	return rec.SessionID
}
