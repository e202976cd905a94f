package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/reuse-backend/internal/app"
	"github.com/heartmarshall/reuse-backend/internal/domain"
)

func newMatchesCmd(e *env) *cobra.Command {
	var userID string

	list := &cobra.Command{
		Use:   "list",
		Short: "List the matches a user participates in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			store, err := app.OpenStore(ctx, e.cfg, e.logger)
			if err != nil {
				return err
			}
			defer store.Close()

			matches, err := store.Matches.ListByUser(ctx, userID)
			if err != nil {
				return err
			}
			return writeMatches(cmd.OutOrStdout(), userID, matches)
		},
	}
	list.Flags().StringVar(&userID, "user", "", "user ID")
	_ = list.MarkFlagRequired("user")

	cmd := &cobra.Command{Use: "matches", Short: "Inspect the match ledger"}
	cmd.AddCommand(list)
	return cmd
}

func newLikesCmd(e *env) *cobra.Command {
	var userID string

	list := &cobra.Command{
		Use:   "list",
		Short: "List the likes a user has placed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := withTimeout(cmd)
			defer cancel()

			store, err := app.OpenStore(ctx, e.cfg, e.logger)
			if err != nil {
				return err
			}
			defer store.Close()

			likes, err := store.Likes.ListByUser(ctx, userID)
			if err != nil {
				return err
			}
			return writeLikes(cmd.OutOrStdout(), likes)
		},
	}
	list.Flags().StringVar(&userID, "user", "", "user ID")
	_ = list.MarkFlagRequired("user")

	cmd := &cobra.Command{Use: "likes", Short: "Inspect the like ledger"}
	cmd.AddCommand(list)
	return cmd
}

func writeMatches(w io.Writer, userID string, matches []*domain.Match) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tMY ITEM\tTHEIR ITEM\tCOUNTERPART\tCREATED")
	for _, m := range matches {
		otherUser, otherItem := m.Counterpart(userID)
		myItem := m.ItemAID
		if otherItem == m.ItemAID {
			myItem = m.ItemBID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			m.ID, m.Status, myItem, otherItem, otherUser, m.CreatedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}

func writeLikes(w io.Writer, likes []*domain.Like) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tOFFERED\tWANTED\tCREATED")
	for _, l := range likes {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			l.ID, l.SourceItemID, l.TargetItemID, l.CreatedAt.UTC().Format(time.RFC3339))
	}
	return tw.Flush()
}
