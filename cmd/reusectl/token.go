package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/reuse-backend/internal/auth"
)

func newTokenCmd(e *env) *cobra.Command {
	var userID string

	issue := &cobra.Command{
		Use:   "issue",
		Short: "Print a signed access token for a user",
		Long:  "Print a signed access token for a user. Intended for local testing against a running server.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(userID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().StringVar(&userID, "user", "", "user ID (token subject)")
	_ = issue.MarkFlagRequired("user")

	cmd := &cobra.Command{Use: "token", Short: "Issue access tokens"}
	cmd.AddCommand(issue)
	return cmd
}
