package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/auth"
)

var tokenUser string

var tokenCommand = &cobra.Command{
	Use:   "token",
	Short: "Issue an access token for a user id",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := uuid.Parse(tokenUser)
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}

		cfg, _, err := bootstrap()
		if err != nil {
			return err
		}

		token, err := auth.NewJWTService(auth.NewConfigFromAuthConfig(&cfg.Auth)).GenerateAccessToken(userID)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCommand.Flags().StringVar(&tokenUser, "user", "", "user id (uuid) the token is issued for")
	_ = tokenCommand.MarkFlagRequired("user")
	rootCommand.AddCommand(tokenCommand)
}
