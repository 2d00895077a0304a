package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/consensuslabs/pavilion-network/commentinfo/internal/commentinfo"
	"github.com/consensuslabs/pavilion-network/commentinfo/internal/database"
)

var (
	seedOwner   string
	seedComment string
)

var seedCommand = &cobra.Command{
	Use:   "seed",
	Short: "Create comment info with zero counters for an existing comment",
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID, err := uuid.Parse(seedOwner)
		if err != nil {
			return fmt.Errorf("invalid owner id: %w", err)
		}
		commentID := uuid.Nil
		if seedComment != "" {
			if commentID, err = uuid.Parse(seedComment); err != nil {
				return fmt.Errorf("invalid comment id: %w", err)
			}
		}

		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}

		dbService := database.NewDatabaseService(&cfg.Database, log)
		db, err := dbService.Connect(cmd.Context())
		if err != nil {
			return log.LogError(err, "Failed to connect to database")
		}
		defer dbService.Close()

		// a nil id is assigned by the model hook
		info := commentinfo.NewCommentInfo(commentID, ownerID)
		if err := commentinfo.NewRepository(db).Create(cmd.Context(), info); err != nil {
			return log.LogError(err, "Failed to seed comment info")
		}

		log.LogInfo("Comment info seeded", map[string]interface{}{
			"commentID": info.ID.String(),
			"ownerID":   ownerID.String(),
		})
		fmt.Fprintln(cmd.OutOrStdout(), info.ID.String())
		return nil
	},
}

func init() {
	seedCommand.Flags().StringVar(&seedOwner, "owner", "", "owner (author) user id of the comment")
	seedCommand.Flags().StringVar(&seedComment, "id", "", "comment id; generated when empty")
	_ = seedCommand.MarkFlagRequired("owner")
	rootCommand.AddCommand(seedCommand)
}
