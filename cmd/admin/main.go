package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ninenine-news/backend/store"
	"github.com/ninenine-news/backend/subm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	var logLevel string

	var rootCmd = &cobra.Command{
		Use:   "ninenine",
		Short: "Operator CLI for the submission-review platform",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return InitializeLogger(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level [debug, info, warn, error]")

	var bootstrapCmd = &cobra.Command{
		Use:   "bootstrap",
		Short: "Ensure the canonical admin account exists",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			s, closeStore, err := openStore(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to open store")
			}
			defer closeStore()
			if err := store.Bootstrap(ctx, s); err != nil {
				log.Fatal().Err(err).Msg("bootstrap failed")
			}
			log.Info().Msg("bootstrap complete")
		},
	}

	var statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print platform statistics",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			s, closeStore, err := openStore(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to open store")
			}
			defer closeStore()
			stats, err := subm.NewSubmSrvc(s).Stats(ctx, subm.Caller{Admin: true})
			if err != nil {
				log.Fatal().Err(err).Msg("failed to read stats")
			}
			fmt.Printf("users:       %d\n", stats.TotalUsers)
			fmt.Printf("submissions: %d\n", stats.TotalSubmissions)
			fmt.Printf("pending:     %d\n", stats.PendingSubmissions)
			fmt.Printf("approved:    %d\n", stats.ApprovedSubmissions)
		},
	}

	var pendingCmd = &cobra.Command{
		Use:   "pending",
		Short: "List submissions awaiting review",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			s, closeStore, err := openStore(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to open store")
			}
			defer closeStore()
			subms, err := subm.NewSubmSrvc(s).ListAll(ctx, subm.Caller{Admin: true})
			if err != nil {
				log.Fatal().Err(err).Msg("failed to list submissions")
			}
			for _, view := range subms {
				if view.Status != store.StatusPending {
					continue
				}
				fmt.Printf("#%d\t%s\t%s\t%s\n",
					view.ID, view.SubmittedAt.Format("2006-01-02"),
					view.OwnerName, view.Title)
			}
		},
	}

	var (
		reviewID       int64
		reviewStatus   string
		reviewScore    int
		reviewFeedback string
	)

	var reviewCmd = &cobra.Command{
		Use:   "review",
		Short: "Review a submission as the canonical admin",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			s, closeStore, err := openStore(ctx)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to open store")
			}
			defer closeStore()

			adminID, err := adminCaller(ctx, s)
			if err != nil {
				log.Fatal().Err(err).Msg("failed to resolve admin account")
			}

			status := store.Status(reviewStatus)
			updated, err := subm.NewSubmSrvc(s).Review(ctx,
				subm.Caller{ID: adminID, Admin: true},
				reviewID,
				subm.ReviewParams{
					Status:   &status,
					Score:    &reviewScore,
					Feedback: &reviewFeedback,
				})
			if err != nil {
				log.Fatal().Err(err).Msg("review failed")
			}
			log.Info().
				Int64("id", updated.ID).
				Str("status", string(updated.Status)).
				Int("score", *updated.Score).
				Msg("submission reviewed")
		},
	}

	reviewCmd.Flags().Int64VarP(&reviewID, "id", "i", 0, "Submission id (required)")
	reviewCmd.Flags().StringVarP(&reviewStatus, "status", "s", "", "New status [approved, rejected, needs_revision] (required)")
	reviewCmd.Flags().IntVarP(&reviewScore, "score", "n", 0, "Score 0-100 (required)")
	reviewCmd.Flags().StringVarP(&reviewFeedback, "feedback", "f", "", "Feedback for the author")
	reviewCmd.MarkFlagRequired("id")
	reviewCmd.MarkFlagRequired("status")
	reviewCmd.MarkFlagRequired("score")

	rootCmd.AddCommand(bootstrapCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(pendingCmd)
	rootCmd.AddCommand(reviewCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
