package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"streaming-service.backend/internal/infrastructure/repositories"
	"streaming-service.backend/internal/usecases"
)

var (
	dropConfirm  bool
	dropName     string
	reviewsCount int
)

var dropDatabaseCmd = &cobra.Command{
	Use:   "drop-database",
	Short: "Terminate all sessions on the target database and drop it",
	Long: `Connects to the maintenance database (DB_MAINTENANCE_NAME), terminates every
other backend on the target database and drops it. Requires --yes.`,
	Args: cobra.NoArgs,
	RunE: runDropDatabase,
}

var updateSubscriptionCmd = &cobra.Command{
	Use:   "update-subscription <user-id> <basic|standard|premium>",
	Short: "Move a user to another subscription tier",
	Args:  cobra.ExactArgs(2),
	RunE:  runUpdateSubscription,
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Manage the user_reviews table",
}

var reviewsCreateTableCmd = &cobra.Command{
	Use:   "create-table",
	Short: "Recreate the user_reviews table",
	Args:  cobra.NoArgs,
	RunE:  runReviewsCreateTable,
}

var reviewsInsertCmd = &cobra.Command{
	Use:   "insert",
	Short: "Insert random reviews for viewed movies and print the table",
	Args:  cobra.NoArgs,
	RunE:  runReviewsInsert,
}

func init() {
	rootCmd.AddCommand(dropDatabaseCmd)
	rootCmd.AddCommand(updateSubscriptionCmd)
	rootCmd.AddCommand(reviewsCmd)
	reviewsCmd.AddCommand(reviewsCreateTableCmd)
	reviewsCmd.AddCommand(reviewsInsertCmd)

	dropDatabaseCmd.Flags().BoolVar(&dropConfirm, "yes", false, "Confirm the drop")
	dropDatabaseCmd.Flags().StringVar(&dropName, "name", "", "Database to drop (default DB_NAME)")
	reviewsInsertCmd.Flags().IntVar(&reviewsCount, "count", usecases.DefaultReviewCount, "Number of reviews to insert")
}

func runDropDatabase(cmd *cobra.Command, _ []string) error {
	if !dropConfirm {
		return fmt.Errorf("refusing to drop the database without --yes")
	}
	cfg := loadConfig()
	name := dropName
	if name == "" {
		name = cfg.Database.DBName
	}

	conn, err := openMaintenance(cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	uc := usecases.NewAnalyticsUsecase(nil, repositories.NewDatabaseAdmin(conn), nil)
	if err := uc.DropDatabase(cmd.Context(), name); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Database %s dropped\n", name)
	return nil
}

func runUpdateSubscription(cmd *cobra.Command, args []string) error {
	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", args[0])
	}

	ctx := cmd.Context()
	a, err := newApp(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer a.Close()

	updated, err := a.analytics.UpdateUserSubscription(ctx, userID, args[1])
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), updated)
}

func runReviewsCreateTable(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.analytics.CreateReviewsTable(ctx); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "user_reviews table created")
	return nil
}

func runReviewsInsert(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx, loadConfig())
	if err != nil {
		return err
	}
	defer a.Close()

	reviews, err := a.analytics.InsertRandomReviews(ctx, reviewsCount)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), reviews)
}
