package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	removeRunName string
	removeRunID   string
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete data from the database",
	Long: `Delete generation runs and their observation rows from the database.

	WARNING: All remove operations are immediate and cannot be undone.`,
}

var removeRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Remove a run and all its observations",
	Long: `Delete a run record and all associated observation rows from the database.

WARNING: This operation cannot be undone. All observation rows for the run will be permanently deleted.`,
	Example: `  # Remove a run by name
  pricing-datagen db remove runs --name="old-baseline"

  # Remove a run by id
  pricing-datagen db remove runs --id=3`,
	RunE: runRemoveRuns,
}

func init() {
	dbCmd.AddCommand(removeCmd)
	removeCmd.AddCommand(removeRunsCmd)

	removeRunsCmd.Flags().StringVar(&removeRunName, "name", "",
		"run name to remove")
	removeRunsCmd.Flags().StringVar(&removeRunID, "id", "",
		"run id to remove")
}

func runRemoveRuns(cmd *cobra.Command, args []string) error {
	if removeRunName == "" && removeRunID == "" {
		return fmt.Errorf("must specify either --name or --id")
	}

	db, dbImpl, err := connectToDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	// Resolve matching runs first
	runs, err := listRuns(db, dbImpl, removeRunName)
	if err != nil {
		return fmt.Errorf("failed to query runs: %w", err)
	}
	if removeRunID != "" {
		id, err := parseRunID(removeRunID)
		if err != nil {
			return err
		}
		filtered := runs[:0]
		for _, r := range runs {
			if r.ID == id {
				filtered = append(filtered, r)
			}
		}
		runs = filtered
	}
	if len(runs) == 0 {
		return fmt.Errorf("no matching runs found")
	}

	var totalDeleted int64
	for _, run := range runs {
		result, err := db.Exec(placeholdersFor(dbImpl,
			"DELETE FROM observations WHERE run_id = $1"), run.ID)
		if err != nil {
			return fmt.Errorf("failed to delete observations: %w", err)
		}
		deleted, _ := result.RowsAffected()
		totalDeleted += deleted

		if _, err := db.Exec(placeholdersFor(dbImpl,
			"DELETE FROM runs WHERE id = $1"), run.ID); err != nil {
			return fmt.Errorf("failed to delete run: %w", err)
		}

		fmt.Printf("✓ Deleted run '%s' (id %d).\n", run.Name, run.ID)
	}

	fmt.Printf("✓ Deleted %s observation rows in total.\n", humanize.Comma(totalDeleted))
	return nil
}
