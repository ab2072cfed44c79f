package commands

import (
	"database/sql"
	"fmt"

	"pricing-datagen/internal/database"
	"pricing-datagen/internal/output"

	"github.com/spf13/cobra"
)

// runQueryFlags holds the flags for the 'show runs' command
var runQueryFlags struct {
	runName string
	format  string
}

// observationQueryFlags holds the flags for the 'show observations' command
var observationQueryFlags struct {
	runName string
	limit   int
	format  string
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Query and display data from the database",
	Long:  `Query and display stored generation runs or their observation rows.`,
}

var showRunsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored generation runs",
	Long:  `Display all stored generation runs with their seeds, row counts and creation dates.`,
	Example: `  # List all runs
  pricing-datagen db show runs

  # Filter by run name, render as JSON
  pricing-datagen db show runs --name="baseline" --format=json`,
	RunE: runShowRuns,
}

var showObservationsCmd = &cobra.Command{
	Use:   "observations",
	Short: "Show observation rows",
	Long: `Query and display the (price, quantity) observation rows of stored runs,
optionally filtered by run name and limited in count.`,
	Example: `  # Show rows from a specific run
  pricing-datagen db show observations --run-name="baseline"

  # First 50 rows across all runs, as CSV
  pricing-datagen db show observations --limit=50 --format=csv`,
	RunE: runShowObservations,
}

func init() {
	dbCmd.AddCommand(showCmd)
	showCmd.AddCommand(showRunsCmd)
	showCmd.AddCommand(showObservationsCmd)

	// Flags for 'show runs'
	showRunsCmd.Flags().StringVar(&runQueryFlags.runName, "name", "",
		"run name to filter by")
	showRunsCmd.Flags().StringVar(&runQueryFlags.format, "format", "table",
		"output format: table, json, or csv")

	// Flags for 'show observations'
	showObservationsCmd.Flags().StringVar(&observationQueryFlags.runName, "run-name", "",
		"run name to filter by")
	showObservationsCmd.Flags().IntVar(&observationQueryFlags.limit, "limit", 0,
		"maximum number of rows to display (0 = no limit)")
	showObservationsCmd.Flags().StringVar(&observationQueryFlags.format, "format", "table",
		"output format: table, json, or csv")
}

func runShowRuns(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(runQueryFlags.format)
	if err != nil {
		return err
	}

	db, dbImpl, err := connectToDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	runs, err := listRuns(db, dbImpl, runQueryFlags.runName)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found.")
		return nil
	}

	return output.NewPrinter(format).PrintRuns(runs)
}

func runShowObservations(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(observationQueryFlags.format)
	if err != nil {
		return err
	}

	db, dbImpl, err := connectToDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	observations, err := listObservations(db, dbImpl,
		observationQueryFlags.runName, observationQueryFlags.limit)
	if err != nil {
		return fmt.Errorf("failed to list observations: %w", err)
	}

	if len(observations) == 0 {
		fmt.Println("No observations found.")
		return nil
	}

	return output.NewPrinter(format).PrintObservations(observations)
}

func listRuns(db *sql.DB, dbImpl database.Database, runName string) ([]output.RunRecord, error) {
	query := `
		SELECT r.id, r.run_name, r.seed, r.row_count, r.created_at
		FROM runs r
		WHERE 1=1
	`
	args := []interface{}{}
	argIndex := 1

	if runName != "" {
		query += fmt.Sprintf(" AND r.run_name = $%d", argIndex)
		args = append(args, runName)
	}

	query += " ORDER BY r.created_at ASC"

	rows, err := db.Query(placeholdersFor(dbImpl, query), args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []output.RunRecord
	for rows.Next() {
		var r output.RunRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Seed, &r.RowCount, &r.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func listObservations(db *sql.DB, dbImpl database.Database, runName string, limit int) ([]output.ObservationRecord, error) {
	query := `
		SELECT o.id, r.run_name, o.price, o.quantity
		FROM observations o
		JOIN runs r ON o.run_id = r.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIndex := 1

	if runName != "" {
		query += fmt.Sprintf(" AND r.run_name = $%d", argIndex)
		args = append(args, runName)
		argIndex++
	}

	query += " ORDER BY o.id ASC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
	}

	rows, err := db.Query(placeholdersFor(dbImpl, query), args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []output.ObservationRecord
	for rows.Next() {
		var r output.ObservationRecord
		if err := rows.Scan(&r.ID, &r.Run, &r.Price, &r.Quantity); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
