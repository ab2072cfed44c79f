package config

import (
	"fmt"
)

// ValidateFlags ensures the correct combination of flags is provided
func ValidateFlags(flags InputFlags) error {
	if flags.OutputFile == "" {
		return fmt.Errorf("output file must be specified")
	}

	if flags.ChartFile == "" {
		return fmt.Errorf("chart file must be specified")
	}

	if flags.LogDir == "" {
		return fmt.Errorf("log directory must be specified")
	}

	if flags.MaxLogFiles <= 0 {
		return fmt.Errorf("max log files must be greater than 0")
	}

	if flags.DatabaseType != "sqlite" && flags.DatabaseType != "postgres" {
		return fmt.Errorf("invalid db-type: must be 'sqlite' or 'postgres'")
	}

	if flags.Store && flags.DatabaseType == "postgres" && flags.PostgresURL == "" {
		return fmt.Errorf("postgres-url is required when db-type=postgres")
	}

	return nil
}
