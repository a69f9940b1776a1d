package cmd

// addCheckFlags adds the various flags for the check command
func addCheckFlags() {
	// Prevent alphabetical sorting of usage message
	checkCmd.Flags().SortFlags = false

	// Log level for console output
	checkCmd.Flags().String("log-level", "info",
		"console log level (trace, debug, info, warn, error)")

	// Structured log file
	checkCmd.Flags().String("log-file", "",
		"path to a file receiving structured JSON log output")
}
