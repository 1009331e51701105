package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If BGIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.bgit/logs/bgit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("BGIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "bgit.log"
	}

	return filepath.Join(homeDir, ".bgit", "logs", "bgit.log")
}
