package utils

/**
 * This file contains utility functions to format the keys for Redis
 * (key, value) pairs. It avoids having to call "fmt.Sprintf(...)"
 * with the same format string every time, potentially confusing the key format.
 */

import (
	"fmt"
	"strings"
)

func FormatResultsKey(roomCode string) string {
	return fmt.Sprintf("results:%s", strings.ToUpper(roomCode))
}

// FormatResultsPattern matches every results key, for SCAN
func FormatResultsPattern() string {
	return "results:*"
}
