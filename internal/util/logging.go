// Package util provides common utilities including logging helpers,
// file system paths, and small generic helpers.
package util

import (
	"io"
	"log"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// CloseLogged closes c and logs any failure.
func CloseLogged(context string, c io.Closer) {
	if c == nil {
		return
	}
	LogError(context, c.Close())
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}
