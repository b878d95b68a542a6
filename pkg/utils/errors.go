package utils

import (
	"context"
	"errors"
	"net"
	"os"
	"strings"
)

// --- Sentinel Errors for Categorization ---
var (
	ErrFetch            = errors.New("fetch failed")               // Wraps transport errors and non-2xx statuses
	ErrExtraction       = errors.New("expected element not found") // Wraps missing-selector details
	ErrOutputIO         = errors.New("output file error")          // Wraps os/csv errors
	ErrRobotsDisallowed = errors.New("disallowed by robots.txt")
	ErrConfigValidation = errors.New("configuration validation error")
)

// CategorizeError maps an error to a predefined category string for logging.
func CategorizeError(err error) string {
	if err == nil {
		return "None"
	}

	// Check against sentinel errors first
	switch {
	case errors.Is(err, ErrFetch):
		errMsg := err.Error()
		if strings.Contains(errMsg, " 404 ") {
			return "Fetch_HTTP404"
		}
		if strings.Contains(errMsg, " 403 ") {
			return "Fetch_HTTP403"
		}
		if strings.Contains(errMsg, " 429 ") {
			return "Fetch_HTTP429"
		}
		if strings.Contains(errMsg, "status ") {
			return "Fetch_HTTPStatus"
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return "Fetch_NetworkTimeout"
		}
		lowerErrMsg := strings.ToLower(errMsg)
		if strings.Contains(lowerErrMsg, "connection refused") {
			return "Fetch_ConnectionRefused"
		}
		if strings.Contains(lowerErrMsg, "no such host") {
			return "Fetch_DNSLookup"
		}
		if strings.Contains(lowerErrMsg, "tls") || strings.Contains(lowerErrMsg, "certificate") {
			return "Fetch_TLS"
		}
		return "Fetch_Other"
	case errors.Is(err, ErrRobotsDisallowed):
		return "Policy_Robots"
	case errors.Is(err, ErrExtraction):
		return "Content_SelectorNotFound"
	case errors.Is(err, ErrOutputIO):
		if errors.Is(err, os.ErrPermission) {
			return "Output_Permission"
		}
		if errors.Is(err, os.ErrNotExist) {
			return "Output_PathNotExist"
		}
		return "Output_Other"
	case errors.Is(err, ErrConfigValidation):
		return "Config_Validation"
	}

	// Context errors
	if errors.Is(err, context.Canceled) {
		return "System_ContextCanceled"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "System_ContextDeadlineExceeded"
	}

	return "Unknown"
}
