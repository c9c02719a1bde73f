package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateID creates a short human-readable identifier.
// Format: {prefix}-{label}-{8charHexUUID}, or {prefix}-{8charHexUUID} without a label.
//
// Example:
//   - Input: prefix="simulate", label="farm"
//   - Output: "simulate-farm-a3f8e2b1"
func GenerateID(prefix, label string) string {
	label = strings.ReplaceAll(strings.TrimSpace(label), " ", "-")
	if label == "" {
		return prefix + "-" + generateShortUUID()
	}
	return prefix + "-" + label + "-" + generateShortUUID()
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
