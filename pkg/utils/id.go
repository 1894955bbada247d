package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

var (
	nonSlugChars = regexp.MustCompile("[^a-z0-9-]")
	multiHyphen  = regexp.MustCompile("-+")
)

// Slugify converts a string to a URL-friendly identifier, used for
// file-backed catalog keys derived from product names
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// InvoiceNumber returns the printable invoice number for a sale: the first
// 8 hex characters of its UUID
func InvoiceNumber(id uuid.UUID) string {
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}

// CatalogID generates a new string key for a file-backed catalog record
func CatalogID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
