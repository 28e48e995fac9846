// Package kv implements the domain repositories over the key-value storage
// port. Every aggregate lives under one canonical key; export, import and
// the HTTP service all read and write the same set.
package kv

import "strings"

const (
	keyUser         = "mydrip:user"
	keyItems        = "mydrip:items"
	keyOutfits      = "mydrip:outfits"
	keyMeasurements = "mydrip:measurements"
	keyLanguage     = "mydrip:language"

	credentialKeyPrefix = "mydrip:credential:"
)

// credentialKey builds the per-email credential key. Emails are lowered so
// login is case-insensitive on the address.
func credentialKey(email string) string {
	return credentialKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}
