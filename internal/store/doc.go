// Package store persists the master-key record as an indented JSON file.
//
// Writes go to a temp file in the target directory and rename into
// place, so a failed write can never leave a truncated key file behind.
package store
