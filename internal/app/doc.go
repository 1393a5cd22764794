// Package app wires configuration and the key-file store for the CLI.
package app
