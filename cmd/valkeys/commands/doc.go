// Package commands implements the valkeys CLI verbs: create, restore,
// sign, revoke, and show.
package commands
