// Package domain holds the leaf types shared across valkeys: the closed
// key-type enumeration, the sequence counter with its terminal revocation
// sentinel, the load/sequence error taxonomy, and the abstract record
// contract the persistence layer implements.
package domain
