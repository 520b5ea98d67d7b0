// Package types defines the shared types and interfaces used across the
// pulse library and its subpackages.
//
// Keeping interfaces here lets internal packages depend on them without
// importing the root pulse package, which avoids import cycles. The root
// package re-exports the common ones as type aliases for convenience.
package types
