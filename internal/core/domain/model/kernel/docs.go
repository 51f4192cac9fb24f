// Package kernel holds the value objects shared by every aggregate of the
// ordering domain: identifiers and money.
package kernel
