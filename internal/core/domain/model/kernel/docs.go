// Package kernel provides the primitives shared by every aggregate of the shipping domain:
// database identifiers, validated geographic coordinates and the clock abstraction
// that time-driven rules read "now" from.
//
// Value objects here are immutable and constructor-guarded: their zero value fails
// validation, so a forgotten constructor call is caught at the first Validate.
package kernel
