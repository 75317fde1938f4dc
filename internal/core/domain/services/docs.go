// Package services provides domain services that apply business rules across
// many shipments at once, where no single aggregate owns the decision.
//
// The package includes:
//   - LifecyclePolicy: the time-based rules that advance shipments along
//     Placed -> InTransit -> Delivered
package services
