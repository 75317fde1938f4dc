// Package shipment provides the Shipment aggregate and its lifecycle.
//
// The package includes:
//   - Shipment: identity, sender, receiver, addresses, status and timestamps
//   - Status: the Placed -> InTransit -> Delivered state machine
//   - TrackingCode: the public "SHIP-<epoch_ms>" identifier and its generator
//
// Key business rules:
//   - A new shipment starts in Placed with created_at = updated_at
//   - Automatic transitions only move forward; Delivered is terminal
//   - Manual status changes stamp updated_at, restarting the delivery timer
//   - The tracking code is immutable and unique
package shipment
