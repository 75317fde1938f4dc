// Package location holds the last known position of a shipment.
//
// A shipment has at most one Record. Writes for a shipment that already has
// one overwrite its coordinates and timestamp in place (MoveTo) instead of
// appending, so the store keeps the latest position only. The record seeded
// at shipment creation carries the receiver's coordinates.
package location
