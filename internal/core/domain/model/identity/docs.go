// Package identity models registered users, their roles and the Principal
// decoded from a bearer token. Only role 2 (admin) may see every shipment and
// force status changes or deletions.
package identity
