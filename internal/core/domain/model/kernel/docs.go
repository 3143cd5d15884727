// Package kernel provides the shared value objects of the dispatch core:
//
//   - UUID: identity for orders, drivers, restaurants and tracking records
//   - Location: validated latitude/longitude with haversine distance
//   - Money: fixed-point decimal amounts with half-up rounding at boundaries
//
// All values are immutable and safe for concurrent use.
package kernel
