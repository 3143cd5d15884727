// Package services provides domain services that work across aggregates:
//   - PriceEngine: unit price resolution and order totals
//   - ShippingPolicy: per-parcel shipping fees (WeightTierPolicy, FlatFreePolicy)
//   - DispatchMatcher: nearest available driver search, assignment and release
//
// All services are stateless values and safe for concurrent use.
package services
