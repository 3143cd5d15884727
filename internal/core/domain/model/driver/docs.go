// Package driver models delivery drivers and their dispatch availability.
//
// A Driver is selected by the nearest-driver search only while Available.
// MarkBusy re-checks availability at assignment time and returns a
// DriverNotAvailableError when the driver changed in between, so callers
// detect races instead of assuming them away. Release hands the driver back
// to the pool when the order is delivered or cancelled.
package driver
