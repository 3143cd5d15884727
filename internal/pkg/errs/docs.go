// Package errs provides the generic error types shared by the dispatch core.
//
// Every type follows the same shape: a sentinel variable for errors.Is, a
// struct carrying the offending parameter for errors.As, constructors with
// and without a cause, and an Unwrap method returning the sentinel.
//
// Domain packages build their own taxonomy (validation, state, resource and
// arithmetic errors) on top of these sentinels.
package errs
