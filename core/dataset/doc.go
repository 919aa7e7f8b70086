// Package dataset holds the tabular input handed to estimator factories.
//
// A Frame is an ordered set of equally long, named and typed columns. Values
// are never mutated in place: conversions such as Float64To32 return a new
// Frame, so a Frame can be shared between a factory, its sub-models and the
// estimator it builds.
package dataset
