// Package coerce converts the historically drifted data shapes produced by
// report generators into the internal representations renderers consume:
// numeric coercion with noise/suffix handling, series shape fan-in, table
// column/row resolution, and key humanization.
//
// Every function here is total: unrecognized input degrades to an empty or
// zero result, never an error. Renderers may be invoked with data that never
// passed through the document Normalizer, so this package repeats the
// defensive work at render time.
package coerce
