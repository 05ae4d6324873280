// Package overlap orchestrates overlap detection between two survey
// tracklines.
//
// It wires the projection, basis, hull and classification stages into a
// fixed build-then-release pipeline over both lines, under either a
// full-retention or a minimal-memory policy. The package does not own
// the geometric algorithms. It delegates to the projection and hull
// packages and keeps the bookkeeping: stage order, retention policy,
// overlap index lists and the derived queries.
package overlap
