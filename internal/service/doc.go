// Package service implements the content orchestrator that sequences the
// generation stages into a complete pipeline: optional prompt improvement,
// concept planning, concurrent slide expansion with a bounded quality-gate
// retry loop, and order-preserving assembly of the final structure.
package service
