// Package pipeline runs the artifact generators in sequence.
//
// Each generator is a Step that renders one artifact from the project
// catalog, writes it into the run's output directory and records the
// written file in the Run. Steps never run concurrently: console output
// of one generator must not interleave with another's.
package pipeline
