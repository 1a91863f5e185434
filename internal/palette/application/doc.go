// Package palette implements the application layer for the palette
// registry. It bridges the pure domain registry to the rest of the
// system: loading YAML palette definitions, driving the authority
// handoff, fanning out growth events, keeping render descriptors in
// step with new entries, and persisting snapshots for the next run.
package palette
