// Package node defines the Node family: variant-tagged approximations of a
// single time-series window at one depth.
//
// A Node is produced by a discretiser (package discretiser) from one frame
// partition of a window. Six variants exist — PAA, PLA, SlopeSign,
// StructuralProminence, SAX, Sum — each carrying its own fields, its own
// equivalence rule, and its own distance metric. Two nodes are only ever
// comparable when they share variant, depth, and threshold configuration;
// comparing across any of those dimensions returns ErrIncomparable rather
// than a meaningless number.
//
// AI-HINT: this package has no dependency on graphstore or pattern — it is
// pure value types plus arithmetic, and is safe to use from multiple
// goroutines concurrently as long as no single Node is mutated (Node values
// are built once at construction and never mutated afterwards).
package node
