// Package discretiser turns a normalised window into a Chain of increasingly
// fine Node approximations, one variant applied uniformly across D depths.
//
// Six variants exist, one per node.Node variant: PAA, PLA, SAX, Sum (the
// four spec.md names explicitly) plus SlopeSign and StructuralProminence
// (supplemented here since hpm's documented defaults construct a
// StructuralProminence chain and nothing else in this module produces one).
// All six share the common frame-division and z-normalisation machinery in
// common.go.
package discretiser
