// Package pattern implements the three chain-storage models — PatternSet,
// PatternTree, PatternGraph — that answer whether a previously unseen chain
// matches patterns observed during training.
//
// All three share the Model contract (Update, Learn, Contains). PatternTree
// and PatternGraph additionally expose ChainVertexIDs, the vertex-id
// projection of a chain that package nwset needs to build NestedWords.
//
// None of these types are safe for concurrent use — per spec, pattern
// models are mutated exclusively by one driver at a time; the thread safety
// lives one layer down, in graphstore.
package pattern
