// Package simplify implements greedy quadric-error-metric edge-collapse
// mesh simplification over a meshgraph.Graph: a min-priority-queue of
// candidate edges ordered by collapse cost, a collapse loop that pops
// the cheapest edge, validates it, and commits or discards it, and an
// extractor that reads the surviving triangles back out of the graph.
//
// The loop holds no mutex and expects no concurrent access: a single
// Simplify call owns its Graph exclusively from Build through Extract,
// and nothing about the collapse loop is safe to call from more than
// one goroutine against the same Graph.
package simplify
