// Package bipartite builds and simplifies the process/entity graph derived
// from an extracted SBGN edge list.
//
// # Overview
//
// A process description diagram is bipartite: entity pools (proteins,
// metabolites, complexes) connect to each other through processes. Network
// analysis tools want entity-to-entity edges, so this package removes the
// process layer in three steps:
//
//  1. [Build] routes each extracted edge into one of two graphs. Edges that
//     touch a process go to the mediating graph; edges between two entity
//     pools go to the entity-pool graph. Edges touching a logic gate or the
//     sink/source marker are dropped.
//  2. [Project] collapses every entity → process → entity chain of the
//     mediating graph into a direct edge. [Collapse] decides which of the two
//     edges describes the result.
//  3. [Compose] merges the projected graph with the untouched entity-pool
//     graph.
//
// [Simplify] runs steps 2 and 3.
//
// # Example
//
// With A --consumption--> P --production--> B the projection contains a
// single edge A → B of type production. With A --inhibition--> P instead,
// the edge A → B is an inhibition.
//
// # Ordering
//
// [Graph] stores nodes and edges in insertion order and overwrites
// attributes in place, so rebuilding from the same edge list always yields
// the same iteration order and the same serialized output.
package bipartite
