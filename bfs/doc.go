// Package bfs is a deliberately naive shortest-path oracle used to
// corroborate dijkstra.Run on small test graphs.
//
// What
//
//   - Run explores g breadth-first from start, re-enqueuing a vertex
//     whenever a cheaper route to it is discovered, and returns the same
//     dijkstra.Path result type dijkstra.Run does so the two can be
//     compared directly.
//
// Why
//
//   - A second, structurally unrelated implementation of the same
//     shortest-path problem is a much stronger correctness check than
//     re-running dijkstra.Run with a different heap variant: it would not
//     share a bug in the relaxation logic dijkstra.Run and this package
//     both happened to get wrong the same way.
//
// Non-goals
//
//   - This is not an efficient or general shortest-path algorithm. It
//     ignores negative-weight concerns entirely and can revisit the same
//     vertex arbitrarily many times on adversarial graphs. Use dijkstra.Run
//     for anything beyond small graphs in tests.
package bfs
