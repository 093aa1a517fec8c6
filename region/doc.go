// SPDX-License-Identifier: MIT
// Package region partitions the panes of a puzzle into the regions a traced
// path carves out.
//
// What:
//
//   - The panes and their adjacency form the dual of the puzzle graph: two
//     panes are joined by the line lying between them.
//   - A Cut marks the lines the path uses. A cut line separates its panes.
//   - Split flood-fills the dual graph over uncut adjacencies and returns a
//     Partition: every pane belongs to exactly one component.
//
// Complexity:
//
//   - Split: O(P + A) time with a set-backed Cut (P panes, A adjacency
//     entries), O(P) memory.
//
// With no cut at all, a connected board is a single component holding every
// pane.
package region
