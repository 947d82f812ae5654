// SPDX-License-Identifier: MIT

// Package rowset implements a compact, ordered set of non-negative
// 64-bit row identifiers, built to accumulate row references emitted
// during scans over a columnar table and replay them, in either
// order, to a consumer.
//
// Internally, a Set is a compressed 64-bit-keyed radix trie
// (internal/rowtrie) whose leaves hold up to 65536 consecutive row
// identifiers each, represented as a compact range-list until
// fragmentation forces a one-way transform to a bitmap. Every leaf is
// also threaded into a doubly-linked list in ascending leaf-id order,
// which is what ordered traversal actually walks; the trie itself
// exists only to make insertion and leaf-list placement fast.
//
// A Set supports sparse insertion (a single far-out row id) and dense
// insertion (a large contiguous range) with comparable efficiency,
// never represents a row id twice, and exposes its contents in
// strictly ascending or descending order regardless of insertion
// order.
//
// Persistence, concurrent structural mutation, mutation during
// iteration, per-row deletion, and set algebra (union, intersection,
// difference) are all out of scope; see the package-level tests for
// the exact operations supported.
package rowset
