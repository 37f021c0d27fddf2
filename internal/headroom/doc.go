// Package headroom decides when an auto-hiding header should be pinned,
// unpinned or returned to the document flow, and drives that state from
// throttled scroll and resize notifications inside a bubbletea program.
package headroom
