// Package layout distributes an ordered list of items over a fixed number of
// columns and writes the column boundaries around caller-rendered items.
//
// Columns are filled top to bottom, left to right: every column holds
// ceil(items/columns) entries except the trailing ones, which take the
// remainder. Item order is never changed and no rebalancing pass runs, so a
// short list may leave the last columns empty.
package layout
