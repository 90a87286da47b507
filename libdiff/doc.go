// Package libdiff compares and reconciles value trees.
//
// Diff reports the entries of one tree that are new or changed relative
// to another, coercing scalars toward the type already held by the old
// tree.  Merge upserts one tree into another; Update does the same but
// overwrites authoritatively.  All three match the Map elements of
// arrays by the String held under a name key, so that
//
//	[{"name": "pump", "rpm": 1200}, {"name": "fan", "rpm": 90}]
//
// is reconciled element by element rather than by position.
//
// TextDiff renders a line oriented diff of two trees for people.
package libdiff
