// Package ir provides the value tree shared by every other package in
// this module.
//
// # Overview
//
// A tree is made of *Node values.  A Node is a tagged union whose Type
// selects which payload field is live:
//
//   - NullType: no payload; distinct from a missing key, which is nil
//   - BoolType: Bool
//   - IntegerType: Int, an Integer of width 1, 2, 4 or 8 bytes, signed or
//     unsigned
//   - DoubleType: Double, a float64 with an optional decimal precision
//   - StringType: String, in stored form (see below)
//   - ArrayType: Values
//   - MapType: Fields and Values, parallel slices; Fields is the key
//     insertion order
//
// # Ownership
//
// A container owns its children exclusively.  Clone makes deep copies and
// every tree algorithm in this module builds results from fresh nodes, so
// no node is ever reachable from two parents.  The insertion methods
// (Push, Append, Set, Replace, ReplaceAt) take ownership of their argument.
//
// # Strings
//
// String payloads are kept in a stored form in which '"', '%' and NUL
// appear as %22, %25 and %00.  FromString escapes raw text into this form,
// FromEscaped takes stored text as is, and Text decodes any %XX sequence.
//
// # Numbers
//
// Integer arithmetic (Integer.Do, Node.Do) is exact and then saturates to
// the declared width and signedness.  A Double with a precision P in 0..16
// only changes on assignment when the new value moves by at least 0.75
// units of the last digit, and is then rounded to P digits.
//
// # Paths
//
// FindElement, FindCaseElement, Append and Set take '/' separated key
// paths with optional ":N" array indices, such as "x:1/y".
//
// # Related Packages
//
//   - github.com/Hertig-family/MicroCPPON/parse - text to trees
//   - github.com/Hertig-family/MicroCPPON/encode - trees to text
//   - github.com/Hertig-family/MicroCPPON/libdiff - diff, merge and update
package ir
