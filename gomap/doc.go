// Package gomap bridges value trees and plain Go values.
//
// ToAny and FromAny convert to and from the usual decoded-JSON shapes.
// ToOrdered keeps map order by producing yaml.MapSlice, which is what
// the YAML and JSON helpers use.  ApplyMergePatch and ApplyPatch run
// RFC 7396 and RFC 6902 patches over a tree.
package gomap
