// Package rmdir implements recursive directory deletion.
//
// It classifies each target directory, computes an advisory size report
// using fastwalk for parallel traversal, gates non-empty deletions behind
// an interactive confirmation, and optionally terminates processes holding
// open files under the target before removing the tree.
package rmdir
