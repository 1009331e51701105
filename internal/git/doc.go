// Package git provides repository access built on go-git, plumbing-level
// object writes for blobs, trees and commits, and a small command runner
// used for the fetch/push operations that are delegated to the git binary.
package git
