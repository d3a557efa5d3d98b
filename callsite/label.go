package callsite

import "strings"

// deriveLabel maps an absolute file path to a stable, human-readable
// label by applying the first matching rule:
//
//  1. The path contains a workspace-area segment from areas (checked
//     in declaration order, leftmost occurrence within the path):
//     the label is "<area>/<remainder>".
//  2. The path points into a dependency (Go module cache or a vendor
//     tree): the label is the module path in bracketed form,
//     "[github.com/jmoiron/sqlx]", or "[dependency]" when the module
//     path cannot be isolated.
//  3. Otherwise: the bare filename.
//
// The function is pure: no I/O, no state. Paths use forward slashes as
// reported by the Go runtime regardless of host OS, so splitting on
// '/' is the contract, not a shortcut.
func deriveLabel(path string, areas []string) string {
	segs := strings.Split(path, "/")

	for _, area := range areas {
		for i, seg := range segs {
			// A bare filename matching an area name is not a root.
			if seg == area && i+1 < len(segs) {
				return strings.Join(segs[i:], "/")
			}
		}
	}

	if label, ok := dependencyLabel(segs); ok {
		return label
	}

	return segs[len(segs)-1]
}

// dependencyLabel recognizes dependency directories in a path split
// into segments and returns the bracketed module label.
//
// Module cache:  /home/x/go/pkg/mod/github.com/jmoiron/sqlx@v1.4.0/db.go
// Vendor tree:   /repo/vendor/github.com/lib/pq/conn.go
func dependencyLabel(segs []string) (string, bool) {
	for i := 0; i < len(segs)-1; i++ {
		switch {
		case segs[i] == "pkg" && segs[i+1] == "mod":
			return moduleCacheLabel(segs[i+2:]), true
		case segs[i] == "vendor":
			return vendorLabel(segs[i+1 : len(segs)-1]), true
		}
	}
	return "", false
}

// moduleCacheLabel extracts the module path from the segments after
// "pkg/mod". The versioned segment ("sqlx@v1.4.0") terminates the
// module path; everything before it belongs to the module path and is
// kept as one unit, slashes included.
func moduleCacheLabel(segs []string) string {
	for i, seg := range segs {
		at := strings.Index(seg, "@")
		if at < 0 {
			continue
		}
		parts := append(append([]string{}, segs[:i]...), seg[:at])
		mod := strings.Join(parts, "/")
		if mod == "" {
			break
		}
		return "[" + mod + "]"
	}
	return "[dependency]"
}

// vendorLabel joins the import path between "vendor" and the filename.
func vendorLabel(segs []string) string {
	if len(segs) == 0 {
		return "[dependency]"
	}
	return "[" + strings.Join(segs, "/") + "]"
}
