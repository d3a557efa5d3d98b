package callsite

import (
	"runtime"
	"strings"
)

// maxStackDepth bounds the frames captured per resolution. Wrapper
// layers sit close to the top of the stack, so the application frame
// is found within the first few entries in practice.
const maxStackDepth = 64

// selfPackage is this package's import path, computed at init so the
// resolver can skip its own frames without hardcoding the module path.
var selfPackage = CallerPackage()

// CallerPackage returns the package path of the function that calls
// it. Wrapper packages use it to register themselves for frame
// skipping:
//
//	var selfPackage = callsite.CallerPackage() // at package level
//	ann := callsite.New(callsite.WithSkipPackages(selfPackage))
func CallerPackage() string {
	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return ""
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return ""
	}
	return packagePath(fn.Name())
}

// Resolve walks the stack from the innermost frame outward and returns
// the first frame that belongs to application code: it has a source
// file, and its package is neither this module's annotation layer nor
// one of the configured skip packages.
//
// Skipping is by package identity rather than a fixed frame count, so
// a variable number of wrapper frames (one for pool-level queries,
// more for acquired-connection or sqlx-extension queries) needs no
// special casing. Resolve never panics; when every frame is filtered
// out it reports false and annotation degrades to passthrough.
func (a *Annotator) Resolve() (CallSite, bool) {
	pcs := make([]uintptr, maxStackDepth)
	// Skip runtime.Callers and Resolve itself; the remaining wrapper
	// frames are filtered by identity below.
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return CallSite{}, false
	}

	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != "" && !a.skipFrame(frame.Function) {
			return CallSite{
				Function: functionBaseName(frame.Function),
				File:     frame.File,
				Line:     frame.Line,
			}, true
		}
		if !more {
			return CallSite{}, false
		}
	}
}

// skipFrame reports whether a frame's fully qualified function name
// belongs to a skipped package.
func (a *Annotator) skipFrame(fn string) bool {
	if fn == "" {
		return true
	}
	for _, pkg := range a.skip {
		if packageMatch(fn, pkg) {
			return true
		}
	}
	return false
}

// packageMatch reports whether the qualified function name fn belongs
// to pkg or one of its subpackages. The boundary check keeps
// "github.com/my/pool" from matching "github.com/my/poolmate" and,
// importantly, keeps a package from matching its external test
// package ("<pkg>_test").
func packageMatch(fn, pkg string) bool {
	if pkg == "" || !strings.HasPrefix(fn, pkg) {
		return false
	}
	rest := fn[len(pkg):]
	return rest == "" || rest[0] == '.' || rest[0] == '/'
}

// packagePath extracts the package path from a fully qualified
// function name, e.g.
//
//	"github.com/acme/app/internal/api.(*Handler).LoadUser" -> "github.com/acme/app/internal/api"
//	"database/sql.(*DB).QueryContext"                      -> "database/sql"
//	"main.main"                                            -> "main"
func packagePath(fn string) string {
	slash := strings.LastIndex(fn, "/")
	dot := strings.Index(fn[slash+1:], ".")
	if dot < 0 {
		return fn
	}
	return fn[:slash+1+dot]
}

// functionBaseName strips the package path from a fully qualified
// function name, keeping the receiver for methods:
//
//	"github.com/acme/app/internal/api.loadUser"       -> "loadUser"
//	"github.com/acme/app/internal/api.(*Store).Query" -> "(*Store).Query"
//
// An unresolvable name yields "anonymous".
func functionBaseName(fn string) string {
	if slash := strings.LastIndex(fn, "/"); slash >= 0 {
		fn = fn[slash+1:]
	}
	if dot := strings.Index(fn, "."); dot >= 0 {
		fn = fn[dot+1:]
	}
	if fn == "" {
		return "anonymous"
	}
	return fn
}
