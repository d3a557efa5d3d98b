package callsite

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CallSite is the resolved source location of a query invocation.
// Absent fields degrade to sentinels when formatted ("anonymous",
// "unknown", 0) rather than failing.
type CallSite struct {
	// Function is the function or method name with the package path
	// stripped, e.g. "loadUser" or "(*UserStore).Load".
	Function string

	// File is the absolute source file path reported by the runtime.
	File string

	// Line is the 1-based line number, 0 when unknown.
	Line int
}

// Annotator resolves call sites and splices markers into query text.
// It is stateless between calls apart from the read-only configuration
// and the (pure-function) label cache, so a single Annotator is safe
// for concurrent use.
type Annotator struct {
	cfg    *config
	skip   []string
	labels *lru.Cache[string, string]
}

// New creates an Annotator.
func New(opts ...Option) *Annotator {
	cfg := newConfig(opts...)

	a := &Annotator{
		cfg:  cfg,
		skip: append([]string{selfPackage}, cfg.SkipPackages...),
	}
	if cfg.LabelCacheSize > 0 {
		// lru.New only fails for a non-positive size, which is
		// excluded by the guard above.
		a.labels, _ = lru.New[string, string](cfg.LabelCacheSize)
	}
	return a
}

// Annotate returns query with a call-site marker appended.
//
// The query is returned unchanged when annotation is disabled, when no
// application frame can be resolved, or when the text already carries
// a marker. Annotate never fails and never alters anything but the
// trailing whitespace of the text it decorates.
func (a *Annotator) Annotate(ctx context.Context, query string) string {
	if a.cfg.Disabled {
		return query
	}

	site, ok := a.Resolve()
	if !ok {
		a.cfg.Metrics.recordAnnotation(ctx, false)
		a.cfg.Logger.Debug().Msg("query annotation skipped: no call site")
		return query
	}

	// spliceMarker is a no-op on already-annotated text; only an
	// actual append counts as annotated.
	out := spliceMarker(query, a.Marker(site))
	spliced := out != query
	a.cfg.Metrics.recordAnnotation(ctx, spliced)

	if spliced {
		if e := a.cfg.Logger.Debug(); e.Enabled() {
			e.Str("func_name", site.Function).
				Str("file", a.DeriveLabel(site.File)).
				Int("line", site.Line).
				Msg("query annotated")
		}
	}

	return out
}

// Marker formats the inline comment for a resolved call site:
//
//	/*func_name=<name>,file=<label>,line=<line>*/
//
// Missing fields fall back to "anonymous", "unknown" and 0.
func (a *Annotator) Marker(site CallSite) string {
	name := site.Function
	if name == "" {
		name = "anonymous"
	}

	label := "unknown"
	if site.File != "" {
		label = a.DeriveLabel(site.File)
	}

	return fmt.Sprintf("%s%s,file=%s,line=%d%s", markerOpen, name, label, site.Line, markerClose)
}

// DeriveLabel maps an absolute file path to its human-readable label,
// consulting the LRU cache when one is configured. Same path, same
// configuration, same label, always.
func (a *Annotator) DeriveLabel(path string) string {
	if a.labels != nil {
		if label, ok := a.labels.Get(path); ok {
			return label
		}
	}

	label := deriveLabel(path, a.cfg.WorkspaceAreas)

	if a.labels != nil {
		a.labels.Add(path, label)
	}
	return label
}
