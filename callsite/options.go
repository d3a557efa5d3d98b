package callsite

import (
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// scope is the instrumentation scope name for OpenTelemetry.
	// This identifies the library in metrics.
	scope = "github.com/kroma-labs/callsite-go/callsite"

	// defaultLabelCacheSize bounds the LRU cache in front of label
	// derivation. Label derivation is pure, so the cache is purely an
	// optimization; the bound keeps memory flat for applications with
	// many distinct call sites.
	defaultLabelCacheSize = 1024
)

// defaultWorkspaceAreas are the directory names treated as workspace
// roots for label derivation, in priority order. "pkg" is deliberately
// absent: it would shadow the module-cache rule on paths like
// /home/x/go/pkg/mod/..., and callers with a pkg/ source tree can add
// it via WithWorkspaceAreas.
var defaultWorkspaceAreas = []string{"internal", "cmd", "api", "app", "web", "src", "lib"}

// config holds the configuration for annotation.
type config struct {
	// WorkspaceAreas are directory names treated as project roots when
	// deriving the file label, checked in declaration order.
	WorkspaceAreas []string

	// SkipPackages are additional package paths whose stack frames are
	// never considered application code. The annotator's own packages
	// are always skipped; wrappers add the pooling machinery they sit
	// on (database/sql, jmoiron/sqlx, ...).
	SkipPackages []string

	// LabelCacheSize is the capacity of the path-to-label LRU cache.
	// Zero or negative disables caching.
	LabelCacheSize int

	// Disabled turns annotation off entirely; queries pass through
	// untouched.
	Disabled bool

	// Logger receives a debug event per annotation decision.
	// Defaults to a no-op logger. Delegate errors are never logged
	// here; error propagation belongs to the underlying library.
	Logger zerolog.Logger

	// MeterProvider is the meter provider to use.
	// If not set, uses the global provider via otel.GetMeterProvider().
	// When no global provider is configured, a no-op meter is used.
	MeterProvider metric.MeterProvider

	// Meter is the meter instance created from MeterProvider.
	Meter metric.Meter

	// Metrics holds the metric instruments.
	Metrics *metrics
}

// newConfig creates a new config with defaults and applies options.
func newConfig(opts ...Option) *config {
	cfg := &config{
		WorkspaceAreas: defaultWorkspaceAreas,
		LabelCacheSize: defaultLabelCacheSize,
		Logger:         zerolog.Nop(),
		MeterProvider:  otel.GetMeterProvider(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	// Initialize the meter after options are applied. Without a global
	// provider this is a no-op implementation: safe, just no data.
	cfg.Meter = cfg.MeterProvider.Meter(scope)

	// Initialize metrics (ignore errors, will just be nil if fails)
	cfg.Metrics, _ = newMetrics(cfg.Meter)

	return cfg
}

// Option configures annotation.
type Option func(*config)

// WithWorkspaceAreas replaces the directory names treated as workspace
// roots for label derivation. Order matters: the first area in the
// list that occurs in a path wins.
//
// Example:
//
//	ann := callsite.New(
//	    callsite.WithWorkspaceAreas("internal", "cmd", "pkg"),
//	)
func WithWorkspaceAreas(areas ...string) Option {
	return func(cfg *config) {
		cfg.WorkspaceAreas = areas
	}
}

// WithSkipPackages adds package paths whose frames are skipped during
// call-site resolution. Matching is by package identity with a proper
// boundary, so "github.com/my/pool" skips that package and its
// subpackages but not "github.com/my/poolmate".
//
// Example:
//
//	ann := callsite.New(
//	    callsite.WithSkipPackages("database/sql", "github.com/jmoiron/sqlx"),
//	)
func WithSkipPackages(pkgs ...string) Option {
	return func(cfg *config) {
		cfg.SkipPackages = append(cfg.SkipPackages, pkgs...)
	}
}

// WithLabelCacheSize sets the capacity of the LRU cache in front of
// label derivation. Zero or negative disables caching; derivation is
// pure, so this only trades CPU for memory.
func WithLabelCacheSize(n int) Option {
	return func(cfg *config) {
		cfg.LabelCacheSize = n
	}
}

// WithDisabled turns annotation off. Queries pass through byte
// identical, which makes it cheap to gate annotation on an environment
// flag without unwiring the driver.
func WithDisabled() Option {
	return func(cfg *config) {
		cfg.Disabled = true
	}
}

// WithLogger sets the logger that receives a debug event for each
// annotation decision. Defaults to zerolog.Nop().
//
// Example:
//
//	ann := callsite.New(
//	    callsite.WithLogger(log.With().Str("component", "callsite").Logger()),
//	)
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger
	}
}

// WithMeterProvider sets a custom meter provider.
// If not called, the global provider from otel.GetMeterProvider() is used.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(cfg *config) {
		cfg.MeterProvider = mp
	}
}
