package callsite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPackagePath(t *testing.T) {
	type args struct {
		fn string
	}

	tests := []struct {
		name     string
		args     args
		wantPath string
	}{
		{
			name:     "given method with pointer receiver, then package path",
			args:     args{fn: "github.com/acme/app/internal/api.(*Handler).LoadUser"},
			wantPath: "github.com/acme/app/internal/api",
		},
		{
			name:     "given plain function, then package path",
			args:     args{fn: "github.com/acme/app/internal/api.loadUser"},
			wantPath: "github.com/acme/app/internal/api",
		},
		{
			name:     "given stdlib function, then package path",
			args:     args{fn: "database/sql.(*DB).QueryContext"},
			wantPath: "database/sql",
		},
		{
			name:     "given main function, then main",
			args:     args{fn: "main.main"},
			wantPath: "main",
		},
		{
			name:     "given anonymous function suffix, then package path",
			args:     args{fn: "github.com/acme/app.TestX.func1"},
			wantPath: "github.com/acme/app",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPath, packagePath(tt.args.fn))
		})
	}
}

func TestFunctionBaseName(t *testing.T) {
	type args struct {
		fn string
	}

	tests := []struct {
		name     string
		args     args
		wantBase string
	}{
		{
			name:     "given plain function, then bare name",
			args:     args{fn: "github.com/acme/app/internal/api.loadUser"},
			wantBase: "loadUser",
		},
		{
			name:     "given method, then receiver and name",
			args:     args{fn: "github.com/acme/app/internal/api.(*Store).Query"},
			wantBase: "(*Store).Query",
		},
		{
			name:     "given closure, then enclosing name with suffix",
			args:     args{fn: "github.com/acme/app.handle.func1"},
			wantBase: "handle.func1",
		},
		{
			name:     "given empty name, then anonymous",
			args:     args{fn: ""},
			wantBase: "anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBase, functionBaseName(tt.args.fn))
		})
	}
}

func TestPackageMatch(t *testing.T) {
	type args struct {
		fn  string
		pkg string
	}

	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "given function in package, then match",
			args: args{fn: "database/sql.(*DB).Query", pkg: "database/sql"},
			want: true,
		},
		{
			name: "given function in subpackage, then match",
			args: args{fn: "database/sql/driver.f", pkg: "database/sql"},
			want: true,
		},
		{
			name: "given sibling package with common prefix, then no match",
			args: args{fn: "github.com/my/poolmate.Query", pkg: "github.com/my/pool"},
			want: false,
		},
		{
			name: "given external test package, then no match",
			args: args{
				fn:  "github.com/kroma-labs/callsite-go/callsite_test.TestResolve",
				pkg: "github.com/kroma-labs/callsite-go/callsite",
			},
			want: false,
		},
		{
			name: "given empty skip package, then no match",
			args: args{fn: "main.main", pkg: ""},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, packageMatch(tt.args.fn, tt.args.pkg))
		})
	}
}

func TestCallerPackage(t *testing.T) {
	t.Run("given call from this package, then returns this package path", func(t *testing.T) {
		assert.Equal(t, "github.com/kroma-labs/callsite-go/callsite", CallerPackage())
	})
}
