package callsite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpliceMarker(t *testing.T) {
	type args struct {
		query  string
		marker string
	}

	tests := []struct {
		name      string
		args      args
		wantQuery string
	}{
		{
			name: "given plain query, then appends marker with one space",
			args: args{
				query:  "SELECT 1",
				marker: "/*func_name=loadUser,file=api/user.go,line=42*/",
			},
			wantQuery: "SELECT 1 /*func_name=loadUser,file=api/user.go,line=42*/",
		},
		{
			name: "given trailing whitespace, then trims before appending",
			args: args{
				query:  "SELECT 1   \n\t",
				marker: "/*func_name=x,file=y,line=1*/",
			},
			wantQuery: "SELECT 1 /*func_name=x,file=y,line=1*/",
		},
		{
			name: "given already annotated query, then returns it unchanged",
			args: args{
				query:  "SELECT 1 /*func_name=x,file=y,line=1*/",
				marker: "/*func_name=other,file=z,line=2*/",
			},
			wantQuery: "SELECT 1 /*func_name=x,file=y,line=1*/",
		},
		{
			name: "given annotated query with trailing whitespace, then returns it byte identical",
			args: args{
				query:  "SELECT 1 /*func_name=x,file=y,line=1*/  ",
				marker: "/*func_name=other,file=z,line=2*/",
			},
			wantQuery: "SELECT 1 /*func_name=x,file=y,line=1*/  ",
		},
		{
			name: "given unrelated trailing comment, then appends after it",
			args: args{
				query:  "SELECT 1 /* keep me */",
				marker: "/*func_name=x,file=y,line=1*/",
			},
			wantQuery: "SELECT 1 /* keep me */ /*func_name=x,file=y,line=1*/",
		},
		{
			name: "given marker-like text not at the end, then still appends",
			args: args{
				query:  "SELECT /*func_name=x,file=y,line=1*/ 1",
				marker: "/*func_name=z,file=w,line=3*/",
			},
			wantQuery: "SELECT /*func_name=x,file=y,line=1*/ 1 /*func_name=z,file=w,line=3*/",
		},
		{
			name: "given multi-line query, then interior whitespace is untouched",
			args: args{
				query:  "SELECT *\nFROM users\nWHERE id = $1\n",
				marker: "/*func_name=x,file=y,line=1*/",
			},
			wantQuery: "SELECT *\nFROM users\nWHERE id = $1 /*func_name=x,file=y,line=1*/",
		},
		{
			name: "given empty query, then does not panic",
			args: args{
				query:  "",
				marker: "/*func_name=x,file=y,line=1*/",
			},
			wantQuery: " /*func_name=x,file=y,line=1*/",
		},
		{
			name: "given whitespace-only query, then trims to marker",
			args: args{
				query:  "   ",
				marker: "/*func_name=x,file=y,line=1*/",
			},
			wantQuery: " /*func_name=x,file=y,line=1*/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spliceMarker(tt.args.query, tt.args.marker)
			assert.Equal(t, tt.wantQuery, got)
		})
	}
}

func TestSpliceMarker_Preservation(t *testing.T) {
	t.Run("given any query, then output is trimmed input plus space plus marker", func(t *testing.T) {
		marker := "/*func_name=f,file=g,line=7*/"
		queries := []string{
			"SELECT 1",
			"  leading kept",
			"SELECT *\nFROM t  ",
			"UPDATE t SET a = $1 WHERE b = $2",
		}

		for _, q := range queries {
			got := spliceMarker(q, marker)
			trimmed := strings.TrimRight(q, " \t\r\n")
			assert.True(t, strings.HasPrefix(got, trimmed))
			assert.Equal(t, trimmed+" "+marker, got)
		}
	})
}

func TestHasMarker(t *testing.T) {
	type args struct {
		query string
	}

	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "given annotated query, then true",
			args: args{query: "SELECT 1 /*func_name=x,file=y,line=1*/"},
			want: true,
		},
		{
			name: "given annotated query with trailing whitespace, then true",
			args: args{query: "SELECT 1 /*func_name=x,file=y,line=1*/ \n"},
			want: true,
		},
		{
			name: "given plain query, then false",
			args: args{query: "SELECT 1"},
			want: false,
		},
		{
			name: "given non-tracking trailing comment, then false",
			args: args{query: "SELECT 1 /* not ours */"},
			want: false,
		},
		{
			name: "given marker not at the end, then false",
			args: args{query: "SELECT /*func_name=x,file=y,line=1*/ 1"},
			want: false,
		},
		{
			name: "given empty query, then false",
			args: args{query: ""},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasMarker(tt.args.query))
		})
	}
}
