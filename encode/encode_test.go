package encode_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alpenstock/go-alpenstock/encode"
	"github.com/alpenstock/go-alpenstock/ir"
	"github.com/alpenstock/go-alpenstock/parse"
	"github.com/alpenstock/go-alpenstock/textdiff"

	"github.com/google/go-cmp/cmp"
)

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

func TestEncodeBasic(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("host", ir.FromString("localhost")),
		kv("port", ir.FromInt(8080)),
		kv("ratio", ir.FromFloat(0.5)),
		kv("debug", ir.FromBool(false)),
		kv("strategies", ir.FromSlice([]*ir.Node{
			ir.FromString("fast"),
			ir.FromString("balanced"),
		})),
	})
	want := strings.Join([]string{
		"host: localhost",
		"port: 8080",
		"ratio: 0.5",
		"debug: false",
		"strategies:",
		"  - fast",
		"  - balanced",
	}, "\n") + "\n"
	got := encode.MustString(y)
	if got != want {
		t.Fatalf("encoded text:\n%s", textdiff.Lines(want, got))
	}
}

func TestEncodeComments(t *testing.T) {
	host := ir.FromString("example.com").WithLine("production")
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("host", host),
		kv("port", ir.FromInt(9090)),
	})
	y.Fields[0].Head = []string{"the server", "do not touch"}
	want := strings.Join([]string{
		"# the server",
		"# do not touch",
		"host: example.com # production",
		"port: 9090",
	}, "\n") + "\n"
	got := encode.MustString(y)
	if got != want {
		t.Fatalf("encoded text:\n%s", textdiff.Lines(want, got))
	}
}

func TestEncodeEmptyString(t *testing.T) {
	y := ir.FromKeyVals([]ir.KeyVal{kv("host", ir.FromString(""))})
	want := "host: \"\"\n"
	if got := encode.MustString(y); got != want {
		t.Fatalf("encoded text = %q, want %q", got, want)
	}
}

func TestEncodeQuotedStringKeepsTyping(t *testing.T) {
	n := ir.FromString("8080")
	n.Style = ir.DoubleQuotedStyle
	y := ir.FromKeyVals([]ir.KeyVal{kv("port", n)})
	want := "port: \"8080\"\n"
	if got := encode.MustString(y); got != want {
		t.Fatalf("encoded text = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		"host: example.com\n",
		"host: example.com # production\nport: 9090\n",
		strings.Join([]string{
			"c: 1",
			"a: two",
			"b:",
			"  - x",
			"  - y",
		}, "\n") + "\n",
		strings.Join([]string{
			"name: app",
			"# server list",
			"srv:",
			"  - dest: a.example.com # first",
			"    port: 1001",
			"  - dest: b.example.com",
			"    port: 1002",
		}, "\n") + "\n",
		"quoted: \"8080\"\nsingle: 'x y'\n",
	}
	for _, doc := range docs {
		node, err := parse.ParseString(doc)
		if err != nil {
			t.Fatalf("parse %q: %v", doc, err)
		}
		got := encode.MustString(node)
		if got != doc {
			t.Errorf("round trip of:\n%s\ndiff:\n%s", doc, textdiff.Lines(doc, got))
		}
	}
}

func TestEncodeColors(t *testing.T) {
	c := &encode.Colors{
		Comment: func(f string, a ...any) string { return "C<" + fmt.Sprintf(f, a...) + ">" },
		Field:   func(f string, a ...any) string { return "F<" + fmt.Sprintf(f, a...) + ">" },
		Value:   func(f string, a ...any) string { return "V<" + fmt.Sprintf(f, a...) + ">" },
	}
	y := ir.FromKeyVals([]ir.KeyVal{
		kv("host", ir.FromString("example.com").WithLine("prod")),
	})
	got := encode.MustString(y, encode.EncodeColors(c))
	want := "F<host>:V< example.com>C< # prod>\n"
	if got != want {
		t.Fatalf("colorized = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "unlimited",
			text:  "one two three",
			width: 0,
			want:  []string{"one two three"},
		},
		{
			name:  "simple wrap",
			text:  "one two three four five",
			width: 10,
			want:  []string{"one two", "three four", "five"},
		},
		{
			name:  "long word gets its own line",
			text:  "a verylongunbreakableword b",
			width: 5,
			want:  []string{"a", "verylongunbreakableword", "b"},
		},
		{
			name:  "empty",
			text:  "   ",
			width: 10,
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := cmp.Diff(tt.want, encode.Wrap(tt.text, tt.width)); d != "" {
				t.Fatalf("Wrap (-want +got):\n%s", d)
			}
		})
	}
}
