package settings_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alpenstock/go-alpenstock/settings"
	"github.com/alpenstock/go-alpenstock/textdiff"
)

type AppSettings struct {
	settings.Origin

	Host              string   `yaml:"host" comment:"The hostname of the server."`
	Port              int      `yaml:"port" comment:"The port number the server listens on."`
	AllowedStrategies []string `yaml:"allowed_strategies" comment:"List of allowed strategies for processing. Choose from 'fast', 'balanced', or 'unsafe'."`
}

func defaultApp() *AppSettings {
	return &AppSettings{
		Host:              "localhost",
		Port:              8080,
		AllowedStrategies: []string{"fast", "balanced"},
	}
}

type ServerSettings struct {
	settings.Origin

	Dest string `yaml:"dest"`
	Port int    `yaml:"port"`
}

type ClusterSettings struct {
	settings.Origin

	Name string           `yaml:"name"`
	Srv  []ServerSettings `yaml:"srv"`
}

func saveString(t *testing.T, v any, opts ...settings.Option) string {
	t.Helper()
	var buf bytes.Buffer
	if err := settings.Save(&buf, v, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func requireText(t *testing.T, want, got string) {
	t.Helper()
	if got != want {
		t.Fatalf("document text:\n%s", textdiff.Lines(want, got))
	}
}

func TestSaveDefaults(t *testing.T) {
	want := strings.Join([]string{
		"host: localhost",
		"port: 8080",
		"allowed_strategies:",
		"  - fast",
		"  - balanced",
	}, "\n") + "\n"
	requireText(t, want, saveString(t, defaultApp()))
}

func TestLoadEmptyKeepsDefaults(t *testing.T) {
	s := defaultApp()
	if err := settings.Load("", s); err != nil {
		t.Fatal(err)
	}
	if s.Host != "localhost" || s.Port != 8080 {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	s := defaultApp()
	if err := settings.Load("port: 9090\n", s); err != nil {
		t.Fatal(err)
	}
	if s.Port != 9090 {
		t.Fatalf("port = %d", s.Port)
	}
	if s.Host != "localhost" {
		t.Fatalf("host = %q", s.Host)
	}
}

func TestFillDefaultComments(t *testing.T) {
	want := strings.Join([]string{
		"# The hostname of the server.",
		"host: localhost",
		"# The port number the server listens on.",
		"port: 8080",
		"# List of allowed strategies for processing. Choose from 'fast', 'balanced', or 'unsafe'.",
		"allowed_strategies:",
		"  - fast",
		"  - balanced",
	}, "\n") + "\n"
	requireText(t, want, saveString(t, defaultApp(), settings.FillDefaultComments()))
}

func TestFillKeepsUserComment(t *testing.T) {
	in := strings.Join([]string{
		"host: example.com",
		"# my note about port",
		"port: 9090",
	}, "\n") + "\n"
	s := defaultApp()
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	got := saveString(t, s, settings.FillDefaultComments())
	if !strings.Contains(got, "# my note about port\nport: 9090\n") {
		t.Errorf("user comment lost:\n%s", got)
	}
	if strings.Contains(got, "The port number") {
		t.Errorf("annotation replaced user comment:\n%s", got)
	}
	if !strings.Contains(got, "# The hostname of the server.\nhost: example.com\n") {
		t.Errorf("annotation missing on uncommented field:\n%s", got)
	}
}

func TestCommentWidth(t *testing.T) {
	const width = 50
	got := saveString(t, defaultApp(),
		settings.FillDefaultComments(), settings.CommentWidth(width))
	var texts []string
	for _, ln := range strings.Split(got, "\n") {
		if text, ok := strings.CutPrefix(ln, "# "); ok {
			if len(text) > width {
				t.Errorf("comment line over %d columns: %q", width, text)
			}
			texts = append(texts, text)
		}
	}
	if len(texts) < 4 {
		t.Fatalf("long annotation not wrapped:\n%s", got)
	}
	joined := strings.Join(texts, " ")
	if !strings.Contains(joined, "Choose from 'fast', 'balanced', or 'unsafe'.") {
		t.Errorf("wrapping broke words:\n%s", got)
	}
}

func TestCommentsSurviveMutation(t *testing.T) {
	in := strings.Join([]string{
		"# app config",
		"host: example.com # production",
		"port: 9090",
		"allowed_strategies:",
		"  - fast",
	}, "\n") + "\n"
	s := defaultApp()
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	s.Port = 9091
	want := strings.Replace(in, "port: 9090", "port: 9091", 1)
	requireText(t, want, saveString(t, s))
}

func TestRoundTripIdentity(t *testing.T) {
	in := strings.Join([]string{
		"# app config",
		"host: example.com # production",
		"port: 9090",
		"allowed_strategies:",
		"  - fast",
		"  - unsafe",
	}, "\n") + "\n"
	s := defaultApp()
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	requireText(t, in, saveString(t, s))
	// The reconciled tree becomes the new origin; a second save is stable.
	requireText(t, in, saveString(t, s))
}

func TestKeyOrderStability(t *testing.T) {
	type orderSettings struct {
		settings.Origin

		A string `yaml:"a"`
		B string `yaml:"b"`
		C string `yaml:"c"`
		D string `yaml:"d"`
	}
	s := &orderSettings{D: "four"}
	if err := settings.Load("c: three\na: one\nb: two\n", s); err != nil {
		t.Fatal(err)
	}
	// Document order wins for existing keys; new keys append after.
	want := "c: three\na: one\nb: two\nd: four\n"
	requireText(t, want, saveString(t, s))
}

func TestStructListCommentsFollowReorder(t *testing.T) {
	in := strings.Join([]string{
		"name: app",
		"srv:",
		"  - dest: a.example.com # first",
		"    port: 1001",
		"  - dest: b.example.com # second",
		"    port: 1002",
	}, "\n") + "\n"
	s := &ClusterSettings{}
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	s.Srv[0], s.Srv[1] = s.Srv[1], s.Srv[0]
	want := strings.Join([]string{
		"name: app",
		"srv:",
		"  - dest: b.example.com # second",
		"    port: 1002",
		"  - dest: a.example.com # first",
		"    port: 1001",
	}, "\n") + "\n"
	requireText(t, want, saveString(t, s))
}

func TestStructListInsertAtFront(t *testing.T) {
	in := strings.Join([]string{
		"name: app",
		"srv:",
		"  - dest: a.example.com # first",
		"    port: 1001",
	}, "\n") + "\n"
	s := &ClusterSettings{}
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	s.Srv = append([]ServerSettings{{Dest: "c.example.com", Port: 1000}}, s.Srv...)
	want := strings.Join([]string{
		"name: app",
		"srv:",
		"  - dest: c.example.com",
		"    port: 1000",
		"  - dest: a.example.com # first",
		"    port: 1001",
	}, "\n") + "\n"
	requireText(t, want, saveString(t, s))
}

func TestListLevelCommentKept(t *testing.T) {
	in := strings.Join([]string{
		"name: app",
		"# the server list",
		"srv:",
		"  - dest: a.example.com",
		"    port: 1001",
	}, "\n") + "\n"
	s := &ClusterSettings{}
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	s.Srv = append(s.Srv, ServerSettings{Dest: "b.example.com", Port: 1002})
	got := saveString(t, s)
	if !strings.Contains(got, "# the server list\nsrv:\n") {
		t.Fatalf("list comment lost:\n%s", got)
	}
}

func TestScalarListItemCommentsDropped(t *testing.T) {
	in := strings.Join([]string{
		"allowed_strategies:",
		"  - fast # quick",
		"  - balanced",
	}, "\n") + "\n"
	s := defaultApp()
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	// Scalar items have no identity, so per-item comments do not survive.
	// Missing keys append after the document's own, in declaration order.
	want := strings.Join([]string{
		"allowed_strategies:",
		"  - fast",
		"  - balanced",
		"host: localhost",
		"port: 8080",
	}, "\n") + "\n"
	requireText(t, want, saveString(t, s))
}

func TestNestedSettings(t *testing.T) {
	type connSettings struct {
		settings.Origin

		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	}
	type svcSettings struct {
		settings.Origin

		Name string       `yaml:"name"`
		Conn connSettings `yaml:"conn"`
	}
	in := strings.Join([]string{
		"name: x",
		"conn:",
		"  host: db.example.com # primary",
		"  port: 5432",
	}, "\n") + "\n"
	s := &svcSettings{}
	if err := settings.Load(in, s); err != nil {
		t.Fatal(err)
	}
	s.Conn.Port = 5433
	want := strings.Replace(in, "port: 5432", "port: 5433", 1)
	requireText(t, want, saveString(t, s))

	// Replacing the nested value wholesale discards its origin, so the
	// sub-document synthesizes fresh without the old comments.
	s.Conn = connSettings{Host: "other"}
	want = strings.Join([]string{
		"name: x",
		"conn:",
		"  host: other",
		"  port: 0",
	}, "\n") + "\n"
	requireText(t, want, saveString(t, s))
}

func TestExpandEnv(t *testing.T) {
	env := map[string]string{"APP_PORT": "8081"}
	lookup := func(name string) string { return env[name] }
	s := defaultApp()
	in := "host: ${NOPE}\nport: ${APP_PORT}\n"
	if err := settings.Load(in, s, settings.ExpandEnvFrom(lookup)); err != nil {
		t.Fatal(err)
	}
	if s.Port != 8081 {
		t.Fatalf("port = %d", s.Port)
	}
	if s.Host != "" {
		t.Fatalf("host = %q", s.Host)
	}
	got := saveString(t, s)
	if strings.Contains(got, "${") {
		t.Errorf("placeholder survived save:\n%s", got)
	}
	// Substitution is irreversible; the resolved empty string is written.
	if !strings.Contains(got, "host: \"\"\n") {
		t.Errorf("empty host not written:\n%s", got)
	}
}

func TestExpandEnvFromEnvironment(t *testing.T) {
	t.Setenv("ALPENSTOCK_TEST_HOST", "fromenv")
	s := defaultApp()
	err := settings.Load("host: ${ALPENSTOCK_TEST_HOST}\n", s, settings.ExpandEnv())
	if err != nil {
		t.Fatal(err)
	}
	if s.Host != "fromenv" {
		t.Fatalf("host = %q", s.Host)
	}
}

func TestRequiredMissing(t *testing.T) {
	type dbSettings struct {
		settings.Origin

		Name string `yaml:"name" settings:"required"`
	}
	type rootSettings struct {
		settings.Origin

		Name string     `yaml:"name" settings:"required"`
		DB   dbSettings `yaml:"db"`
	}
	tests := []struct {
		name string
		in   string
		path string
	}{
		{"top level", "db:\n  name: d\n", "name"},
		{"nested", "name: x\ndb: {}\n", "db.name"},
		{"empty document", "", "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := settings.Load(tt.in, &rootSettings{})
			if !errors.Is(err, settings.ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
			var verr *settings.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %v is not a *ValidationError", err)
			}
			if verr.Path != tt.path {
				t.Errorf("path = %q, want %q", verr.Path, tt.path)
			}
		})
	}
}

func TestTypeMismatch(t *testing.T) {
	s := defaultApp()
	err := settings.Load("port: not-a-number\n", s)
	if !errors.Is(err, settings.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
	var verr *settings.ValidationError
	if !errors.As(err, &verr) || verr.Path != "port" {
		t.Fatalf("error = %v, want path %q", err, "port")
	}
}

func TestQuotedScalarCoercion(t *testing.T) {
	s := defaultApp()
	if err := settings.Load("port: \"9191\"\n", s); err != nil {
		t.Fatal(err)
	}
	if s.Port != 9191 {
		t.Fatalf("port = %d", s.Port)
	}
}

func TestParseError(t *testing.T) {
	err := settings.Load("host: [unclosed\n", defaultApp())
	if !errors.Is(err, settings.ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
}

func TestLoadSources(t *testing.T) {
	const in = "host: example.com\n"
	sources := map[string]any{
		"bytes":  []byte(in),
		"string": in,
		"reader": strings.NewReader(in),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			s := defaultApp()
			if err := settings.Load(src, s); err != nil {
				t.Fatal(err)
			}
			if s.Host != "example.com" {
				t.Fatalf("host = %q", s.Host)
			}
		})
	}
}

func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := settings.SaveFile(path, defaultApp()); err != nil {
		t.Fatal(err)
	}
	s := &AppSettings{}
	if err := settings.LoadFile(path, s); err != nil {
		t.Fatal(err)
	}
	if s.Host != "localhost" || s.Port != 8080 {
		t.Fatalf("reloaded = %+v", s)
	}
	if len(s.AllowedStrategies) != 2 || s.AllowedStrategies[0] != "fast" {
		t.Fatalf("reloaded strategies = %v", s.AllowedStrategies)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	requireText(t, string(data), saveString(t, s))
}

func TestDocumentRejectsNonStruct(t *testing.T) {
	if _, err := settings.Document(42); err == nil {
		t.Fatal("expected error")
	}
	var s *AppSettings
	if _, err := settings.Document(s); err == nil {
		t.Fatal("expected error for nil pointer")
	}
}

func TestLoadRejectsNonMapping(t *testing.T) {
	err := settings.Load("- a\n- b\n", defaultApp())
	if !errors.Is(err, settings.ErrValidation) {
		t.Fatalf("error = %v, want ErrValidation", err)
	}
}
