package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/pml/cli/cmd"
	"github.com/ardnew/pml/log"
	"github.com/ardnew/pml/pml"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want config
	}{
		{
			name: "flat",
			doc:  "menu: menu.yaml\nlog-level: debug\n",
			want: config{"menu": "menu.yaml", "log-level": "debug"},
		},
		{
			name: "nested_and_underscores",
			doc: `log:
  level: trace
  time_layout: none
  pretty: false
render:
  indent: 4
`,
			want: config{
				"log-level":       "trace",
				"log-time-layout": "none",
				"log-pretty":      false,
				"render-indent":   "4",
			},
		},
		{
			name: "sequence",
			doc:  "source: [a.pml, b.pml]\n",
			want: config{"source": []any{"a.pml", "b.pml"}},
		},
		{
			name: "empty",
			doc:  "",
			want: config{},
		},
		{
			name: "invalid_ignored",
			doc:  "log: [unclosed\n",
			want: config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolve(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}

			if diff := cmp.Diff(tt.want, r); diff != "" {
				t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := config{"log-level": "debug"}

	v, err := cfg.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "log-level"}})
	if err != nil || v != "debug" {
		t.Errorf("Resolve(log-level) = %v, %v", v, err)
	}

	v, err = cfg.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: "menu"}})
	if err != nil || v != nil {
		t.Errorf("Resolve(menu) = %v, %v; want nil", v, err)
	}
}

func TestScanBool(t *testing.T) {
	tests := []struct {
		value    string
		assigned bool
		negated  bool
		want     bool
		ok       bool
	}{
		{"", false, false, true, true},
		{"", false, true, false, true},
		{"false", true, false, false, true},
		{"true", true, true, false, true},
		{"0", true, true, true, true},
		{"maybe", true, false, false, false},
	}

	for _, tt := range tests {
		got, ok := scanBool(tt.value, tt.assigned, tt.negated)
		if got != tt.want || ok != tt.ok {
			t.Errorf("scanBool(%q, %v, %v) = %v, %v; want %v, %v",
				tt.value, tt.assigned, tt.negated, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLogConfig_Scan(t *testing.T) {
	defer log.SetDefault(log.Default())

	tests := []struct {
		name string
		args []string
		want logConfig
	}{
		{
			name: "separate_values",
			args: []string{"check", "--log-level", "debug", "--log-format", "text", "x.pml"},
			want: logConfig{Level: "debug", Format: "text", Pretty: true},
		},
		{
			name: "assigned_values",
			args: []string{"--log-level=trace", "--log-caller", "--no-log-pretty"},
			want: logConfig{Level: "trace", Caller: true},
		},
		{
			name: "explicit_bool",
			args: []string{"--log-pretty=false", "--log-caller=true"},
			want: logConfig{Caller: true},
		},
		{
			name: "stops_at_terminator",
			args: []string{"--log-level=warn", "--", "--log-format=text"},
			want: logConfig{Level: "warn", Pretty: true},
		},
		{
			name: "value_not_consumed_when_flag_follows",
			args: []string{"--log-level", "--log-caller"},
			want: logConfig{Caller: true, Pretty: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := logConfig{Pretty: true}
			f.scan(tt.args)

			if diff := cmp.Diff(tt.want, f); diff != "" {
				t.Errorf("scan() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJoinSeq(t *testing.T) {
	if got, want := joinSeq(log.Formats()), "json,text"; got != want {
		t.Errorf("joinSeq(Formats()) = %q, want %q", got, want)
	}
}

func TestCLI_Processor(t *testing.T) {
	dir := t.TempDir()

	menu := filepath.Join(dir, "menu.yaml")
	if err := os.WriteFile(menu, []byte("sizes: [personal]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("sauces: [red]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	proc, err := (&CLI{}).processor(context.Background())
	if err != nil {
		t.Fatalf("processor() error = %v", err)
	}

	if proc.Catalog() != pml.DefaultCatalog() {
		t.Error("processor() without --menu did not use the default catalog")
	}

	proc, err = (&CLI{Menu: menu}).processor(context.Background())
	if err != nil {
		t.Fatalf("processor() error = %v", err)
	}

	if diff := cmp.Diff([]string{"personal"}, proc.Catalog().Sizes); diff != "" {
		t.Errorf("Sizes mismatch (-want +got):\n%s", diff)
	}

	_, err = (&CLI{Menu: bad}).processor(context.Background())
	if !errors.Is(err, cmd.ErrLoadMenu) || !errors.Is(err, pml.ErrInvalidCatalog) {
		t.Errorf("processor() error = %v, want ErrLoadMenu wrapping ErrInvalidCatalog", err)
	}
}
