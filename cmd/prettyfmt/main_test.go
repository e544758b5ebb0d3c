package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestRunStdin(t *testing.T) {
	code, out, errOut := runCLI(t, `{"b":[1,2],"a":null}`)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d (stderr %q)", code, errOut)
	}
	want := "Object {\n  \"b\": Array [\n    1,\n    2,\n  ],\n  \"a\": null,\n}\n"
	if out != want {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", want, out)
	}
}

func TestRunFlags(t *testing.T) {
	path := writeTemp(t, "in.json", `{"b":[1,2,3],"a":{"x":{"y":1}}}`)
	cases := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "min sorted",
			args: []string{"--min", "--sort-keys", path},
			want: "{\"a\": {\"x\": {\"y\": 1}}, \"b\": [1, 2, 3]}\n",
		},
		{
			name: "indent and width",
			args: []string{"--indent", "4", "--max-width", "1", "--max-depth", "2", "--no-color", path},
			want: "Object {\n    \"b\": Array [\n        1,\n        …,\n    ],\n    \"a\": Object {\n        \"x\": [Object],\n    },\n}\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, "", tc.args...)
			if code != 0 {
				t.Fatalf("expected exit 0, got %d (stderr %q)", code, errOut)
			}
			if out != tc.want {
				t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", tc.want, out)
			}
		})
	}
}

func TestRunUnwrap(t *testing.T) {
	code, out, _ := runCLI(t, `{"p":"[1]"}`, "--unwrap", "--min", "-")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != "{\"p\": [1]}\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestRunForceColor(t *testing.T) {
	code, out, _ := runCLI(t, `[true]`, "--force-color", "--palette", "jq")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Fatalf("expected ANSI sequences, got %q", out)
	}
	code, out, _ = runCLI(t, `[true]`, "--force-color", "--no-color")
	if code != 0 || strings.Contains(out, "\x1b[") {
		t.Fatalf("expected plain output with --no-color, got %d %q", code, out)
	}
}

func TestRunListPalettes(t *testing.T) {
	code, out, _ := runCLI(t, "", "--list-palettes")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	for _, name := range []string{"default", "jq", "none"} {
		if !strings.Contains(out, name+"\n") {
			t.Fatalf("expected %q in palette list %q", name, out)
		}
	}
}

func TestRunFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	bad := writeTemp(t, "bad.json", `{"a":`)
	cases := []struct {
		name string
		args []string
		code int
		log  string
	}{
		{name: "unknown flag", args: []string{"--bogus"}, code: 2},
		{name: "bad log level", args: []string{"--log-level", "loud"}, code: 2},
		{name: "negative indent", args: []string{"--indent", "-1"}, code: 2, log: "invalid indent"},
		{name: "missing file", args: []string{missing}, code: 1, log: "format failed"},
		{name: "invalid json", args: []string{bad}, code: 1, log: "bad.json"},
		{name: "unknown palette", args: []string{"--palette", "nope"}, code: 1, log: "unknown palette"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := runCLI(t, "1", tc.args...)
			if code != tc.code {
				t.Fatalf("expected exit %d, got %d (stderr %q)", tc.code, code, errOut)
			}
			if tc.log != "" && !strings.Contains(errOut, tc.log) {
				t.Fatalf("expected %q in stderr, got %q", tc.log, errOut)
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, _, errOut := runCLI(t, "", "--help")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(errOut, "Usage: prettyfmt") {
		t.Fatalf("expected usage text, got %q", errOut)
	}
}
