package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestIssue(t *testing.T) {
	path := writeConfig(t, "app.json", `{"cookie":{"name":"sid","path":"/","timeout":30,"secure":true,"http_only":true}}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"issue", "-config", path, "-env-prefix", "", "-value", "xyz"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}

	out := stdout.String()
	if !strings.HasPrefix(out, "Set-Cookie: sid=xyz; Path=/; Expires=") {
		t.Fatalf("unexpected header %q", out)
	}
	if !strings.HasSuffix(out, "; HttpOnly; Secure\n") {
		t.Fatalf("expected flags in %q", out)
	}
	if strings.Contains(out, "Domain=") {
		t.Fatalf("expected no domain in %q", out)
	}
}

func TestIssueEnvOverride(t *testing.T) {
	t.Setenv("TEST_COOKIE_NAME", "envsid")

	var stdout, stderr bytes.Buffer
	code := run([]string{"issue", "-env-prefix", "TEST_"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.HasPrefix(stdout.String(), "Set-Cookie: envsid=;") {
		t.Fatalf("unexpected header %q", stdout.String())
	}
}

func TestClear(t *testing.T) {
	path := writeConfig(t, "app.ini", "[session]\nCOOKIE_NAME = sid\n")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"clear", "-config", path}, &stdout, &stderr); code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Max-Age=0") {
		t.Fatalf("expected removal header, got %q", stdout.String())
	}
}

func TestMatch(t *testing.T) {
	path := writeConfig(t, "app.json", `{"cookie":{"name":"sid","path":"/app","domain":"example.com"}}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"match", "-config", path, "-origin", "example.com", "-host", "www.example.com", "-path", "/app/x"}, &stdout, &stderr)
	if code != 0 || stdout.String() != "match\n" {
		t.Fatalf("expected match, got %d %q", code, stdout.String())
	}

	stdout.Reset()
	code = run([]string{"match", "-config", path, "-origin", "example.com", "-path", "/other"}, &stdout, &stderr)
	if code != 1 || stdout.String() != "no match\n" {
		t.Fatalf("expected no match, got %d %q", code, stdout.String())
	}
}

func TestMatchRelativePath(t *testing.T) {
	path := writeConfig(t, "app.json", `{"cookie":{"name":"sid","path":""}}`)

	var stdout, stderr bytes.Buffer
	code := run([]string{"match", "-config", path, "-env-prefix", "", "-origin", "example.com", "-path", "foo"}, &stdout, &stderr)
	if code != 0 || stdout.String() != "match\n" {
		t.Fatalf("expected match on origin host, got %d %q", code, stdout.String())
	}

	path = writeConfig(t, "abs.json", `{"cookie":{"name":"sid","path":"/foo"}}`)
	stdout.Reset()
	code = run([]string{"match", "-config", path, "-env-prefix", "", "-origin", "example.com", "-path", "foo"}, &stdout, &stderr)
	if code != 1 || stdout.String() != "no match\n" {
		t.Fatalf("expected path mismatch, got %d %q", code, stdout.String())
	}

	path = writeConfig(t, "rel.json", `{"cookie":{"name":"sid","path":"foo"}}`)
	stdout.Reset()
	stderr.Reset()
	code = run([]string{"match", "-config", path, "-env-prefix", "", "-origin", "example.com", "-path", "/foo/bar"}, &stdout, &stderr)
	if code != 0 || stdout.String() != "match\n" {
		t.Fatalf("expected match, got %d %q: %s", code, stdout.String(), stderr.String())
	}
	if !strings.Contains(stderr.String(), "level=WARN") {
		t.Fatalf("expected relative path warning, got %q", stderr.String())
	}
}

func TestCheckInvalid(t *testing.T) {
	path := writeConfig(t, "app.json", `{"cookie":{"name":"","timeout":-1}}`)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"check", "-config", path}, &stdout, &stderr); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "invalid_config") {
		t.Fatalf("expected invalid_config in log, got %q", stderr.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"bake"}, &stdout, &stderr); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if !strings.Contains(stdout.String(), "Commands:") {
		t.Fatalf("expected usage, got %q", stdout.String())
	}
}
