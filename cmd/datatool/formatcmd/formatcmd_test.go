/*
 * Copyright 2025 The Survival Project Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package formatcmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/subcommands"
)

func run(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	cmd := New()
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	cmd.SetFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return cmd.Execute(context.Background(), fs)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	return string(data)
}

func TestFormatRewrites(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data", "json", "a.json")
	writeFile(t, path, `{"a":1}`)

	if got := run(t, "--root", root); got != subcommands.ExitSuccess {
		t.Errorf("format: got status %v, want success", got)
	}
	if diff := cmp.Diff("{\n  \"a\": 1\n}\n", readFile(t, path)); diff != "" {
		t.Errorf("format: (-want, +got): %v", diff)
	}
}

func TestFormatContinuesPastInvalid(t *testing.T) {
	root := t.TempDir()
	good := filepath.Join(root, "data", "json", "a.json")
	bad := filepath.Join(root, "data", "json", "b.json")
	writeFile(t, good, `{"a":1}`)
	writeFile(t, bad, `{a:1}`)

	if got := run(t, "--root", root); got != subcommands.ExitFailure {
		t.Errorf("format: got status %v, want failure", got)
	}
	// The invalid file must not block its siblings or be modified.
	if diff := cmp.Diff("{\n  \"a\": 1\n}\n", readFile(t, good)); diff != "" {
		t.Errorf("format: valid sibling (-want, +got): %v", diff)
	}
	if got := readFile(t, bad); got != `{a:1}` {
		t.Errorf("format: invalid file modified: got %q", got)
	}
}

func TestFormatCheck(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "data", "json", "a.json")
	writeFile(t, path, `{"a":1}`)

	if got := run(t, "--root", root, "--check"); got != subcommands.ExitFailure {
		t.Errorf("format --check: got status %v, want failure", got)
	}
	if got := readFile(t, path); got != `{"a":1}` {
		t.Errorf("format --check: file modified: got %q", got)
	}

	writeFile(t, path, "{\n  \"a\": 1\n}\n")
	if got := run(t, "--root", root, "--check"); got != subcommands.ExitSuccess {
		t.Errorf("format --check: got status %v, want success", got)
	}
}

func TestFormatCheckDiff(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "data", "json", "a.json"), `{"a":1}`)

	if got := run(t, "--root", root, "--check", "--diff"); got != subcommands.ExitFailure {
		t.Errorf("format --check --diff: got status %v, want failure", got)
	}
}

func TestFormatDiffRequiresCheck(t *testing.T) {
	if got := run(t, "--root", t.TempDir(), "--diff"); got != subcommands.ExitFailure {
		t.Errorf("format --diff: got status %v, want failure", got)
	}
}

func TestFormatExplicitPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")
	writeFile(t, path, `[1,2]`)

	if got := run(t, dir); got != subcommands.ExitSuccess {
		t.Errorf("format %s: got status %v, want success", dir, got)
	}
	if diff := cmp.Diff("[\n  1,\n  2\n]\n", readFile(t, path)); diff != "" {
		t.Errorf("format: (-want, +got): %v", diff)
	}
}
