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

// Package jsondata implements parsing, validation, and canonical formatting
// of the project's JSON data files.
package jsondata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/survivalproject/datatool/vfs"
)

// Indent is the indentation unit for formatted output.
const Indent = "  "

// Format parses data as a single JSON value and re-encodes it canonically:
// 2-space indentation, object keys in sorted order, non-ASCII and HTML
// characters unescaped, and a trailing newline. Number literals pass through
// untouched. Format is idempotent.
func Format(data []byte) ([]byte, error) {
	v, err := decode(data)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", Indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encoding JSON: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatFile rewrites the JSON file at path with canonical formatting,
// reporting whether the file's contents changed. The rewrite goes through a
// temporary file in the same directory so a failed write never truncates
// path.
func FormatFile(ctx context.Context, path string) (bool, error) {
	data, err := vfs.ReadFile(ctx, path)
	if err != nil {
		return false, err
	}
	formatted, err := Format(data)
	if err != nil {
		return false, err
	}
	if bytes.Equal(data, formatted) {
		return false, nil
	}

	tmp := path + ".tmp"
	f, err := vfs.Create(ctx, tmp)
	if err != nil {
		return false, err
	}
	if _, err := f.Write(formatted); err != nil {
		f.Close()
		vfs.Remove(ctx, tmp) // best effort
		return false, err
	}
	if err := f.Close(); err != nil {
		vfs.Remove(ctx, tmp)
		return false, err
	}
	if err := vfs.Rename(ctx, tmp, path); err != nil {
		vfs.Remove(ctx, tmp)
		return false, err
	}
	return true, nil
}
