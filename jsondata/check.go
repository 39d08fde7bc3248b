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

package jsondata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// SyntaxError describes a JSON parse failure at a position within the input.
// Line and Column are 1-based.
type SyntaxError struct {
	Line, Column int
	Err          error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *SyntaxError) Unwrap() error { return e.Err }

// Check parses data as a single JSON value and reports any syntax error with
// its position. Content after the first value (other than whitespace) is an
// error.
func Check(data []byte) error {
	_, err := decode(data)
	return err
}

// decode parses data as a single JSON value. Numbers are kept as their
// literal tokens so that re-encoding never rewrites them.
func decode(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, syntaxError(data, err)
	}
	for i := dec.InputOffset(); i < int64(len(data)); i++ {
		switch data[i] {
		case ' ', '\t', '\r', '\n':
		default:
			line, col := position(data, i+1)
			return nil, &SyntaxError{line, col, fmt.Errorf("invalid character %q after top-level value", data[i])}
		}
	}
	return v, nil
}

// syntaxError converts an encoding/json decode error into a *SyntaxError
// carrying a line and column. Errors without position information are
// returned unchanged.
func syntaxError(data []byte, err error) error {
	var serr *json.SyntaxError
	switch {
	case errors.As(err, &serr):
		line, col := position(data, serr.Offset)
		return &SyntaxError{line, col, serr}
	case errors.Is(err, io.EOF):
		return &SyntaxError{1, 1, errors.New("empty input")}
	case errors.Is(err, io.ErrUnexpectedEOF):
		line, col := position(data, int64(len(data))+1)
		return &SyntaxError{line, col, errors.New("unexpected end of input")}
	}
	return err
}

// position converts a decoder byte offset (the count of bytes read through
// the offending byte) to a 1-based line and column.
func position(data []byte, offset int64) (line, col int) {
	idx := int(offset) - 1
	if idx < 0 {
		idx = 0
	} else if idx > len(data) {
		idx = len(data)
	}
	line = 1
	lineStart := 0
	for i := 0; i < idx; i++ {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, idx - lineStart + 1
}
