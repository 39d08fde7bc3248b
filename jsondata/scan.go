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
	"context"
	"os"
	"path/filepath"

	"github.com/survivalproject/datatool/vfs"

	"bitbucket.org/creachadair/stringset"
	"github.com/pkg/errors"
)

// DefaultDirs are the directories scanned when no explicit paths are given,
// relative to the project root.
var DefaultDirs = []string{
	filepath.Join("data", "json"),
	filepath.Join("data", "mods"),
}

// DiscoverRoot walks up from dir looking for a directory that contains data/,
// returning dir itself when none is found.
func DiscoverRoot(ctx context.Context, dir string) string {
	d := dir
	for {
		if info, err := vfs.Stat(ctx, filepath.Join(d, "data")); err == nil && info.IsDir() {
			return d
		}
		parent := filepath.Dir(d)
		if parent == d {
			return dir
		}
		d = parent
	}
}

// Scan sequentially visits every regular file under roots whose extension is
// in exts, in lexical order. Roots that do not exist are skipped. An error
// from visit aborts the scan; per-file failures that should not halt the walk
// are the callback's to swallow.
func Scan(ctx context.Context, roots []string, exts stringset.Set, visit func(path string) error) error {
	for _, root := range roots {
		if _, err := vfs.Stat(ctx, root); os.IsNotExist(err) {
			continue
		} else if err != nil {
			return errors.Wrapf(err, "scanning %s", root)
		}
		walk := func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.Mode().IsRegular() || !exts.Contains(filepath.Ext(path)) {
				return nil
			}
			return visit(path)
		}
		if err := vfs.Walk(ctx, root, walk); err != nil {
			return errors.Wrapf(err, "scanning %s", root)
		}
	}
	return nil
}
