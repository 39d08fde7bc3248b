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

// Package scanflags provides the directory-scanning flags shared by the
// datatool subcommands.
package scanflags

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/survivalproject/datatool/jsondata"
	"github.com/survivalproject/datatool/util/flagutil"

	"bitbucket.org/creachadair/stringset"
)

// Flags holds the scan configuration common to the format and validate
// commands.
type Flags struct {
	Root string
	Dirs flagutil.StringList
	Exts flagutil.StringSet
}

// SetFlags registers the scan flags on fs.
func (f *Flags) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&f.Root, "root", "", "Project root directory (defaults to discovery from the working directory)")
	fs.Var(&f.Dirs, "dirs", `Comma-separated directories to scan, relative to the project root (default "data/json,data/mods")`)
	fs.Var(&f.Exts, "ext", `Comma-separated file extensions to scan (default ".json")`)
}

// Roots resolves the directories to scan. Explicit operands are used as
// given; otherwise --dirs (or the default data directories) are resolved
// against the project root.
func (f *Flags) Roots(ctx context.Context, operands []string) []string {
	if len(operands) > 0 {
		return operands
	}
	root := f.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		root = jsondata.DiscoverRoot(ctx, wd)
	}
	dirs := []string(f.Dirs)
	if len(dirs) == 0 {
		dirs = jsondata.DefaultDirs
	}
	roots := make([]string, 0, len(dirs))
	for _, d := range dirs {
		if !filepath.IsAbs(d) {
			d = filepath.Join(root, d)
		}
		roots = append(roots, d)
	}
	return roots
}

// Extensions returns the set of file extensions to scan, each with a leading
// dot, defaulting to .json.
func (f *Flags) Extensions() stringset.Set {
	exts := stringset.New()
	for _, e := range f.Exts.Elements() {
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts.Add(e)
	}
	if exts.Empty() {
		exts.Add(".json")
	}
	return exts
}
