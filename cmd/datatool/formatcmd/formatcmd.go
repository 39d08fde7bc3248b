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

// Package formatcmd provides the datatool command for rewriting JSON data
// files with canonical formatting.
package formatcmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"

	"github.com/survivalproject/datatool/cmd/datatool/scanflags"
	"github.com/survivalproject/datatool/jsondata"
	"github.com/survivalproject/datatool/util/cmdutil"
	"github.com/survivalproject/datatool/util/log"
	"github.com/survivalproject/datatool/vfs"

	"github.com/google/subcommands"
	"github.com/sergi/go-diff/diffmatchpatch"
)

type formatCommand struct {
	cmdutil.Info
	scan scanflags.Flags

	check bool
	diff  bool
}

// New creates a new subcommand for formatting JSON data files.
func New() subcommands.Command {
	return &formatCommand{
		Info: cmdutil.NewInfo("format", "rewrite JSON data files with canonical formatting",
			"format [--root dir] [--dirs csv] [--ext csv] [--check [--diff]] [path...]"),
	}
}

// SetFlags implements the subcommands interface and provides command-specific
// flags for the format command.
func (c *formatCommand) SetFlags(fs *flag.FlagSet) {
	c.scan.SetFlags(fs)
	fs.BoolVar(&c.check, "check", false, "Report files whose formatting differs without rewriting them")
	fs.BoolVar(&c.diff, "diff", false, "With --check, print the pending changes as a patch")
}

// Execute implements the subcommands interface and reformats every data file
// under the requested roots.
func (c *formatCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if c.diff && !c.check {
		return c.Fail("--diff requires --check")
	}
	var scanned, changed, failed int
	err := jsondata.Scan(ctx, c.scan.Roots(ctx, fs.Args()), c.scan.Extensions(), func(path string) error {
		scanned++
		var differs bool
		var err error
		if c.check {
			differs, err = c.checkFile(ctx, path)
		} else {
			differs, err = jsondata.FormatFile(ctx, path)
		}
		if err != nil {
			log.Errorf("%s: %v", path, err)
			failed++
			return nil
		}
		if differs {
			changed++
		}
		return nil
	})
	if err != nil {
		return c.Fail("scan failed: %v", err)
	}

	if c.check {
		log.Infof("%d files scanned, %d need formatting, %d invalid", scanned, changed, failed)
		if changed > 0 || failed > 0 {
			return subcommands.ExitFailure
		}
	} else {
		log.Infof("%d files scanned, %d rewritten, %d invalid", scanned, changed, failed)
		if failed > 0 {
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// checkFile reports whether path would be rewritten, printing its name (and
// with --diff a patch of the pending change) without touching the file.
func (c *formatCommand) checkFile(ctx context.Context, path string) (bool, error) {
	data, err := vfs.ReadFile(ctx, path)
	if err != nil {
		return false, err
	}
	formatted, err := jsondata.Format(data)
	if err != nil {
		return false, err
	}
	if bytes.Equal(data, formatted) {
		return false, nil
	}
	fmt.Println(path)
	if c.diff {
		dmp := diffmatchpatch.New()
		patches := dmp.PatchMake(string(data), string(formatted))
		fmt.Print(dmp.PatchToText(patches))
	}
	return true, nil
}
