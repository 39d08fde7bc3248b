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

// Package validatecmd provides the datatool command for syntax-checking JSON
// data files.
package validatecmd

import (
	"context"
	"flag"

	"github.com/survivalproject/datatool/cmd/datatool/scanflags"
	"github.com/survivalproject/datatool/jsondata"
	"github.com/survivalproject/datatool/util/cmdutil"
	"github.com/survivalproject/datatool/util/log"
	"github.com/survivalproject/datatool/vfs"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/subcommands"
)

type validateCommand struct {
	cmdutil.Info
	scan scanflags.Flags
}

// New creates a new subcommand for validating JSON data files.
func New() subcommands.Command {
	return &validateCommand{
		Info: cmdutil.NewInfo("validate", "check that every JSON data file parses",
			"validate [--root dir] [--dirs csv] [--ext csv] [path...]"),
	}
}

// SetFlags implements the subcommands interface and provides command-specific
// flags for the validate command.
func (c *validateCommand) SetFlags(fs *flag.FlagSet) {
	c.scan.SetFlags(fs)
}

// Execute implements the subcommands interface and parses every data file
// under the requested roots, reporting each failure and continuing.
func (c *validateCommand) Execute(ctx context.Context, fs *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	var scanned int
	invalid := stringset.New()
	err := jsondata.Scan(ctx, c.scan.Roots(ctx, fs.Args()), c.scan.Extensions(), func(path string) error {
		scanned++
		data, err := vfs.ReadFile(ctx, path)
		if err != nil {
			log.Errorf("%v", err)
			invalid.Add(path)
			return nil
		}
		if err := jsondata.Check(data); err != nil {
			log.Errorf("%s: %v", path, err)
			invalid.Add(path)
		}
		return nil
	})
	if err != nil {
		return c.Fail("scan failed: %v", err)
	}

	if !invalid.Empty() {
		return c.Fail("%d of %d files invalid", invalid.Len(), scanned)
	}
	log.Infof("%d files valid", scanned)
	return subcommands.ExitSuccess
}
