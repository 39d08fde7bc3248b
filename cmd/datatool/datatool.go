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

// Binary datatool provides utilities for maintaining the project's JSON data
// files.
//
// Examples:
//
//	# Rewrite all data files with canonical formatting.
//	datatool format
//
//	# Check data files for syntax errors before committing.
//	datatool validate
package main

import (
	"context"
	"flag"
	"os"

	"github.com/survivalproject/datatool/cmd/datatool/formatcmd"
	"github.com/survivalproject/datatool/cmd/datatool/validatecmd"

	"github.com/google/subcommands"
)

func init() {
	subcommands.Register(formatcmd.New(), "")
	subcommands.Register(validatecmd.New(), "")

	subcommands.Register(subcommands.FlagsCommand(), "info")
	subcommands.Register(subcommands.HelpCommand(), "info")
}

func main() {
	flag.Parse()
	ctx := context.Background()

	os.Exit(int(subcommands.Execute(ctx)))
}
