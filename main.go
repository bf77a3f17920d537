/*
Copyright 2026 The Simmer Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/simmerhq/xcoverage/cmd/check"
	"github.com/simmerhq/xcoverage/cmd/junit"
	"github.com/simmerhq/xcoverage/cmd/lcov"
	"github.com/simmerhq/xcoverage/cmd/merge"
	"github.com/simmerhq/xcoverage/cmd/percent"
)

var rootCommand = &cobra.Command{
	Use:   "xcoverage",
	Short: "xcoverage is a tool for converting and summarizing Xcode coverage data.",
}

func run() error {
	rootCommand.AddCommand(check.MakeCommand())
	rootCommand.AddCommand(junit.MakeCommand())
	rootCommand.AddCommand(lcov.MakeCommand())
	rootCommand.AddCommand(merge.MakeCommand())
	rootCommand.AddCommand(percent.MakeCommand())
	return rootCommand.Execute()
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
