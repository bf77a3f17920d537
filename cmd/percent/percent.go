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

package percent

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simmerhq/xcoverage/pkg/lcov"
	"github.com/simmerhq/xcoverage/pkg/lcov/calculation"
	"github.com/simmerhq/xcoverage/pkg/util"
)

// MakeCommand returns a `percent` command.
func MakeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "percent [coverage.lcov] [path/to/source]",
		Short: "Print the line coverage percentage of one source file.",
		Long: `Print the percentage of tracked lines of the given source file that were
executed at least once, with two decimals. The file argument is matched
against the end of the recorded paths, so a report recorded under an absolute
root still resolves a repository relative path. A file with no tracked lines
prints 100.00.`,
		Run: run,
	}
}

func run(cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Expected exactly two arguments: LCOV report path and source file path")
		cmd.Usage()
		os.Exit(1)
	}

	records, err := util.LoadReport(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse LCOV report: %v.\n", err)
		os.Exit(1)
	}

	fmt.Println(percentage(records, args[1]))
}

// percentage renders the line coverage of target with two decimals.
func percentage(records []*lcov.Record, target string) string {
	cov := calculation.FileCoverage(records, target)
	return fmt.Sprintf("%.2f", cov.Ratio()*100)
}
