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

package merge

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simmerhq/xcoverage/pkg/lcov"
	"github.com/simmerhq/xcoverage/pkg/util"
)

type flags struct {
	outputFile string
}

// MakeCommand returns a `merge` command.
func MakeCommand() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "merge [files...]",
		Short: "Merge multiple LCOV tracefiles into one.",
		Long: `Merge LCOV tracefiles produced by separate runs of the same suite, for
example simulator and device runs. Sections for the same source file are
unified and execution counts for identical lines are summed.`,
		Run: func(cmd *cobra.Command, args []string) {
			run(flags, cmd, args)
		},
	}
	cmd.Flags().StringVarP(&flags.outputFile, "output", "o", "-", "output file")
	return cmd
}

func run(flags *flags, cmd *cobra.Command, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Expected at least one LCOV report path")
		cmd.Usage()
		os.Exit(1)
	}

	reports := make([][]*lcov.Record, 0, len(args))
	for _, path := range args {
		records, err := util.LoadReport(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse %s: %v.\n", path, err)
			os.Exit(1)
		}
		reports = append(reports, records)
	}

	if err := util.DumpReport(flags.outputFile, lcov.Merge(reports...)); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v.\n", err)
		os.Exit(1)
	}
}
