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

package check

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simmerhq/xcoverage/pkg/lcov/calculation"
	"github.com/simmerhq/xcoverage/pkg/util"
)

const defaultCovThreshold = 80

type flags struct {
	threshold int
	perFile   bool
}

// MakeCommand returns a `check` command.
func MakeCommand() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "check [coverage.lcov]",
		Short: "Check an LCOV report against a coverage threshold.",
		Long: `Print a per-file coverage table for an LCOV report and fail when overall
coverage is below the threshold. With --per-file, any single file below the
threshold fails the check as well.`,
		Run: func(cmd *cobra.Command, args []string) {
			run(flags, cmd, args)
		},
	}
	cmd.Flags().IntVar(&flags.threshold, "threshold", defaultCovThreshold, "coverage threshold percentage")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "fail when any single file is below the threshold")
	return cmd
}

func run(flags *flags, cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Expected exactly one argument: LCOV report path")
		cmd.Usage()
		os.Exit(1)
	}
	if flags.threshold < 0 || flags.threshold > 100 {
		fmt.Fprintln(os.Stderr, "coverage threshold must be an integer between 0 and 100, inclusively")
		os.Exit(1)
	}

	records, err := util.LoadReport(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse LCOV report: %v.\n", err)
		os.Exit(1)
	}

	covList := calculation.ProduceCovList(records)
	content, isCoverageLow := covList.ContentForCheck(flags.threshold, flags.perFile)
	fmt.Println(content)
	if isCoverageLow {
		fmt.Fprintf(os.Stderr, "coverage is below the %d%% threshold\n", flags.threshold)
		os.Exit(1)
	}
}
