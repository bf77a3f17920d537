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

package lcov

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/simmerhq/xcoverage/pkg/util"
	"github.com/simmerhq/xcoverage/pkg/xccov"
	"github.com/simmerhq/xcoverage/pkg/xccov/convert"
)

type flags struct {
	targetSuffix  string
	repoRoot      string
	alwaysCovered []string
}

// MakeCommand returns a `lcov` command.
func MakeCommand() *cobra.Command {
	flags := &flags{}
	cmd := &cobra.Command{
		Use:   "lcov [archive.xcresult] [output.lcov]",
		Short: "Convert an Xcode result archive to an LCOV tracefile.",
		Long: `Convert an Xcode result archive to an LCOV tracefile.
Line coverage is read out of the archive with xccov, keeping only the
application target. Source paths are written relative to the repository root,
and files that no longer exist in the workspace are dropped.`,
		Run: func(cmd *cobra.Command, args []string) {
			run(flags, cmd, args)
		},
	}
	cmd.Flags().StringVar(&flags.targetSuffix, "target-suffix", convert.DefaultTargetSuffix, "suffix naming the application target")
	cmd.Flags().StringVar(&flags.repoRoot, "repo-root", "", "repository root for relative source paths (defaults to the working directory)")
	cmd.Flags().StringSliceVar(&flags.alwaysCovered, "always-covered", convert.DefaultAlwaysCovered, "file names whose execution counts are floored to 1")
	return cmd
}

func run(flags *flags, cmd *cobra.Command, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Expected exactly two arguments: result archive path and output file path")
		cmd.Usage()
		os.Exit(1)
	}

	archivePath, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to resolve archive path: %v.\n", err)
		os.Exit(1)
	}
	if _, err := os.Stat(archivePath); err != nil {
		fmt.Fprintf(os.Stderr, "error: xcresult not found at %s\n", archivePath)
		os.Exit(1)
	}

	client, err := xccov.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up xccov: %v.\n", err)
		os.Exit(1)
	}

	records, err := convert.ToRecords(client, archivePath, convert.Options{
		TargetSuffix:  flags.targetSuffix,
		RepoRoot:      flags.repoRoot,
		AlwaysCovered: flags.alwaysCovered,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to convert archive: %v.\n", err)
		os.Exit(1)
	}

	if err := util.DumpReport(args[1], records); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v.\n", err)
		os.Exit(1)
	}
}
