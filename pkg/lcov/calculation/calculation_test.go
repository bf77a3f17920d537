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

package calculation

import (
	"testing"

	"github.com/simmerhq/xcoverage/pkg/lcov"
)

func TestCovList(t *testing.T) {
	records := []*lcov.Record{
		{SourceFile: "a", Lines: []lcov.LineData{
			{Line: 1, Count: 1},
			{Line: 2, Count: 2},
			{Line: 3, Count: 0},
		}},
		{SourceFile: "b", Lines: []lcov.LineData{
			{Line: 1, Count: 1},
			{Line: 2, Count: 0},
		}},
		{SourceFile: "a/c", Lines: []lcov.LineData{}},
		{SourceFile: "a", Lines: []lcov.LineData{
			{Line: 9, Count: 4},
		}},
	}
	covList := ProduceCovList(records)

	if len(covList.Group) == 0 {
		t.Fatalf("covlist is empty\n")
	}

	testCases := []struct {
		covExpected Coverage
		covActual   Coverage
	}{
		{Coverage{Name: "a", CoveredLines: 3, TotalLines: 4},
			covList.Group[0]},
		{Coverage{Name: "b", CoveredLines: 1, TotalLines: 2},
			covList.Group[1]},
		{Coverage{Name: "a/c"},
			covList.Group[2]},
	}

	for _, tc := range testCases {
		if tc.covExpected != tc.covActual {
			t.Fatalf("File level summarized coverage data does not match expectation: "+
				"expected = %v; actual = %v", tc.covExpected, tc.covActual)
		}
	}

	expected := float64(4) / float64(6)
	if expected != covList.Ratio() {
		t.Fatalf("Overall summarized coverage data does not match expectation: "+
			"expected = %v; actual = %v", expected, covList.Ratio())
	}
}

func TestFileCoverage(t *testing.T) {
	records := []*lcov.Record{
		{SourceFile: "/Users/ci/simmer/Sources/App/FileWatcher.swift", Lines: []lcov.LineData{
			{Line: 10, Count: 1},
			{Line: 11, Count: 0},
			{Line: 12, Count: 2},
		}},
		{SourceFile: "Sources/App/RecipeParser.swift", Lines: []lcov.LineData{
			{Line: 3, Count: 0},
			{Line: 4, Count: 0},
		}},
		{SourceFile: "Sources/App/Store.swift", Lines: []lcov.LineData{
			{Line: 5, Count: 1},
		}},
	}

	testCases := []struct {
		name     string
		target   string
		expected Coverage
	}{
		{
			"relative target matches absolute record",
			"Sources/App/FileWatcher.swift",
			Coverage{Name: "Sources/App/FileWatcher.swift", CoveredLines: 2, TotalLines: 3},
		},
		{
			"bare file name",
			"FileWatcher.swift",
			Coverage{Name: "FileWatcher.swift", CoveredLines: 2, TotalLines: 3},
		},
		{
			"exact match",
			"Sources/App/Store.swift",
			Coverage{Name: "Sources/App/Store.swift", CoveredLines: 1, TotalLines: 1},
		},
		{
			"file with no executed lines",
			"Sources/App/RecipeParser.swift",
			Coverage{Name: "Sources/App/RecipeParser.swift", CoveredLines: 0, TotalLines: 2},
		},
		{
			"file absent from the report",
			"Sources/App/Missing.swift",
			Coverage{Name: "Sources/App/Missing.swift"},
		},
		{
			"redundant separators in target",
			"Sources//App/./Store.swift",
			Coverage{Name: "Sources/App/Store.swift", CoveredLines: 1, TotalLines: 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cov := FileCoverage(records, tc.target)
			if cov != tc.expected {
				t.Fatalf("file coverage does not match expectation: expected = %v; actual = %v",
					tc.expected, cov)
			}
		})
	}
}

func TestFileCoverageMergesDuplicateSections(t *testing.T) {
	records := []*lcov.Record{
		{SourceFile: "Sources/App/Store.swift", Lines: []lcov.LineData{{Line: 1, Count: 1}}},
		{SourceFile: "Sources/App/Store.swift", Lines: []lcov.LineData{{Line: 2, Count: 0}}},
	}
	expected := Coverage{Name: "Sources/App/Store.swift", CoveredLines: 1, TotalLines: 2}
	cov := FileCoverage(records, "Sources/App/Store.swift")
	if cov != expected {
		t.Fatalf("file coverage does not match expectation: expected = %v; actual = %v", expected, cov)
	}
}

func TestFileCoverageNoTrackedLines(t *testing.T) {
	cov := FileCoverage(nil, "Sources/App/Ghost.swift")
	if cov.Ratio() != 1 {
		t.Fatalf("incorrect ratio for file with no tracked lines: expected 1, got %f", cov.Ratio())
	}
}
