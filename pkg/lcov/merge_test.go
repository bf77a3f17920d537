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

package lcov_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/simmerhq/xcoverage/pkg/lcov"
)

func TestMergeReportsSharedFiles(t *testing.T) {
	a := []*lcov.Record{
		{
			TestName:   "Simmer.app",
			SourceFile: "Sources/App/Store.swift",
			Lines: []lcov.LineData{
				{Line: 4, Count: 1},
				{Line: 7, Count: 0},
			},
		},
	}
	b := []*lcov.Record{
		{
			TestName:   "Simmer.app",
			SourceFile: "Sources/App/Store.swift",
			Lines: []lcov.LineData{
				{Line: 4, Count: 2},
				{Line: 7, Count: 3},
			},
		},
	}
	expected := []*lcov.Record{
		{
			TestName:   "Simmer.app",
			SourceFile: "Sources/App/Store.swift",
			Lines: []lcov.LineData{
				{Line: 4, Count: 3},
				{Line: 7, Count: 3},
			},
		},
	}
	result := lcov.Merge(a, b)
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("Merge returned unexpected records (-want +got):\n%s", diff)
	}
}

func TestMergeReportsDisjointFiles(t *testing.T) {
	a := []*lcov.Record{
		{
			TestName:   "Simmer.app",
			SourceFile: "Sources/App/Store.swift",
			Lines:      []lcov.LineData{{Line: 1, Count: 1}},
		},
	}
	b := []*lcov.Record{
		{
			TestName:   "Simmer.app",
			SourceFile: "Sources/App/RecipeParser.swift",
			Lines:      []lcov.LineData{{Line: 2, Count: 0}},
		},
	}
	expected := []*lcov.Record{
		{
			TestName:   "Simmer.app",
			SourceFile: "Sources/App/Store.swift",
			Lines:      []lcov.LineData{{Line: 1, Count: 1}},
		},
		{
			TestName:   "Simmer.app",
			SourceFile: "Sources/App/RecipeParser.swift",
			Lines:      []lcov.LineData{{Line: 2, Count: 0}},
		},
	}
	result := lcov.Merge(a, b)
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("Merge returned unexpected records (-want +got):\n%s", diff)
	}
}

func TestMergeReportsOrdersLines(t *testing.T) {
	a := []*lcov.Record{
		{
			SourceFile: "Sources/App/Store.swift",
			Lines: []lcov.LineData{
				{Line: 9, Count: 1},
				{Line: 2, Count: 1},
			},
		},
	}
	expected := []*lcov.Record{
		{
			SourceFile: "Sources/App/Store.swift",
			Lines: []lcov.LineData{
				{Line: 2, Count: 1},
				{Line: 9, Count: 1},
			},
		},
	}
	result := lcov.Merge(a)
	if diff := cmp.Diff(expected, result); diff != "" {
		t.Errorf("Merge returned unexpected records (-want +got):\n%s", diff)
	}
}

func TestMergeReportsFirstNonEmptyTestNameWins(t *testing.T) {
	a := []*lcov.Record{{SourceFile: "a.swift"}}
	b := []*lcov.Record{{TestName: "Simmer.app", SourceFile: "a.swift"}}
	result := lcov.Merge(a, b)
	if len(result) != 1 {
		t.Fatalf("expected one record, got %d", len(result))
	}
	if result[0].TestName != "Simmer.app" {
		t.Errorf("expected test name %q, got %q", "Simmer.app", result[0].TestName)
	}
}

func TestMergeNoReports(t *testing.T) {
	if result := lcov.Merge(); len(result) != 0 {
		t.Fatalf("expected no records, got %d", len(result))
	}
}
