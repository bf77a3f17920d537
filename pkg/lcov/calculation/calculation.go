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

// Package calculation summarizes LCOV records into per-file line coverage.
package calculation

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/simmerhq/xcoverage/pkg/lcov"
)

// ProduceCovList summarizes records and returns the result, one Coverage per
// source file. Sections sharing a source file are folded together, keeping
// first seen order.
func ProduceCovList(records []*lcov.Record) *CoverageList {
	covList := newCoverageList("summary")
	index := map[string]int{}
	for _, record := range records {
		i, ok := index[record.SourceFile]
		if !ok {
			i = len(covList.Group)
			index[record.SourceFile] = i
			covList.Group = append(covList.Group, Coverage{Name: record.SourceFile})
		}
		summarizeLines(record.Lines, &covList.Group[i])
	}
	return covList
}

func summarizeLines(lines []lcov.LineData, cov *Coverage) {
	for _, lineData := range lines {
		cov.TotalLines++
		if lineData.Count > 0 {
			cov.CoveredLines++
		}
	}
}

// FileCoverage summarizes the records belonging to a single source file.
// Matching is a plain suffix comparison on normalized slash-separated paths,
// so a report recorded under an absolute root still matches a repository
// relative target. With no matching records the result has no tracked lines
// and therefore a ratio of 1.
func FileCoverage(records []*lcov.Record, target string) Coverage {
	normalized := normalizePath(target)
	cov := Coverage{Name: normalized}
	for _, record := range records {
		if !strings.HasSuffix(normalizePath(record.SourceFile), normalized) {
			continue
		}
		summarizeLines(record.Lines, &cov)
	}
	return cov
}

// normalizePath converts p to slash-separated form and collapses redundant
// separators and relative elements.
func normalizePath(p string) string {
	return path.Clean(filepath.ToSlash(p))
}
