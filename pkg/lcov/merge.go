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

import "sort"

// Merge combines multiple reports into one. Sections are unified by source
// file, execution counts for identical lines are summed, and each merged
// section lists its lines in increasing line order. Files keep the order in
// which they were first seen, and the first non-empty test name seen for a
// file wins.
func Merge(reports ...[]*Record) []*Record {
	var order []string
	merged := map[string]*Record{}
	counts := map[string]map[int]int64{}
	for _, report := range reports {
		for _, record := range report {
			existing, ok := merged[record.SourceFile]
			if !ok {
				existing = &Record{TestName: record.TestName, SourceFile: record.SourceFile}
				merged[record.SourceFile] = existing
				counts[record.SourceFile] = map[int]int64{}
				order = append(order, record.SourceFile)
			}
			if existing.TestName == "" {
				existing.TestName = record.TestName
			}
			for _, lineData := range record.Lines {
				counts[record.SourceFile][lineData.Line] += lineData.Count
			}
		}
	}
	result := make([]*Record, 0, len(order))
	for _, file := range order {
		record := merged[file]
		lineCounts := counts[file]
		lines := make([]int, 0, len(lineCounts))
		for line := range lineCounts {
			lines = append(lines, line)
		}
		sort.Ints(lines)
		for _, line := range lines {
			record.Lines = append(record.Lines, LineData{Line: line, Count: lineCounts[line]})
		}
		result = append(result, record)
	}
	return result
}
