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

package xccov

// Report is the document produced by `xccov view --report --json`.
type Report struct {
	Targets []Target `json:"targets"`
}

// Target is one build target of a coverage report.
type Target struct {
	Name            string  `json:"name"`
	CoveredLines    int64   `json:"coveredLines"`
	ExecutableLines int64   `json:"executableLines"`
	LineCoverage    float64 `json:"lineCoverage"`
	Files           []File  `json:"files"`
}

// File is one source file of a build target.
type File struct {
	Name            string  `json:"name"`
	Path            string  `json:"path"`
	CoveredLines    int64   `json:"coveredLines"`
	ExecutableLines int64   `json:"executableLines"`
	LineCoverage    float64 `json:"lineCoverage"`
}

// LineDetail is one entry of the per-line breakdown produced by
// `xccov view --archive --file <path> --json`. executionCount is null for
// lines that are not executable and decodes to zero.
type LineDetail struct {
	Line           int   `json:"line"`
	IsExecutable   bool  `json:"isExecutable"`
	ExecutionCount int64 `json:"executionCount"`
}
