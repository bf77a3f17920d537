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

// Package lcov implements reading and writing of the LCOV tracefile subset
// used by the Simmer CI pipeline: TN:, SF: and DA: records terminated by
// end_of_record markers.
package lcov

const (
	testNamePrefix   = "TN:"
	sourceFilePrefix = "SF:"
	lineDataPrefix   = "DA:"
	endOfRecord      = "end_of_record"
)

// LineData is a single DA: record: one executable source line and the number
// of times it was executed.
type LineData struct {
	Line  int
	Count int64
}

// Record is one tracefile section: a source file, the test name it was
// recorded under, and its per-line execution data.
type Record struct {
	TestName   string
	SourceFile string
	Lines      []LineData
}
