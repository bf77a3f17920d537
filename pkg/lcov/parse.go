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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads an LCOV tracefile and returns one Record per SF: section.
// Records of unknown kinds are ignored, as are DA: records appearing before
// the first SF: marker. A TN: name applies to every following section until
// the next TN: record. A section missing its final end_of_record is still
// returned, and line data between an end_of_record and the next SF: marker
// is attributed to the most recent source file.
func Parse(reader io.Reader) ([]*Record, error) {
	scanner := bufio.NewScanner(reader)
	var records []*Record
	var current *Record
	flushed := false
	testName := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == endOfRecord:
			// current stays set so stray DA: lines keep attaching to it.
			if current != nil && !flushed {
				records = append(records, current)
				flushed = true
			}
		case strings.HasPrefix(line, testNamePrefix):
			testName = strings.TrimPrefix(line, testNamePrefix)
		case strings.HasPrefix(line, sourceFilePrefix):
			if current != nil && !flushed {
				records = append(records, current)
			}
			current = &Record{TestName: testName, SourceFile: strings.TrimPrefix(line, sourceFilePrefix)}
			flushed = false
		case strings.HasPrefix(line, lineDataPrefix):
			if current == nil {
				continue
			}
			lineData, err := parseLineData(strings.TrimPrefix(line, lineDataPrefix))
			if err != nil {
				return nil, err
			}
			current.Lines = append(current.Lines, lineData)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if current != nil && !flushed {
		records = append(records, current)
	}
	return records, nil
}

// parseLineData splits the payload of a DA: record. A third comma-separated
// field (the optional checksum) is tolerated and dropped.
func parseLineData(payload string) (LineData, error) {
	parts := strings.SplitN(payload, ",", 3)
	if len(parts) < 2 {
		return LineData{}, fmt.Errorf("malformed DA record %q", lineDataPrefix+payload)
	}
	line, err := strconv.Atoi(parts[0])
	if err != nil {
		return LineData{}, fmt.Errorf("malformed line number in %q: %v", lineDataPrefix+payload, err)
	}
	count, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return LineData{}, fmt.Errorf("malformed execution count in %q: %v", lineDataPrefix+payload, err)
	}
	return LineData{Line: line, Count: count}, nil
}
