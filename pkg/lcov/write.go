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
	"io"
	"strings"
)

// Dump writes records to writer as an LCOV tracefile. A record with an empty
// TestName produces no TN: line. The output always ends with a newline.
func Dump(records []*Record, writer io.Writer) error {
	var lines []string
	for _, record := range records {
		if record.TestName != "" {
			lines = append(lines, testNamePrefix+record.TestName)
		}
		lines = append(lines, sourceFilePrefix+record.SourceFile)
		for _, lineData := range record.Lines {
			lines = append(lines, fmt.Sprintf("%s%d,%d", lineDataPrefix, lineData.Line, lineData.Count))
		}
		lines = append(lines, endOfRecord)
	}
	_, err := io.WriteString(writer, strings.Join(lines, "\n")+"\n")
	return err
}
