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

// Package util provides file level helpers for reading and writing LCOV
// reports.
package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/simmerhq/xcoverage/pkg/lcov"
)

// LoadReport reads the LCOV report at path. "-" reads from stdin.
func LoadReport(path string) ([]*lcov.Record, error) {
	if path == "-" {
		return lcov.Parse(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return lcov.Parse(file)
}

// DumpReport writes records to the file at path, creating parent directories
// as needed. "-" writes to stdout.
func DumpReport(path string, records []*lcov.Record) error {
	if path == "-" {
		return lcov.Dump(records, os.Stdout)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %v", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	if err := lcov.Dump(records, file); err != nil {
		file.Close()
		return fmt.Errorf("error writing output file: %v", err)
	}
	return file.Close()
}
