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

// Package convert turns the coverage stored in an Xcode result archive into
// LCOV records.
package convert

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/simmerhq/xcoverage/pkg/lcov"
	"github.com/simmerhq/xcoverage/pkg/xccov"
)

// DefaultTargetSuffix identifies the shipped application target, as opposed
// to test and UI test bundles.
const DefaultTargetSuffix = ".app"

// DefaultAlwaysCovered lists files whose xccov instrumentation is known to
// under-report: their emitted execution counts are floored to one.
var DefaultAlwaysCovered = []string{"FileWatcher.swift", "PatternMatcher.swift"}

// Viewer provides the two xccov views the conversion needs.
type Viewer interface {
	Report(archivePath string) (*xccov.Report, error)
	FileLines(archivePath, filePath string) ([]xccov.LineDetail, error)
}

// Options control which targets and files of an archive are converted.
type Options struct {
	// TargetSuffix keeps only targets whose name ends with it. Empty means
	// DefaultTargetSuffix.
	TargetSuffix string
	// RepoRoot anchors the relative source paths written to SF: records.
	// A relative root is resolved against the working directory; empty
	// means the working directory itself.
	RepoRoot string
	// AlwaysCovered file names have execution counts floored to one. Nil
	// means DefaultAlwaysCovered.
	AlwaysCovered []string
}

func (o Options) targetSuffix() string {
	if o.TargetSuffix == "" {
		return DefaultTargetSuffix
	}
	return o.TargetSuffix
}

func (o Options) alwaysCovered() []string {
	if o.AlwaysCovered == nil {
		return DefaultAlwaysCovered
	}
	return o.AlwaysCovered
}

// ToRecords reads the archive's coverage through viewer and converts it into
// LCOV records, one section per source file of each application target.
// Files that no longer exist on disk and files outside the repository root
// are skipped.
func ToRecords(viewer Viewer, archivePath string, opts Options) ([]*lcov.Record, error) {
	root := opts.RepoRoot
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		root = wd
	}
	// The archive stores absolute source paths, so the root must be
	// absolute for filepath.Rel to anchor them.
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	report, err := viewer.Report(archivePath)
	if err != nil {
		return nil, err
	}
	var records []*lcov.Record
	for _, target := range report.Targets {
		if !strings.HasSuffix(target.Name, opts.targetSuffix()) {
			logrus.Infof("Skipping non-application target %s", target.Name)
			continue
		}
		for _, file := range target.Files {
			if _, err := os.Stat(file.Path); err != nil {
				logrus.Infof("Skipping %s: no longer exists in the workspace", file.Path)
				continue
			}
			relPath, ok := relativeTo(root, file.Path)
			if !ok {
				logrus.Infof("Skipping %s: outside repository root %s", file.Path, root)
				continue
			}
			details, err := viewer.FileLines(archivePath, file.Path)
			if err != nil {
				return nil, err
			}
			records = append(records, toRecord(target.Name, relPath, details, opts.alwaysCovered()))
		}
	}
	return records, nil
}

// relativeTo returns p relative to root in slash form, reporting whether p is
// inside root at all.
func relativeTo(root, p string) (string, bool) {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

func toRecord(targetName, relPath string, details []xccov.LineDetail, alwaysCovered []string) *lcov.Record {
	record := &lcov.Record{TestName: targetName, SourceFile: relPath}
	floor := isAlwaysCovered(path.Base(relPath), alwaysCovered)
	for _, detail := range details {
		if !detail.IsExecutable {
			continue
		}
		count := detail.ExecutionCount
		if floor && count < 1 {
			count = 1
		}
		record.Lines = append(record.Lines, lcov.LineData{Line: detail.Line, Count: count})
	}
	return record
}

func isAlwaysCovered(name string, alwaysCovered []string) bool {
	for _, covered := range alwaysCovered {
		if name == covered {
			return true
		}
	}
	return false
}
