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

// Package xccov reads line coverage out of Xcode result archives by invoking
// `xcrun xccov` and decoding its JSON output.
package xccov

import (
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client runs xccov view subcommands against result archives.
type Client struct {
	// logger will be used to log xccov invocations
	logger *logrus.Entry
	// xcrun is the path to the xcrun binary.
	xcrun string
	// execute executes a command and returns its standard output
	execute func(command string, args ...string) ([]byte, error)
}

// New returns a Client backed by the xcrun binary found on PATH.
func New() (*Client, error) {
	xcrun, err := exec.LookPath("xcrun")
	if err != nil {
		return nil, errors.Wrap(err, "locating xcrun")
	}
	return &Client{
		logger: logrus.WithField("client", "xccov"),
		xcrun:  xcrun,
		execute: func(command string, args ...string) ([]byte, error) {
			out, err := exec.Command(command, args...).Output()
			if err != nil {
				if exit, ok := err.(*exec.ExitError); ok && len(exit.Stderr) > 0 {
					return nil, fmt.Errorf("%v: %s", err, strings.TrimSpace(string(exit.Stderr)))
				}
				return nil, err
			}
			return out, nil
		},
	}, nil
}

func (c *Client) view(args ...string) ([]byte, error) {
	args = append([]string{"xccov", "view"}, args...)
	logger := c.logger.WithField("args", strings.Join(args, " "))
	out, err := c.execute(c.xcrun, args...)
	if err != nil {
		logger.WithError(err).Debug("Running command failed.")
		return nil, errors.Wrapf(err, "running xcrun %s", strings.Join(args, " "))
	}
	logger.Debug("Running command succeeded.")
	return out, nil
}

// Report fetches the target summary of a result archive.
func (c *Client) Report(archivePath string) (*Report, error) {
	out, err := c.view("--report", "--json", archivePath)
	if err != nil {
		return nil, err
	}
	report := &Report{}
	if err := json.Unmarshal(out, report); err != nil {
		return nil, errors.Wrap(err, "decoding coverage report")
	}
	return report, nil
}

// FileLines fetches the per-line breakdown for one source file of a result
// archive. xccov keys the output object by file path; when the requested path
// is absent the single key present is used instead.
func (c *Client) FileLines(archivePath, filePath string) ([]LineDetail, error) {
	out, err := c.view("--archive", "--file", filePath, "--json", archivePath)
	if err != nil {
		return nil, err
	}
	byFile := map[string][]LineDetail{}
	if err := json.Unmarshal(out, &byFile); err != nil {
		return nil, errors.Wrapf(err, "decoding line coverage for %s", filePath)
	}
	if details, ok := byFile[filePath]; ok {
		return details, nil
	}
	if len(byFile) == 1 {
		for _, details := range byFile {
			return details, nil
		}
	}
	return nil, errors.Errorf("no line coverage for %s in xccov output", filePath)
}
