// Package junit produces the junit xml consumed by testgrid from LCOV
// coverage summaries.
package junit

import (
	"encoding/xml"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/simmerhq/xcoverage/pkg/lcov"
	"github.com/simmerhq/xcoverage/pkg/lcov/calculation"
)

// Property is one key value pair attached to a test case.
type Property struct {
	XMLName xml.Name `xml:"property"`
	Name    string   `xml:"name,attr"`
	Value   string   `xml:"value,attr"`
}

type Properties struct {
	XMLName      xml.Name   `xml:"properties"`
	PropertyList []Property `xml:"property"`
}

// TestCase is one testgrid row: a source file or the OVERALL aggregate, with
// its coverage carried in a property.
type TestCase struct {
	XMLName      xml.Name   `xml:"testcase"`
	ClassName    string     `xml:"class_name,attr"`
	Name         string     `xml:"name,attr"`
	Time         string     `xml:"time,attr"`
	Failure      bool       `xml:"failure,omitempty"`
	PropertyList Properties `xml:"properties"`
}

// NewTestCase constructs the TestCase struct
func NewTestCase(name, coverage string, failure bool) TestCase {
	return TestCase{
		ClassName: "xcode_coverage",
		Name:      name,
		Time:      "0",
		Failure:   failure,
		PropertyList: Properties{
			PropertyList: []Property{{Name: "coverage", Value: coverage}},
		},
	}
}

type Testsuite struct {
	XMLName   xml.Name   `xml:"testsuite"`
	Testcases []TestCase `xml:"testcase"`
}

// addTestCase adds one test case to testsuite
func (ts *Testsuite) addTestCase(tc TestCase) {
	ts.Testcases = append(ts.Testcases, tc)
}

// toTestsuite populates the Testsuite struct with data from covList, leading
// with the OVERALL aggregate. Files without coverage data are left out.
func toTestsuite(covList *calculation.CoverageList, threshold float64) *Testsuite {
	ts := &Testsuite{}
	overall := covList.Ratio()
	ts.addTestCase(NewTestCase("OVERALL", percentageForTestgrid(overall), overall < threshold))
	for _, cov := range covList.Group {
		if cov.TotalLines == 0 {
			logrus.Infof("Skipping file %s as it has no coverage data.", cov.Name)
			continue
		}
		ratio := cov.Ratio()
		ts.addTestCase(NewTestCase(cov.Name, percentageForTestgrid(ratio), ratio < threshold))
	}
	return ts
}

// percentageForTestgrid formats a ratio the way testgrid ingests coverage
// values: one decimal, no percent sign.
func percentageForTestgrid(ratio float64) string {
	return fmt.Sprintf("%.1f", ratio*100)
}

// ReportToTestsuiteXML summarizes records and produces the junit xml which
// serves as the input for the coverage testgrid. Coverage below threshold is
// marked with a failure tag.
func ReportToTestsuiteXML(records []*lcov.Record, threshold float64) ([]byte, error) {
	ts := toTestsuite(calculation.ProduceCovList(records), threshold)
	return xml.MarshalIndent(ts, "", "    ")
}
