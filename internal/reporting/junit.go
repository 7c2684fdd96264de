package reporting

import (
	"cmp"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spboyer/bidlens/internal/loader"
	"github.com/spboyer/bidlens/internal/validation"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one results log.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one line of the log.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Error     *JUnitError   `xml:"error,omitempty"`

	line int
}

// JUnitFailure is a record that parsed but failed the game schema.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitError is a line that could not be parsed at all.
type JUnitError struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertValidationToJUnit reports every line of a log as a test case:
// accepted games pass, rejected records fail and unparseable lines error.
// Cases are ordered by line number.
func ConvertValidationToJUnit(source string, res validation.Result, parseErrs []*loader.ParseError, now time.Time) *JUnitTestSuites {
	classname := filepath.Base(source)
	var cases []JUnitTestCase
	var totalSec float64

	for _, g := range res.Games {
		sec := g.Result.DurationMs / 1000.0
		totalSec += sec
		cases = append(cases, JUnitTestCase{
			Name:      "game " + g.GameID,
			Classname: classname,
			Time:      sec,
			line:      g.Line,
		})
	}

	for _, ige := range res.Rejected {
		cases = append(cases, JUnitTestCase{
			Name:      "game " + ige.GameID,
			Classname: classname,
			Failure: &JUnitFailure{
				Message: fmt.Sprintf("line %d: %d schema violation(s)", ige.Line, len(ige.Problems)),
				Type:    "InvalidGameStructure",
				Body:    strings.Join(ige.Problems, "\n"),
			},
			line: ige.Line,
		})
	}

	for _, pe := range parseErrs {
		cases = append(cases, JUnitTestCase{
			Name:      fmt.Sprintf("line %d", pe.Line),
			Classname: classname,
			Error: &JUnitError{
				Message: pe.Err.Error(),
				Type:    "ParseError",
			},
			line: pe.Line,
		})
	}

	slices.SortStableFunc(cases, func(a, b JUnitTestCase) int { return cmp.Compare(a.line, b.line) })

	suite := JUnitTestSuite{
		Name:      classname,
		Tests:     len(cases),
		Failures:  len(res.Rejected),
		Errors:    len(parseErrs),
		Time:      totalSec,
		Timestamp: now.Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "source", Value: source},
			{Name: "valid_games", Value: fmt.Sprintf("%d", len(res.Games))},
		},
		TestCases: cases,
	}

	return &JUnitTestSuites{
		Tests:      suite.Tests,
		Failures:   suite.Failures,
		Errors:     suite.Errors,
		Time:       totalSec,
		TestSuites: []JUnitTestSuite{suite},
	}
}

// WriteJUnitXML writes JUnit XML to the specified file path.
func WriteJUnitXML(suites *JUnitTestSuites, path string) error {
	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
