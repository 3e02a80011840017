// Package tests runs the emulator against community test roms.
// The roms are not distributed with the repository; copy them
// into tests/roms to enable the suites.
package tests

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thelolagemann/gomeboy/internal/gameboy"
	"github.com/thelolagemann/gomeboy/pkg/utils"
)

const romPath = "roms"

func Test_All(t *testing.T) {
	testTable := testAllTable()

	for _, suite := range testTable.testSuites {
		t.Run(suite.name, func(t *testing.T) {
			if len(suite.AllTests()) == 0 {
				t.Skipf("no roms found for %s", suite.name)
			}
			for _, collection := range suite.collections {
				t.Run(collection.name, func(t *testing.T) {
					collection.Run(t)
				})
			}
		})
	}

	t.Log("\n" + testTable.CreateReadme())
}

func testAllTable() *TestTable {
	testTable := &TestTable{}
	testBlargg(testTable)
	testMooneye(testTable)
	return testTable
}

// TestTable is a collection of many TestSuite(s).
type TestTable struct {
	testSuites []*TestSuite
}

func (t *TestTable) NewTestSuite(name string) *TestSuite {
	suite := &TestSuite{name: name}
	t.testSuites = append(t.testSuites, suite)
	return suite
}

// CreateReadme renders the results of every suite as markdown.
func (t *TestTable) CreateReadme() string {
	var b strings.Builder
	b.WriteString("| Test Suite | Pass Rate | Tests Passed | Tests Failed | Tests Total |\n| --- | --- | --- | --- | --- |\n")
	for _, suite := range t.testSuites {
		b.WriteString(suite.CreateTableEntry())
	}
	for _, suite := range t.testSuites {
		b.WriteString("\n# " + suite.name + "\n")
		for _, collection := range suite.collections {
			b.WriteString("## " + collection.name + "\n")
			b.WriteString(CreateMarkdownTableFromTests(collection.tests))
		}
	}
	return b.String()
}

// TestSuite is a collection of tests (often by a single author, or for a single
// feature) that can be run together.
type TestSuite struct {
	name        string
	collections []*TestCollection
}

func (s *TestSuite) NewTestCollection(name string) *TestCollection {
	collection := &TestCollection{name: name}
	s.collections = append(s.collections, collection)
	return collection
}

func (s *TestSuite) AllTests() []ROMTest {
	var tests []ROMTest
	for _, collection := range s.collections {
		tests = append(tests, collection.tests...)
	}
	return tests
}

func (s *TestSuite) CreateTableEntry() string {
	total, passed := 0, 0
	for _, test := range s.AllTests() {
		total++
		if test.Passed() {
			passed++
		}
	}

	rate := 0
	if total > 0 {
		rate = passed * 100 / total
	}
	return fmt.Sprintf("| %s | %d%% | %d | %d | %d |\n", s.name, rate, passed, total-passed, total)
}

type TestCollection struct {
	name  string
	tests []ROMTest
}

func (c *TestCollection) Add(test ROMTest) {
	c.tests = append(c.tests, test)
}

func (c *TestCollection) Run(t *testing.T) {
	for _, test := range c.tests {
		test.Run(t)
	}
}

type ROMTest interface {
	Run(t *testing.T)
	Passed() bool
	Name() string
}

func CreateMarkdownTableFromTests(tests []ROMTest) string {
	table := "| Test | Passing |\n| ---- | ------- |\n"
	for _, test := range tests {
		pass := "✅"
		if !test.Passed() {
			pass = "❌"
		}
		table += "| " + test.Name() + " | " + pass + " |\n"
	}
	return table
}

// romsInDir returns the path of every .gb file in dir, or nil if
// dir does not exist.
func romsInDir(dir string) []string {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var roms []string
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".gb" {
			continue
		}
		roms = append(roms, filepath.Join(dir, file.Name()))
	}
	return roms
}

// runROM loads romFile and steps the machine one frame at a time
// until done returns true or the frame limit is reached. It
// returns false if the limit was reached.
func runROM(t *testing.T, romFile string, frames int, done func(g *gameboy.GameBoy) bool, opts ...gameboy.Opt) (*gameboy.GameBoy, bool) {
	t.Helper()
	rom, err := utils.LoadFile(romFile)
	if err != nil {
		t.Fatal(err)
	}
	g, err := gameboy.NewGameBoy(rom, opts...)
	if err != nil {
		t.Fatal(err)
	}

	for frame := 0; frame < frames; frame++ {
		g.Frame()
		if done(g) {
			return g, true
		}
	}
	return g, false
}
