package conform

import (
	"strings"

	"golang.org/x/text/cases"
)

// Case is one catalogue entry: a canonical operation name plus its test
// body. A nil body marks an operation that is catalogued but not yet
// translated; running it reports NotImpl.
//
// The catalogue is an ordered table, so an operation is addressable both
// by its stable numeric index and by name.
type Case struct {
	Name string
	Run  func(*Runner, uint32) Result
}

// Suite is the ordered catalogue for one register family.
type Suite struct {
	Name  string
	Cases []Case
}

// Find returns the indices of all cases whose name contains pattern,
// compared under Unicode case folding.
func (s *Suite) Find(pattern string) []int {
	folder := cases.Fold()
	p := folder.String(pattern)
	var matches []int
	for i, c := range s.Cases {
		if strings.Contains(folder.String(c.Name), p) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Suites returns the conformance suites in default run order: the
// narrower register family completes before the wider one starts.
func Suites() []*Suite {
	return []*Suite{SSESuite(), AVX512Suite()}
}

// SuiteByName returns the suite with the given name, or nil.
func SuiteByName(name string) *Suite {
	for _, s := range Suites() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
