// Package directory serves the ministers and state-constitution reference
// records. The data is canned: the upstream government sources have no
// public API, so records are embedded and updated with releases.
package directory

import "strings"

// Minister is one entry in a ministers table
type Minister struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	Portfolio  string `json:"portfolio"`
	Term       string `json:"term"`
}

// MinisterSet is the ministers of one government plus its department list
type MinisterSet struct {
	Ministers   []Minister `json:"ministers"`
	Departments []string   `json:"departments"`
}

// StateArticle is a short constitutional article summary for a state
type StateArticle struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// StateLaw is a notable state-level act
type StateLaw struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StateConstitution describes a state's constitutional framework
type StateConstitution struct {
	Code                    string         `json:"code"`
	Name                    string         `json:"name"`
	History                 string         `json:"history"`
	GovernmentStructure     string         `json:"government_structure"`
	ConstitutionalFramework string         `json:"constitutional_framework"`
	Articles                []StateArticle `json:"articles"`
	Laws                    []StateLaw     `json:"laws"`
}

// Service answers directory lookups from the embedded records
type Service struct{}

// NewService creates a directory service
func NewService() *Service {
	return &Service{}
}

// CentralMinisters returns the union government ministers
func (s *Service) CentralMinisters() MinisterSet {
	return centralMinisters
}

// StateMinisters returns the ministers of one state. Unknown codes return
// an empty set, not an error, matching how the catalog of states grows
// incrementally.
func (s *Service) StateMinisters(code string) MinisterSet {
	if set, ok := stateMinisters[strings.ToUpper(code)]; ok {
		return set
	}
	return MinisterSet{Ministers: []Minister{}, Departments: []string{}}
}

// StateConstitution returns a state's constitutional record, if known
func (s *Service) StateConstitution(code string) (StateConstitution, bool) {
	sc, ok := stateConstitutions[strings.ToUpper(code)]
	return sc, ok
}

// StateCodes returns the codes with constitutional records, unordered
func (s *Service) StateCodes() []string {
	out := make([]string, 0, len(stateConstitutions))
	for code := range stateConstitutions {
		out = append(out, code)
	}
	return out
}
