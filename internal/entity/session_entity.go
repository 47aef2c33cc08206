package entity

// EmptyVersionIndex is the cursor sentinel for an empty version log.
const EmptyVersionIndex = -1

// Wizard steps. The sequence is fixed: Details -> Criteria -> Generated.
const (
	StepDetails   = 0
	StepCriteria  = 1
	StepGenerated = 2
)

// DocumentVersion is one immutable snapshot of generated content plus the
// feedback that produced it. Feedback is nil for the first, feedback-less
// version of a log.
type DocumentVersion struct {
	Content   string  `json:"content"`
	Timestamp int64   `json:"timestamp"` // unix milliseconds
	Version   int     `json:"version"`   // 1-based ordinal
	Feedback  *string `json:"feedback,omitempty"`
}

// SessionState is the full observable state of the active editing session:
// the wizard parameters plus the append-only version log and its cursor.
type SessionState struct {
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	AcceptanceCriteria  string            `json:"acceptance_criteria"`
	TestCases           string            `json:"test_cases"`
	GeneratedContent    string            `json:"generated_content"`
	CurrentStep         int               `json:"current_step"`
	Versions            []DocumentVersion `json:"versions"`
	CurrentVersionIndex int               `json:"current_version_index"`
}

// NewSessionState returns the initial empty state.
func NewSessionState() *SessionState {
	return &SessionState{
		Versions:            []DocumentVersion{},
		CurrentVersionIndex: EmptyVersionIndex,
	}
}

// Clone returns a deep copy so callers cannot mutate the stored log.
func (s *SessionState) Clone() *SessionState {
	cp := *s
	cp.Versions = make([]DocumentVersion, len(s.Versions))
	copy(cp.Versions, s.Versions)
	return &cp
}
