package store

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a session's conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Quiz holds the generated multiple-choice question for one chapter. It is
// valid only while Chapter matches the session's current selection.
type Quiz struct {
	Chapter  string   `json:"chapter"`
	Question string   `json:"question"`
	Options  []string `json:"options"` // exactly 4, labeled A-D in order
	KeyTerms []string `json:"key_terms"`
}

// TutorSession is the in-memory state of one signed-in user: current
// selection, conversation and cached quiz. Created at login, dropped at
// logout. Conversation is cleared whenever the selected chapter changes.
type TutorSession struct {
	Username string `json:"username"`

	Subject string `json:"subject"` // empty until first selection
	Chapter string `json:"chapter"` // chapter title within Subject

	Conversation []Message `json:"conversation"`
	Quiz         *Quiz     `json:"quiz,omitempty"`
}
