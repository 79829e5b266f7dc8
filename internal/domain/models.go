package domain

// OptionCount is the fixed number of options every question carries.
const OptionCount = 4

// Selections is the user's pick for each of the four options of a question.
type Selections [OptionCount]bool

// Question is an immutable prompt with four options and their correctness flags.
type Question struct {
	Prompt  string              `json:"prompt"`
	Options [OptionCount]string `json:"options"`
	Correct [OptionCount]bool   `json:"correct"`
}

// NewQuestion builds a question and rejects one with no correct option.
func NewQuestion(prompt string, options [OptionCount]string, correct [OptionCount]bool) (Question, error) {
	q := Question{Prompt: prompt, Options: options, Correct: correct}
	if err := q.Validate(); err != nil {
		return Question{}, err
	}
	return q, nil
}

// Validate checks that at least one option is marked correct.
func (q Question) Validate() error {
	if q.CorrectOptions() == 0 {
		return ErrNoCorrectOption
	}
	return nil
}

// CorrectOptions returns how many options are marked correct.
func (q Question) CorrectOptions() int {
	n := 0
	for _, c := range q.Correct {
		if c {
			n++
		}
	}
	return n
}

// MultiSelect reports whether more than one option is correct.
func (q Question) MultiSelect() bool {
	return q.CorrectOptions() > 1
}

// Matches reports whether the selections equal the correctness flags exactly.
// There is no partial credit.
func (q Question) Matches(sel Selections) bool {
	return sel == Selections(q.Correct)
}

// QuestionSet is a named, ordered list of questions a quiz is built from.
type QuestionSet struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Result is the append-only record of one completed quiz pass.
type Result struct {
	UserID       int64 `json:"userId"`
	Timestamp    int64 `json:"timestamp"` // epoch milliseconds, stamped by storage
	CountCorrect int   `json:"countCorrect"`
	CountTotal   int   `json:"countTotal"`
}

// User is a registered player.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	Email       string `json:"email"`
	Password    string `json:"-"`
}

// FullName joins first and last name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HistoryEntry is a result annotated with its owner's display name.
type HistoryEntry struct {
	Result
	UserName string `json:"userName"`
}

// QuestionView is what a presentation layer needs to render the current question.
type QuestionView struct {
	SessionID   string              `json:"sessionId"`
	Number      int                 `json:"number"` // 1-based
	Total       int                 `json:"total"`
	Prompt      string              `json:"prompt"`
	Options     [OptionCount]string `json:"options"`
	MultiSelect bool                `json:"multiSelect"`
}

// Outcome summarizes a submitted answer. Retried marks an outcome where no
// answer was graded because a failed record of the finished pass was retried.
type Outcome struct {
	Correct  bool          `json:"correct"`
	Complete bool          `json:"complete"`
	Retried  bool          `json:"retried,omitempty"`
	Next     *QuestionView `json:"next,omitempty"`
	Result   *Result       `json:"result,omitempty"`
}
