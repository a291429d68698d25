package request_models

// QuizRequest carries the four answers keyed by question id ("q1".."q4"). An answer may be
// the display label or the option code.
type QuizRequest struct {
	Answers map[string]string `json:"answers" form:"answers"`
}

type QuizQuestion struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     string       `json:"type"`
	Options  []QuizOption `json:"options"`
	Required bool         `json:"required"`
	Category string       `json:"category"`
	Column   string       `json:"-"`
}

type QuizOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}
