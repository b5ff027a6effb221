package request_models

// QuizAnswerRequest records a single answered question.
type QuizAnswerRequest struct {
	SessionID      string `json:"session_id"`
	QuestionID     int    `json:"question_id"`
	Axis           string `json:"axis"`
	SelectedOption string `json:"selected_option"`
	QuestionText   string `json:"question_text"`
}

// QuizCompleteRequest closes a session: Answers maps an axis name to the
// ordered option letters picked on that axis, three per axis.
type QuizCompleteRequest struct {
	SessionID string              `json:"session_id"`
	Answers   map[string][]string `json:"answers"`
}
