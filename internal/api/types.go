// internal/api/types.go
//
// Wire types for the prediction service JSON protocol.
// Defines request/response payloads for the three endpoints:
//   - POST /start    → StartResponse
//   - POST /answer   → AnswerRequest / AnswerResponse
//   - POST /feedback → FeedbackRequest / FeedbackResponse

package api

// Question is one yes/no/don't-know prompt plus its positional metadata.
// The server owns question selection; the client only renders it and
// reports the id back with the user's answer.
type Question struct {
	ID             string `json:"id"`
	Text           string `json:"text"`
	QuestionNumber int    `json:"question_number"`
	TotalQuestions int    `json:"total_questions"`
	IsTiebreaker   bool   `json:"is_tiebreaker"`
}

// StartResponse is returned by POST /start.
type StartResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question"`
	Error    string    `json:"error"`
}

// AnswerRequest is the body of POST /answer.
//
// Answer is a *bool on purpose: nil marshals to JSON null, which the
// server reads as "don't know". The field carries no omitempty so the
// key is always present on the wire.
type AnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     *bool  `json:"answer"`
}

// AnswerResponse is returned by POST /answer.
// Exactly one of two shapes is expected on success:
//   - Done == false → Question holds the next prompt.
//   - Done == true  → Prediction/Candidates hold the final guess
//     (Message may carry extra display text, e.g. on perfect ties).
type AnswerResponse struct {
	Success    bool      `json:"success"`
	Error      string    `json:"error"`
	Done       bool      `json:"done"`
	Prediction string    `json:"prediction"`
	Candidates []string  `json:"candidates"`
	Message    string    `json:"message"`
	Question   *Question `json:"question"`
}

// FeedbackRequest is the body of POST /feedback.
// For a confirmed guess Predicted and ActualWord are both the predicted
// word; for a miss ActualWord carries what the user actually thought of.
type FeedbackRequest struct {
	Correct    bool   `json:"correct"`
	Predicted  string `json:"predicted"`
	ActualWord string `json:"actual_word"`
}

// FeedbackResponse is returned by POST /feedback.
type FeedbackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
