package models

const DefaultNumQuestions = 5

type GenerateQuestionsRequest struct {
	Role            string   `json:"role"`
	ExperienceLevel string   `json:"experience_level"`
	Topics          []string `json:"topics"`
	NumQuestions    int      `json:"num_questions"`
	RequestID       string   `json:"request_id"`
}

// implements the Validator interface
func (r *GenerateQuestionsRequest) Validate() error {
	if r.Role == "" {
		return &ErrorResponse{Code: "missing_role", Message: "role is required"}
	}
	if r.ExperienceLevel == "" {
		return &ErrorResponse{Code: "missing_experience_level", Message: "experience_level is required"}
	}
	if len(r.Topics) == 0 {
		return &ErrorResponse{Code: "missing_topics", Message: "at least one topic is required"}
	}
	if r.NumQuestions == 0 {
		r.NumQuestions = DefaultNumQuestions
	}
	if r.NumQuestions < 1 || r.NumQuestions > 20 {
		return &ErrorResponse{Code: "invalid_num_questions", Message: "num_questions must be between 1 and 20"}
	}
	return nil
}

// AIQuestion is the typed shape expected inside the provider's JSON payload.
type AIQuestion struct {
	Question       string `json:"question"`
	ExpectedAnswer string `json:"expected_answer"`
	Difficulty     string `json:"difficulty"`
	Topic          string `json:"topic"`
}

type GenerateQuestionsResponse struct {
	Questions      []AIQuestion `json:"questions"`
	FeedbackPrompt string       `json:"feedback_prompt"`
	RequestID      string       `json:"request_id"`
}

type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type AnalyzeAnswersRequest struct {
	Answers   []QuestionAnswer `json:"answers"`
	RequestID string           `json:"request_id"`
}

func (r *AnalyzeAnswersRequest) Validate() error {
	if len(r.Answers) == 0 {
		return &ErrorResponse{Code: "missing_answers", Message: "at least one question/answer pair is required"}
	}
	for _, qa := range r.Answers {
		if qa.Question == "" {
			return &ErrorResponse{Code: "missing_question", Message: "every answer needs its question text"}
		}
	}
	return nil
}

type AnalyzeAnswersResponse struct {
	Feedback  string `json:"feedback"`
	RequestID string `json:"request_id"`
}

// GenerationResponse is what an LLM provider hands back to handlers.
type GenerationResponse struct {
	Content  string             `json:"content"`
	Metadata GenerationMetadata `json:"metadata"`
}

type GenerationMetadata struct {
	ProcessingTime int    `json:"processing_time_ms"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
}
