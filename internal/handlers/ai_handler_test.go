package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go.uber.org/zap"

	"interviewprep/internal/handlers"
	"interviewprep/internal/llm"
	"interviewprep/internal/middleware"
	"interviewprep/internal/models"
)

type mockProvider struct {
	generateContentFn func(ctx context.Context, prompt string) (*models.GenerationResponse, error)
}

func (m *mockProvider) GenerateContent(ctx context.Context, prompt string) (*models.GenerationResponse, error) {
	if m.generateContentFn != nil {
		return m.generateContentFn(ctx, prompt)
	}
	return &models.GenerationResponse{Content: "stub"}, nil
}

func (m *mockProvider) GetProviderName() string { return "mock" }

type mockPromptManager struct {
	buildPromptFn func(mode, variant string, data map[string]string) (string, error)
}

func (m *mockPromptManager) BuildPrompt(mode, variant string, data map[string]string) (string, error) {
	if m.buildPromptFn != nil {
		return m.buildPromptFn(mode, variant, data)
	}
	return "prompt:" + mode, nil
}

func generateQuestionsEndpoint(provider llm.Provider, pm *mockPromptManager) http.Handler {
	h := handlers.NewAIHandler(provider, pm, zap.NewNop())
	return middleware.ValidateRequest[*models.GenerateQuestionsRequest]()(http.HandlerFunc(h.GenerateQuestionsHandler))
}

func analyzeAnswersEndpoint(provider llm.Provider, pm *mockPromptManager) http.Handler {
	h := handlers.NewAIHandler(provider, pm, zap.NewNop())
	return middleware.ValidateRequest[*models.AnalyzeAnswersRequest]()(http.HandlerFunc(h.AnalyzeAnswersHandler))
}

const generateBody = `{"role":"Backend Engineer","experience_level":"senior","topics":["go","system design"]}`

func TestGenerateQuestionsSuccess(t *testing.T) {
	payload := `{"questions":[{"question":"What is a goroutine?","expected_answer":"A lightweight thread","difficulty":"easy","topic":"go"}]}`
	provider := &mockProvider{
		generateContentFn: func(_ context.Context, prompt string) (*models.GenerationResponse, error) {
			if strings.HasPrefix(prompt, "prompt:feedback") {
				return &models.GenerationResponse{Content: "feedback template text"}, nil
			}
			return &models.GenerationResponse{Content: payload}, nil
		},
	}

	rec := performJSON(generateQuestionsEndpoint(provider, &mockPromptManager{}),
		http.MethodPost, "/api/v1/ai/generate-questions", generateBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got models.GenerateQuestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].Question != "What is a goroutine?" {
		t.Fatalf("unexpected questions: %+v", got.Questions)
	}
	if got.FeedbackPrompt != "feedback template text" {
		t.Fatalf("unexpected feedback prompt: %q", got.FeedbackPrompt)
	}
	if got.RequestID == "" {
		t.Fatalf("expected a generated request_id")
	}
}

func TestGenerateQuestionsFencedPayload(t *testing.T) {
	fenced := "```json\n{\"questions\":[{\"question\":\"Q\",\"expected_answer\":\"A\",\"difficulty\":\"medium\",\"topic\":\"go\"}]}\n```"
	provider := &mockProvider{
		generateContentFn: func(_ context.Context, prompt string) (*models.GenerationResponse, error) {
			if strings.HasPrefix(prompt, "prompt:feedback") {
				return &models.GenerationResponse{Content: "fp"}, nil
			}
			return &models.GenerationResponse{Content: fenced}, nil
		},
	}

	rec := performJSON(generateQuestionsEndpoint(provider, &mockPromptManager{}),
		http.MethodPost, "/api/v1/ai/generate-questions", generateBody)

	var got models.GenerateQuestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if len(got.Questions) != 1 || got.Questions[0].Difficulty != "medium" {
		t.Fatalf("fenced payload not parsed: %+v", got.Questions)
	}
}

func TestGenerateQuestionsMalformedPayloadDegradesToEmpty(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(_ context.Context, prompt string) (*models.GenerationResponse, error) {
			if strings.HasPrefix(prompt, "prompt:feedback") {
				return &models.GenerationResponse{Content: "still here"}, nil
			}
			return &models.GenerationResponse{Content: "Sure! Here are some questions for you..."}, nil
		},
	}

	rec := performJSON(generateQuestionsEndpoint(provider, &mockPromptManager{}),
		http.MethodPost, "/api/v1/ai/generate-questions", generateBody)

	if rec.Code != http.StatusOK {
		t.Fatalf("parse failure must not fail the request, got %d: %s", rec.Code, rec.Body.String())
	}

	var got models.GenerateQuestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.Questions == nil || len(got.Questions) != 0 {
		t.Fatalf("expected empty (non-nil) question list, got %+v", got.Questions)
	}
	if got.FeedbackPrompt != "still here" {
		t.Fatalf("expected feedback prompt despite parse failure, got %q", got.FeedbackPrompt)
	}
}

func TestGenerateQuestionsProviderError(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(context.Context, string) (*models.GenerationResponse, error) {
			return nil, &llm.ProviderError{Provider: "mock", Code: llm.ErrCodeServiceDown, Message: "upstream down"}
		},
	}

	rec := performJSON(generateQuestionsEndpoint(provider, &mockPromptManager{}),
		http.MethodPost, "/api/v1/ai/generate-questions", generateBody)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var got models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.Code != "ai_error" || !strings.Contains(got.Message, "upstream down") {
		t.Fatalf("expected ai_error carrying the underlying message, got %+v", got)
	}
}

func TestGenerateQuestionsPromptError(t *testing.T) {
	pm := &mockPromptManager{
		buildPromptFn: func(string, string, map[string]string) (string, error) {
			return "", errors.New("boom")
		},
	}

	rec := performJSON(generateQuestionsEndpoint(&mockProvider{}, pm),
		http.MethodPost, "/api/v1/ai/generate-questions", generateBody)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGenerateQuestionsValidation(t *testing.T) {
	cases := []string{
		`{"experience_level":"mid","topics":["go"]}`,
		`{"role":"r","topics":["go"]}`,
		`{"role":"r","experience_level":"mid","topics":[]}`,
		`{"role":"r","experience_level":"mid","topics":["go"],"num_questions":50}`,
	}
	for _, body := range cases {
		rec := performJSON(generateQuestionsEndpoint(&mockProvider{}, &mockPromptManager{}),
			http.MethodPost, "/api/v1/ai/generate-questions", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAnalyzeAnswersReturnsFeedbackVerbatim(t *testing.T) {
	var sentPrompt string
	provider := &mockProvider{
		generateContentFn: func(_ context.Context, prompt string) (*models.GenerationResponse, error) {
			sentPrompt = prompt
			return &models.GenerationResponse{Content: "Raw feedback.\nWith newlines."}, nil
		},
	}
	pm := &mockPromptManager{
		buildPromptFn: func(mode, variant string, data map[string]string) (string, error) {
			return data["Answers"], nil
		},
	}

	body := `{"answers":[{"question":"Q1","answer":"A1"},{"question":"Q2","answer":"A2"}]}`
	rec := performJSON(analyzeAnswersEndpoint(provider, pm),
		http.MethodPost, "/api/v1/ai/analyze-answers", body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got models.AnalyzeAnswersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.Feedback != "Raw feedback.\nWith newlines." {
		t.Fatalf("feedback not verbatim: %q", got.Feedback)
	}
	if !strings.Contains(sentPrompt, "Question: Q1\nAnswer: A1\n") || !strings.Contains(sentPrompt, "Question: Q2\nAnswer: A2\n") {
		t.Fatalf("answers not formatted into prompt: %q", sentPrompt)
	}
}

func TestAnalyzeAnswersValidation(t *testing.T) {
	for _, body := range []string{`{"answers":[]}`, `{"answers":[{"answer":"A1"}]}`} {
		rec := performJSON(analyzeAnswersEndpoint(&mockProvider{}, &mockPromptManager{}),
			http.MethodPost, "/api/v1/ai/analyze-answers", body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAnalyzeAnswersProviderError(t *testing.T) {
	provider := &mockProvider{
		generateContentFn: func(context.Context, string) (*models.GenerationResponse, error) {
			return nil, errors.New("connection refused")
		},
	}

	body := `{"answers":[{"question":"Q1","answer":"A1"}]}`
	rec := performJSON(analyzeAnswersEndpoint(provider, &mockPromptManager{}),
		http.MethodPost, "/api/v1/ai/analyze-answers", body)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
