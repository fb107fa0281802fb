package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"interviewprep/internal/llm"
	"interviewprep/internal/middleware"
	"interviewprep/internal/models"
	"interviewprep/internal/prompts"
	"interviewprep/internal/utils"
)

// feedbackPlaceholder stands in for real answers when rendering the generic
// feedback-prompt template returned with generated questions.
const feedbackPlaceholder = "[Candidate answers will be provided here]"

type AIHandler struct {
	provider      llm.Provider
	promptManager prompts.PromptProvider
	logger        *zap.Logger
}

func NewAIHandler(provider llm.Provider, promptManager prompts.PromptProvider, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		provider:      provider,
		promptManager: promptManager,
		logger:        logger,
	}
}

func (h *AIHandler) GenerateQuestionsHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.GenerateQuestionsRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	promptData := map[string]string{
		"Role":            req.Role,
		"ExperienceLevel": req.ExperienceLevel,
		"Topics":          strings.Join(req.Topics, ", "),
		"NumQuestions":    strconv.Itoa(req.NumQuestions),
	}

	prompt, err := h.promptManager.BuildPrompt("questions", "default", promptData)
	if err != nil {
		h.logger.Error("Failed to build prompt", zap.Error(err), zap.String("request_id", req.RequestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "prompt_error",
			Message: "Failed to build AI prompt",
		})
		return
	}

	result, err := h.provider.GenerateContent(r.Context(), prompt)
	if err != nil {
		h.providerError(w, err, req.RequestID, "Error generating questions")
		return
	}

	// parse failures degrade to an empty list, never to a failed request
	questions := h.parseQuestions(result.Content, req.RequestID)

	feedbackPrompt, err := h.promptManager.BuildPrompt("feedback", "default", map[string]string{
		"Answers": feedbackPlaceholder,
	})
	if err != nil {
		h.logger.Error("Failed to build prompt", zap.Error(err), zap.String("request_id", req.RequestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "prompt_error",
			Message: "Failed to build AI prompt",
		})
		return
	}

	feedbackResult, err := h.provider.GenerateContent(r.Context(), feedbackPrompt)
	if err != nil {
		h.providerError(w, err, req.RequestID, "Error generating feedback prompt")
		return
	}

	h.logger.Info("Questions generated",
		zap.String("request_id", req.RequestID),
		zap.String("provider", h.provider.GetProviderName()),
		zap.Int("questions", len(questions)),
		zap.Int("processing_time_ms", result.Metadata.ProcessingTime))

	utils.JSON(w, http.StatusOK, models.GenerateQuestionsResponse{
		Questions:      questions,
		FeedbackPrompt: feedbackResult.Content,
		RequestID:      req.RequestID,
	})
}

func (h *AIHandler) AnalyzeAnswersHandler(w http.ResponseWriter, r *http.Request) {
	req := middleware.GetValidatedRequest[*models.AnalyzeAnswersRequest](r)
	req.RequestID = ensureRequestID(req.RequestID)

	var formatted strings.Builder
	for _, qa := range req.Answers {
		formatted.WriteString("Question: " + qa.Question + "\nAnswer: " + qa.Answer + "\n")
	}

	prompt, err := h.promptManager.BuildPrompt("feedback", "default", map[string]string{
		"Answers": formatted.String(),
	})
	if err != nil {
		h.logger.Error("Failed to build prompt", zap.Error(err), zap.String("request_id", req.RequestID))
		utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Code:    "prompt_error",
			Message: "Failed to build AI prompt",
		})
		return
	}

	// the feedback text is returned verbatim, no structural parsing
	result, err := h.provider.GenerateContent(r.Context(), prompt)
	if err != nil {
		h.providerError(w, err, req.RequestID, "Error analyzing answers")
		return
	}

	utils.JSON(w, http.StatusOK, models.AnalyzeAnswersResponse{
		Feedback:  result.Content,
		RequestID: req.RequestID,
	})
}

// parseQuestions decodes the provider's reply best-effort. Malformed payloads
// are logged and yield an empty list.
func (h *AIHandler) parseQuestions(content, requestID string) []models.AIQuestion {
	cleaned := utils.StripFences(content)

	var payload struct {
		Questions []models.AIQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		h.logger.Warn("Failed to parse question payload, returning empty list",
			zap.Error(err),
			zap.String("request_id", requestID))
		return []models.AIQuestion{}
	}
	if payload.Questions == nil {
		return []models.AIQuestion{}
	}
	return payload.Questions
}

func (h *AIHandler) providerError(w http.ResponseWriter, err error, requestID, message string) {
	h.logger.Error("AI provider error", zap.Error(err), zap.String("request_id", requestID))
	utils.JSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Code:    "ai_error",
		Message: message + ": " + err.Error(),
	})
}

func generateRequestID() string {
	return uuid.New().String()
}

// ensureRequestID generates a request ID if one is not provided
func ensureRequestID(requestID string) string {
	if requestID == "" {
		return generateRequestID()
	}
	return requestID
}
