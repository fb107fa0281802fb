package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildQuestionsPrompt(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	prompt, err := pm.BuildPrompt("questions", "default", map[string]string{
		"Role":            "Backend Engineer",
		"ExperienceLevel": "senior",
		"Topics":          "go, mongodb",
		"NumQuestions":    "5",
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Backend Engineer")
	assert.Contains(t, prompt, "senior")
	assert.Contains(t, prompt, "go, mongodb")
	assert.Contains(t, prompt, "5")
	assert.NotContains(t, prompt, "{{.", "all placeholders should be interpolated")
}

func TestBuildFeedbackPrompt(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	answers := "Question: Q1\nAnswer: A1\n"
	prompt, err := pm.BuildPrompt("feedback", "default", map[string]string{
		"Answers": answers,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, answers)
	assert.NotContains(t, prompt, "{{.Answers}}")
}

func TestBuildPromptUnknownMode(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	_, err = pm.BuildPrompt("nonexistent", "default", nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nonexistent"))
}

func TestBuildPromptUnknownVariant(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	_, err = pm.BuildPrompt("questions", "nope", nil)
	require.Error(t, err)
}

func TestVariantsIncludeBasePrompt(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	// both embedded templates expose a default variant
	for _, mode := range []string{"questions", "feedback"} {
		prompt, err := pm.BuildPrompt(mode, "default", nil)
		require.NoError(t, err, mode)
		assert.NotEmpty(t, prompt, mode)
	}
}
