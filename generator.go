package presrag

import (
	"context"
	"strings"
)

// DefaultPromptTemplate instructs the model to answer strictly from the
// provided context and to admit ignorance rather than fabricate an answer.
// Callers may supply their own template; it must contain the {context} and
// {question} placeholders.
const DefaultPromptTemplate = `Use the following pieces of context to answer the question.
If you don't know the answer, just say that you don't know, don't try to make up an answer.

Context: {context}
Question: {question}

Helpful Answer:`

// Generator produces a text completion for a prompt using an external
// text-generation service. Single request/response, no streaming.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// FillPrompt substitutes context and question into a prompt template.
// Returns EINVALID if the template lacks either placeholder.
func FillPrompt(template, contextText, question string) (string, error) {
	if !strings.Contains(template, "{context}") || !strings.Contains(template, "{question}") {
		return "", Errorf(EINVALID, "prompt template must contain {context} and {question} placeholders")
	}
	prompt := strings.ReplaceAll(template, "{context}", contextText)
	return strings.ReplaceAll(prompt, "{question}", question), nil
}
