package gemini

import (
	"context"

	"github.com/fwojciec/presrag"
	"google.golang.org/genai"
)

// DefaultModel is used when no generation model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements presrag.Generator at compile time.
var _ presrag.Generator = (*Generator)(nil)

// Generator implements presrag.Generator using Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator. An empty model selects DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// Generate sends the prompt to Gemini and returns the response text
// verbatim.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", presrag.Errorf(presrag.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", presrag.Errorf(presrag.EUNAVAILABLE, "gemini generation failed: %v", err)
	}
	if result == nil {
		return "", presrag.Errorf(presrag.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The prompt template carries the grounding instructions, so only sampling
// is configured here.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
