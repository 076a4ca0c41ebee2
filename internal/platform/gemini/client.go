package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/Manoj-Murari/task-analyzer/internal/advisor"
	"google.golang.org/genai"
)

// contentGenerator sends a prompt to a model and returns its text answer.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// genaiGenerator is the contentGenerator backed by the Gemini API.
type genaiGenerator struct {
	client *genai.Client
	model  string
}

func newGenaiGenerator(ctx context.Context, apiKey, model string) (*genaiGenerator, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", advisor.ErrInvalidConfig, err)
	}
	return &genaiGenerator{client: client, model: model}, nil
}

// GenerateContent implements contentGenerator.
func (g *genaiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      genai.Ptr[float32](0.2),
		})
	if err != nil {
		return "", err
	}

	switch {
	case resp == nil:
		return "", fmt.Errorf("%w: nil response", advisor.ErrInvalidResponse)
	case resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "":
		return "", fmt.Errorf("%w: prompt blocked (%s)", advisor.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	case len(resp.Candidates) == 0:
		return "", fmt.Errorf("%w: no candidates", advisor.ErrEmptyResponse)
	case resp.Candidates[0].FinishReason == genai.FinishReasonSafety:
		return "", advisor.ErrContentBlocked
	case resp.Candidates[0].Content == nil:
		return "", fmt.Errorf("%w: empty content", advisor.ErrEmptyResponse)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			text.WriteString(part.Text)
		}
	}
	return text.String(), nil
}
