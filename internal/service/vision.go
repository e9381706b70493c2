package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/genai"
)

// ErrAnalysisTimeout is returned when the model doesn't answer within
// the configured deadline. Kept distinct from provider errors so the
// handler can map it to a different status code.
var ErrAnalysisTimeout = errors.New("analysis timed out")

const healthPrompt = `Analyze the health of the plant or flower shown in this image. Focus specifically on visible signs related to its well-being.
1.  **Overall Assessment:** Briefly describe the overall apparent health (e.g., healthy, stressed, showing issues).
2.  **Potential Issues:** Identify any specific potential problems visible in the image (e.g., for plants: yellowing leaves, drooping, spots, pests, signs of under/over-watering; for flowers: wilting, discoloration, pests, spots). Be specific if possible.
3.  **Care Suggestions:** Based ONLY on the visual evidence in the image, provide 1-3 concise, actionable care suggestions. Prioritize the most likely needed actions.

Format the output clearly using markdown headings for each section (Overall Assessment, Potential Issues, Care Suggestions). If no specific issues are visible, state that the plant or flower appears healthy.`

// Vision wraps the Gemini client used for plant health analysis
type Vision struct {
	Client  *genai.Client
	Model   string
	Timeout time.Duration
}

func NewVision(ctx context.Context) (*Vision, error) {
	apiKey := viper.GetString("ai.api_key")
	if apiKey == "" {
		return nil, errors.New("no Gemini API key configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client, %w", err)
	}

	return &Vision{
		Client:  client,
		Model:   viper.GetString("ai.model"),
		Timeout: time.Duration(viper.GetInt("ai.timeout")) * time.Second,
	}, nil
}

// AnalyzePlant sends the image together with the health prompt to the
// model and returns the markdown analysis. The call is bounded by the
// configured timeout so a stalled provider can't hold the request
// open forever.
func (v *Vision) AnalyzePlant(ctx context.Context, image []byte, mimeType, language string) (string, error) {
	if language == "" {
		language = "English"
	}

	ctx, cancel := context.WithTimeout(ctx, v.Timeout)
	defer cancel()

	prompt := fmt.Sprintf("%s\n\nPlease provide the response in %s.", healthPrompt, language)

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := v.Client.Models.GenerateContent(ctx, v.Model, contents, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.4),
		TopK:            genai.Ptr[float32](32),
		TopP:            genai.Ptr[float32](1),
		MaxOutputTokens: 8192,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", ErrAnalysisTimeout
		}

		return "", err
	}

	return resp.Text(), nil
}
