package models

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Config holds settings for the OpenAI-backed collaborators.
type Config struct {
	// APIKey for the OpenAI API. Empty disables the provider.
	APIKey string

	// BaseURL for OpenAI-compatible endpoints. Empty uses the default.
	BaseURL string

	// Model name. Empty uses gpt-4o-mini.
	Model string

	// Timeout per API call in seconds.
	Timeout int
}

// DefaultConfig returns sensible defaults with the provider disabled.
func DefaultConfig() Config {
	return Config{
		Timeout: 30,
	}
}

// OpenAIModels implements the collaborator interfaces on top of the OpenAI
// chat completions API. A single client backs document classification,
// entity tagging, summarization, question answering, and sentiment.
type OpenAIModels struct {
	client *openai.Client
	config Config
}

// NewOpenAIModels creates the provider. The API key is required; callers
// that have no key should leave the collaborators nil instead.
func NewOpenAIModels(config Config) (*OpenAIModels, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIModels{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// complete runs a single chat completion with the configured model and
// timeout and returns the trimmed response text.
func (m *OpenAIModels) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	model := m.config.Model
	if model == "" {
		model = openai.GPT4oMini
	}

	timeout := time.Duration(m.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := m.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// completeJSON runs a completion and decodes the response into out,
// tolerating markdown code fences around the JSON body.
func (m *OpenAIModels) completeJSON(ctx context.Context, system, user string, maxTokens int, out any) error {
	raw, err := m.complete(ctx, system, user, maxTokens)
	if err != nil {
		return err
	}

	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("malformed model response: %w", err)
	}
	return nil
}

// ClassifyDocument implements DocumentClassifier.
func (m *OpenAIModels) ClassifyDocument(ctx context.Context, text string) (Prediction, error) {
	const system = "You classify documents. Respond with a JSON object " +
		`{"label": string, "score": number between 0 and 1} and nothing else.`

	var pred Prediction
	if err := m.completeJSON(ctx, system, text, 100, &pred); err != nil {
		return Prediction{}, err
	}
	return pred, nil
}

// TagEntities implements EntityTagger.
func (m *OpenAIModels) TagEntities(ctx context.Context, text string) ([]TaggedToken, error) {
	const system = "You are a named entity tagger. Tokenize the text and tag " +
		"person, organization and location entities using BIO tags B-PER, I-PER, " +
		"B-ORG, I-ORG, B-LOC, I-LOC. Respond with a JSON array of " +
		`{"tag": string, "token": string} covering only tagged tokens, in ` +
		"document order, and nothing else."

	var tokens []TaggedToken
	if err := m.completeJSON(ctx, system, text, 1000, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

// Summarize implements Summarizer.
func (m *OpenAIModels) Summarize(ctx context.Context, text string, maxLength int) (string, error) {
	system := fmt.Sprintf("Summarize the document in at most %d words. "+
		"Respond with the summary text only.", maxLength)
	return m.complete(ctx, system, text, maxLength*2)
}

// AnswerQuestion implements QuestionAnswerer.
func (m *OpenAIModels) AnswerQuestion(ctx context.Context, question, docContext string) (Answer, error) {
	const system = "Answer the question using only the provided context. " +
		`Respond with a JSON object {"answer": string, "confidence": number ` +
		`between 0 and 1, "start": number, "end": number} where start and end ` +
		"are character offsets of the answer in the context, and nothing else."

	user := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", docContext, question)

	var ans Answer
	if err := m.completeJSON(ctx, system, user, 300, &ans); err != nil {
		return Answer{}, err
	}
	return ans, nil
}

// SupportsLanguage implements LinguisticExtractor. The prompt-driven
// extractor covers both pipeline languages.
func (m *OpenAIModels) SupportsLanguage(language string) bool {
	return language == "en" || language == "ar"
}

// ExtractEntities implements LinguisticExtractor.
func (m *OpenAIModels) ExtractEntities(ctx context.Context, text, language string) (*EntitySet, error) {
	system := fmt.Sprintf("You extract named entities from %s legal text. "+
		"Respond with a JSON object "+
		`{"people": [], "organizations": [], "locations": [], "dates": [], `+
		`"monetary_values": []}`+
		" listing each entity verbatim, and nothing else.", languageName(language))

	var set EntitySet
	if err := m.completeJSON(ctx, system, text, 1000, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// languageName spells out a language tag for prompts.
func languageName(language string) string {
	if language == "ar" {
		return "Arabic"
	}
	return "English"
}

// AnalyzeSentiment implements SentimentAnalyzer. The label follows the
// star-rating convention ("1 star" .. "5 stars") the core maps to
// negative/neutral/positive.
func (m *OpenAIModels) AnalyzeSentiment(ctx context.Context, text string) (Prediction, error) {
	const system = "Rate the sentiment of the text from 1 to 5 stars. " +
		`Respond with a JSON object {"label": "N stars", "score": number ` +
		"between 0 and 1} and nothing else."

	var pred Prediction
	if err := m.completeJSON(ctx, system, text, 50, &pred); err != nil {
		return Prediction{}, err
	}
	return pred, nil
}
