package aiUtil

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/muthu-pencilcard/connectcard-backend/src/pkg/jsonUtil"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type Ai struct {
	gptClient *openai.Client
	log       *zap.SugaredLogger
}

func NewAi(logger *zap.SugaredLogger, apiKey string) *Ai {
	return &Ai{
		gptClient: openai.NewClient(apiKey),
		log:       logger,
	}
}

// ParsedCard is the structured result of scanning a physical business card.
type ParsedCard struct {
	BusinessName string `json:"businessName"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Website      string `json:"website"`
	Address      string `json:"address"`
	Tagline      string `json:"tagline"`
	Category     string `json:"category"`
}

// SearchIntent is the structured filter set extracted from a free-text
// directory search.
type SearchIntent struct {
	Filters SearchFilters `json:"filters"`
	Message string        `json:"message"`
}

type SearchFilters struct {
	Category   string `json:"category,omitempty"`
	City       string `json:"city,omitempty"`
	SearchInfo string `json:"searchInfo,omitempty"` // keyword fallback when no category is clear
}

const cardParserPrompt = `You are an expert business card scanner. Extract the specific fields from the raw OCR text the user provides.
Return ONLY a valid JSON object with the following keys:
- businessName (string)
- name (string, the person's name if present)
- phone (string, formatted consistently)
- email (string)
- website (string)
- address (string)
- tagline (string, a short catchy slogan if found)
- category (string, a single word industry like 'Plumber', 'Doctor', 'Retail')
If a field is not found, leave it as an empty string.`

const searchAssistantPrompt = `You are a helpful concierge for a business directory app.
Interpret the user's search query and extract structured filters to query the database.
Return a STRICT JSON object only. No markdown. No conversational text outside the JSON.
Output schema:
{
  "filters": {
    "category": "CategoryName",
    "city": "CityName",
    "searchInfo": "keyword fallback when no category is clear"
  },
  "message": "A friendly short response affirming what you are looking for."
}
Map user intent to standard categories like 'Plumber', 'Doctor', 'Restaurant', 'Gym', 'Spa', 'Shopping'. Omit filters you cannot extract.`

// ParseCardText extracts contact fields from raw OCR text of a business card.
func (ai *Ai) ParseCardText(rawText string) (ParsedCard, error) {
	content, err := ai.complete(cardParserPrompt, rawText, 1000)
	if err != nil {
		return ParsedCard{}, err
	}

	jsonText, err := jsonUtil.ExtractJsonObject(content)
	if err != nil {
		ai.log.Error("Card parser completion contained no usable JSON: ", content)
		return ParsedCard{}, err
	}

	var card ParsedCard
	if err := json.Unmarshal([]byte(jsonText), &card); err != nil {
		return ParsedCard{}, err
	}
	return card, nil
}

// ExtractSearchIntent maps a free-text query to directory search filters.
func (ai *Ai) ExtractSearchIntent(query string) (SearchIntent, error) {
	content, err := ai.complete(searchAssistantPrompt, query, 300)
	if err != nil {
		return SearchIntent{}, err
	}

	jsonText, err := jsonUtil.ExtractJsonObject(content)
	if err != nil {
		ai.log.Error("Search assistant completion contained no usable JSON: ", content)
		return SearchIntent{}, err
	}

	var intent SearchIntent
	if err := json.Unmarshal([]byte(jsonText), &intent); err != nil {
		return SearchIntent{}, err
	}
	return intent, nil
}

func (ai *Ai) complete(systemPrompt string, userContent string, maxTokens int) (string, error) {
	response, err := ai.gptClient.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Temperature: 0.2,
			MaxTokens:   maxTokens,
			Model:       openai.GPT4,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: userContent,
				},
			},
		},
	)
	if err != nil {
		e := &openai.APIError{}
		if errors.As(err, &e) {
			switch e.HTTPStatusCode {
			case 401:
				ai.log.Error("Error generating completion due to invalid API key: ", err)
			case 429:
				ai.log.Error("Error generating completion due to rate limit exceeded: ", err)
			case 500:
				ai.log.Error("Error generating completion due to OpenAI server error: ", err)
			default:
				ai.log.Error("Error generating completion due to unknown error: ", err)
			}
		}
		return "", err
	}

	if len(response.Choices) == 0 {
		ai.log.Error("Completion response has no choices: ", jsonUtil.AnyToJson(response))
		return "", errors.New("completion response has no choices")
	}

	return response.Choices[0].Message.Content, nil
}
