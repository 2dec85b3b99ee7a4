package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"backend/models"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// ChecklistGenerator produces draft checklist sections for a piece of
// equipment. Handlers depend on this type rather than on the Gemini
// call directly so tests can substitute a stub.
type ChecklistGenerator func(ctx context.Context, equipmentType, siteContext string) ([]models.DraftSection, error)

// checklistSchema constrains the model response to an ordered array of
// {title, items:[{description, standard}]} objects.
var checklistSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {
				Type:        genai.TypeString,
				Description: "Inspection category name (e.g. Mechanical Installation, Grounding/Bonding)",
			},
			"items": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"description": {
							Type:        genai.TypeString,
							Description: "The condition to inspect",
						},
						"standard": {
							Type:        genai.TypeString,
							Description: "Acceptance criteria, with technical values where applicable",
						},
					},
					Required: []string{"description", "standard"},
				},
			},
		},
		Required: []string{"title", "items"},
	},
}

// GenerateChecklist asks Gemini for an installation inspection
// checklist for the given equipment type. It fails loudly on a
// missing API key, a transport failure, or an empty/unparseable model
// response; it never silently returns an empty checklist.
func GenerateChecklist(ctx context.Context, equipmentType, siteContext string) ([]models.DraftSection, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set; check your .env file")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = checklistSchema

	prompt := fmt.Sprintf(`Role: Senior Telecommunications Engineer (Quality Control)
Task: Create a rigorous Installation Inspection Checklist for: %q
Context/Specific Requirements: %q

Guidelines:
1. Group items into logical engineering categories (e.g. Mechanical Installation, Electrical/Power Wiring, Grounding/Bonding, Fiber Optic/Cabling, System Configuration).
2. Items must be specific and verifiable.
3. For each item provide a Standard Criteria (acceptance criteria) with technical values where applicable, for example:
   - Item: "Check DC voltage" -> Standard: "Must be within -48VDC +/- 10%%"
   - Item: "Fiber patch cord labeling" -> Standard: "Must match schematic, legible, industrial grade label"
4. Include safety checks relevant to high-voltage environments if applicable (tele-protection).`,
		equipmentType, siteContext)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("checklist generation failed: %w", err)
	}

	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return ParseChecklist([]byte(raw))
}

// responseText extracts the text of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("model returned no candidates")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && text != "" {
			return string(text), nil
		}
	}
	return "", errors.New("model returned no text content")
}

// ParseChecklist decodes the JSON checklist returned by the model. A
// malformed or empty checklist is an error: the creation flow must
// abort rather than build a project with nothing in it.
func ParseChecklist(raw []byte) ([]models.DraftSection, error) {
	var sections []models.DraftSection
	if err := json.Unmarshal(raw, &sections); err != nil {
		return nil, fmt.Errorf("model returned malformed checklist JSON: %w", err)
	}
	if len(sections) == 0 {
		return nil, errors.New("model returned an empty checklist")
	}
	return sections, nil
}
