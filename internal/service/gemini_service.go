package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/adnanfr/Binturong/config"
	"github.com/adnanfr/Binturong/internal/apperror"
	"github.com/adnanfr/Binturong/internal/model"
	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

// chatHistoryWindow bounds the Actor prompt: only the most recent messages
// are replayed, oldest-first.
const chatHistoryWindow = 20

// generationTimeout bounds every Gemini round trip. The upstream API has no
// hard limit of its own, and a handler stuck on a slow generation blocks
// that request until this fires.
const generationTimeout = 15 * time.Second

// GeminiService is the two-stage persona workflow. The Architect stage
// authors a scenario plus the hidden persona instruction for a dataset; the
// Actor stage role-plays the stakeholder during chat, driven by that
// instruction. Both are stateless: everything they need is passed in.
type GeminiService interface {
	GenerateScenario(ctx context.Context, student *model.Student, dataset *model.Dataset) (*model.Scenario, error)
	GenerateChatReply(ctx context.Context, scenario *model.Scenario, history []model.ChatMessage, newMessage string) (string, error)
}

type geminiService struct {
	architect *genai.GenerativeModel
	actor     *genai.GenerativeModel
	cfg       *config.Config
}

func NewGeminiService(cfg *config.Config) (GeminiService, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiService will be non-functional.")
		return &geminiService{cfg: cfg}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	architect := client.GenerativeModel("gemini-1.5-flash")
	architect.SetTemperature(0.7)
	architect.ResponseMIMEType = "application/json"

	// Higher temperature reads as a more natural conversation partner.
	actor := client.GenerativeModel("gemini-1.5-flash")
	actor.SetTemperature(0.8)

	return &geminiService{architect: architect, actor: actor, cfg: cfg}, nil
}

// buildArchitectPrompt assembles the single structured prompt for the
// Architect stage from the dataset metadata and the student identity.
func buildArchitectPrompt(student *model.Student, dataset *model.Dataset) string {
	columns := "Not provided"
	if cols := dataset.Columns(); len(cols) > 0 {
		columns = strings.Join(cols, ", ")
	}
	summary := dataset.MetadataSummary
	if summary == "" {
		summary = "No description provided"
	}
	sampleData := dataset.SampleData
	if sampleData == "" {
		sampleData = "No sample data provided"
	}
	qualityNotes := dataset.DataQualityNotes
	if qualityNotes == "" {
		qualityNotes = "None specified"
	}

	var b strings.Builder
	b.WriteString(`SYSTEM PROMPT:
You are a Senior Hospital Administrator and Educational Designer.
Your goal is to create a realistic, immersive Data Analytics assignment based on a provided dataset.

INPUT DATA:
`)
	fmt.Fprintf(&b, "- Dataset Name: %s\n", dataset.Name)
	fmt.Fprintf(&b, "- Description: %s\n", summary)
	fmt.Fprintf(&b, "- Columns: %s\n", columns)
	fmt.Fprintf(&b, "- Sample Data:\n%s\n", sampleData)
	fmt.Fprintf(&b, "- Data Quality Notes: %s\n", qualityNotes)
	b.WriteString("\nSTUDENT INFO:\n")
	fmt.Fprintf(&b, "- NIM: %s\n", student.NIM)
	fmt.Fprintf(&b, "- Name: %s\n", student.Name)
	b.WriteString(`
INSTRUCTIONS:
You must output a single valid JSON object containing the assignment details.
The assignment must simulate a "messy" real-world request that teaches data cleaning and analysis.

JSON STRUCTURE:
{
  "scenario_title": "A catchy, specific title (e.g., 'The Tuesday Cardiology Crisis')",
  "difficulty_level": "Beginner/Intermediate/Advanced",
  "stakeholder_name": "Full name of the fictional requester (use Indonesian names)",
  "stakeholder_role": "Specific job title (e.g., Head Nurse, IT Manager, Billing Specialist)",
  "email_body": "A short, semi-formal email from the stakeholder describing a business problem they suspect exists in the data. Do NOT mention specific algorithms or technical terms. Describe the symptom (e.g., 'Why are patients waiting so long?'). Make it feel like a real email from a busy hospital staff member. Keep it under 150 words.",
  "key_objectives": ["List of 3 distinct analytical questions the student must answer using this dataset"],
  "persona_system_instruction": "A detailed system prompt that defines how the AI chatbot should behave when the student talks to this stakeholder. See critical rules below."
}

CRITICAL RULES FOR 'persona_system_instruction':
1. This instruction will be fed into a Chat LLM later as the system message.
2. Start with: "You are [stakeholder_name], [stakeholder_role] at [hospital/institution name]."
3. Define the persona's personality (e.g., impatient, confused, detail-oriented, friendly but busy).
4. Include CONTEXT section mentioning the specific dataset columns by name.
5. Include YOUR BEHAVIOR section with:
   - Tone (e.g., direct, friendly, stressed)
   - Knowledge level (knows domain, NOT data analysis)
   - Goals (what insights they need)
6. Include RESTRICTIONS section that:
   - EXPLICITLY FORBIDS writing code (Python/SQL/R)
   - Provides a specific redirect phrase if asked for code (e.g., "I'm a doctor, not a programmer")
   - Encourages asking about data quality (e.g., "Did you check for null values?")
   - Mentions specific data quality issues from the dataset notes
7. Make the persona mention specific column names when discussing the problem.
8. The persona should know the domain (medical/hospital) but NOT know data analysis.
9. Keep the persona_system_instruction under 400 words.

EDUCATIONAL GOALS:
- The scenario should require the student to handle missing data
- The scenario should require data type conversions or cleaning
- The key_objectives should guide the student toward discovering insights
- Make it realistic - like a real stakeholder request

Generate the JSON now. Return ONLY valid JSON, no additional text.`)
	return b.String()
}

// parseScenarioResponse decodes the Architect's JSON output. Anything short
// of a complete scenario with exactly 3 objectives is rejected; a rejected
// scenario is never persisted, the caller simply regenerates.
func parseScenarioResponse(raw string) (*model.Scenario, error) {
	var scenario model.Scenario
	if err := json.Unmarshal([]byte(raw), &scenario); err != nil {
		return nil, fmt.Errorf("architect returned malformed JSON: %w", err)
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	if len(scenario.KeyObjectives) != 3 {
		return nil, fmt.Errorf("architect returned %d key_objectives, want 3", len(scenario.KeyObjectives))
	}
	return &scenario, nil
}

// buildActorPrompt concatenates the hidden persona instruction, a rendered
// transcript of the most recent messages (oldest-first) and the student's
// new message.
func buildActorPrompt(scenario *model.Scenario, history []model.ChatMessage, newMessage string) string {
	if len(history) > chatHistoryWindow {
		history = history[len(history)-chatHistoryWindow:]
	}

	var transcript strings.Builder
	for _, msg := range history {
		label := scenario.StakeholderName
		if msg.Sender == model.SenderStudent {
			label = "Student"
		}
		fmt.Fprintf(&transcript, "%s: %s\n", label, msg.Content)
	}

	return fmt.Sprintf(`%s

CHAT HISTORY:
%s

Student's new message: %s

Respond as %s:`, scenario.PersonaSystemInstruction, transcript.String(), newMessage, scenario.StakeholderName)
}

// responseText flattens the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	return text.String()
}

func generationErr(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", apperror.ErrGenerationTimeout, err)
	}
	return fmt.Errorf("%w: %v", apperror.ErrGeneration, err)
}

func (s *geminiService) GenerateScenario(ctx context.Context, student *model.Student, dataset *model.Dataset) (*model.Scenario, error) {
	if s.architect == nil {
		return nil, fmt.Errorf("%w: gemini client not initialized", apperror.ErrGeneration)
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	prompt := buildArchitectPrompt(student, dataset)
	resp, err := s.architect.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("dataset", dataset.Name).Str("nim", student.NIM).Msg("Architect call failed")
		return nil, generationErr(ctx, err)
	}

	raw := responseText(resp)
	if raw == "" {
		log.Warn().Str("dataset", dataset.Name).Msg("Architect returned no text content")
		return nil, fmt.Errorf("%w: empty response", apperror.ErrGeneration)
	}

	scenario, err := parseScenarioResponse(raw)
	if err != nil {
		log.Warn().Err(err).Str("raw", raw).Msg("Failed to parse Architect scenario JSON")
		return nil, fmt.Errorf("%w: %v", apperror.ErrGeneration, err)
	}

	log.Info().Str("nim", student.NIM).Str("title", scenario.ScenarioTitle).Msg("Scenario generated")
	return scenario, nil
}

func (s *geminiService) GenerateChatReply(ctx context.Context, scenario *model.Scenario, history []model.ChatMessage, newMessage string) (string, error) {
	if s.actor == nil {
		return "", fmt.Errorf("%w: gemini client not initialized", apperror.ErrGeneration)
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	prompt := buildActorPrompt(scenario, history, newMessage)
	resp, err := s.actor.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Str("stakeholder", scenario.StakeholderName).Msg("Actor call failed")
		return "", generationErr(ctx, err)
	}

	reply := strings.TrimSpace(responseText(resp))
	if reply == "" {
		log.Warn().Str("stakeholder", scenario.StakeholderName).Msg("Actor returned no text content")
		return "", fmt.Errorf("%w: empty response", apperror.ErrGeneration)
	}
	return reply, nil
}
