package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"learnlens/internal/catalog"
	"learnlens/internal/config"
	"learnlens/internal/model"
)

// OracleService is the adapter for the Gemini vision API. It is the only
// component that talks to the scoring oracle; everything downstream treats
// its output as already validated.
type OracleService struct {
	config *config.AIConfig
	client *http.Client
}

// NewOracleService creates a new oracle service
func NewOracleService() *OracleService {
	cfg := config.DefaultAIConfig()
	return &OracleService{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		},
	}
}

// NewOracleServiceWithConfig creates an oracle service with explicit config
// and client, used by tests to point at a stub server.
func NewOracleServiceWithConfig(cfg *config.AIConfig, client *http.Client) *OracleService {
	if client == nil {
		client = &http.Client{Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond}
	}
	return &OracleService{config: cfg, client: client}
}

// MaxImages returns the per-request image cap.
func (s *OracleService) MaxImages() int {
	return s.config.MaxImagesPerRequest
}

// ScoreSection sends one section's screenshots plus the built prompt to the
// vision model and returns the validated per-principle scores. No retries:
// the first failure propagates so the caller can abort the run.
func (s *OracleService) ScoreSection(ctx context.Context, sectionName string, images []model.ImageBlob, prompt string) (map[string]model.ScoreResult, error) {
	if !s.config.IsEnabled() {
		return nil, &model.ConfigurationError{Reason: "GEMINI_API_KEY is not set"}
	}
	if len(images) == 0 {
		return nil, &model.ValidationError{Reason: fmt.Sprintf("section %q has no images", sectionName)}
	}
	if len(images) > s.config.MaxImagesPerRequest {
		return nil, &model.ValidationError{
			Reason: fmt.Sprintf("section %q has %d images, maximum is %d", sectionName, len(images), s.config.MaxImagesPerRequest),
		}
	}

	text, err := s.callGemini(ctx, s.config.Models.Vision, prompt, images)
	if err != nil {
		return nil, &model.OracleError{Section: sectionName, Reason: "scoring call failed", Err: err}
	}

	scores, err := parseScoresResponse(text)
	if err != nil {
		return nil, &model.OracleError{Section: sectionName, Reason: err.Error()}
	}
	return scores, nil
}

// RefineScores sends the batched refinement prompt (text only) and returns
// the validated refined scores keyed by principle id.
func (s *OracleService) RefineScores(ctx context.Context, prompt string) (map[string]model.RefinedScore, error) {
	if !s.config.IsEnabled() {
		return nil, &model.ConfigurationError{Reason: "GEMINI_API_KEY is not set"}
	}

	text, err := s.callGemini(ctx, s.config.Models.Refine, prompt, nil)
	if err != nil {
		return nil, &model.OracleError{Reason: "refinement call failed", Err: err}
	}

	refined, err := parseRefinedResponse(text)
	if err != nil {
		return nil, &model.OracleError{Reason: err.Error()}
	}
	return refined, nil
}

// geminiPart is one part of a Gemini content message.
type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

// callGemini makes a generateContent request with the prompt and optional
// inline images, returning the first candidate's text.
func (s *OracleService) callGemini(ctx context.Context, modelName, prompt string, images []model.ImageBlob) (string, error) {
	parts := make([]geminiPart, 0, len(images)+1)
	for _, img := range images {
		mediaType := img.MediaType
		if mediaType == "" {
			mediaType = "image/png"
		}
		parts = append(parts, geminiPart{
			InlineData: &geminiInlineData{
				MimeType: mediaType,
				Data:     base64.StdEncoding.EncodeToString(img.Data),
			},
		})
	}
	parts = append(parts, geminiPart{Text: prompt})

	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": parts},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", s.config.ModelEndpoint(modelName), s.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) > 0 && len(geminiResp.Candidates[0].Content.Parts) > 0 {
		return geminiResp.Candidates[0].Content.Parts[0].Text, nil
	}

	return "", fmt.Errorf("empty response from Gemini")
}

// extractJSON locates the first balanced top-level {...} block in text.
// Models sometimes wrap the JSON in prose or code fences despite the
// output-format instruction; everything around the block is discarded.
func extractJSON(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false
	for i, r := range text {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return text[start : i+1], true
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}
	return "", false
}

// parseScoresResponse extracts and strictly validates the scores payload.
// Any shape mismatch fails closed rather than trusting the model.
func parseScoresResponse(text string) (map[string]model.ScoreResult, error) {
	raw, ok := extractJSON(text)
	if !ok {
		return nil, fmt.Errorf("response contains no JSON object")
	}

	var payload struct {
		Scores map[string]model.ScoreResult `json:"scores"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %v", err)
	}
	if payload.Scores == nil {
		return nil, fmt.Errorf("response is missing the scores map")
	}

	for id, sr := range payload.Scores {
		if _, known := catalog.PrincipleByID(id); !known {
			return nil, fmt.Errorf("response scored unknown principle %q", id)
		}
		if sr.Score < 0 || sr.Score > 5 {
			return nil, fmt.Errorf("principle %q has score %d outside 0-5", id, sr.Score)
		}
		if sr.Confidence != "" && sr.Confidence != model.ConfidenceHigh &&
			sr.Confidence != model.ConfidenceMedium && sr.Confidence != model.ConfidenceLow {
			return nil, fmt.Errorf("principle %q has unknown confidence %q", id, sr.Confidence)
		}
		// Score 0 is only ever "not applicable"; normalize the flag.
		if sr.Score == 0 && !sr.NotApplicable {
			sr.NotApplicable = true
			payload.Scores[id] = sr
		}
	}
	return payload.Scores, nil
}

// parseRefinedResponse extracts and validates the refinement payload.
func parseRefinedResponse(text string) (map[string]model.RefinedScore, error) {
	raw, ok := extractJSON(text)
	if !ok {
		return nil, fmt.Errorf("response contains no JSON object")
	}

	var payload struct {
		Refined map[string]model.RefinedScore `json:"refined"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %v", err)
	}
	if payload.Refined == nil {
		return nil, fmt.Errorf("response is missing the refined map")
	}

	for id, rs := range payload.Refined {
		if _, known := catalog.PrincipleByID(id); !known {
			return nil, fmt.Errorf("response refined unknown principle %q", id)
		}
		if rs.Score < 1 || rs.Score > 5 {
			return nil, fmt.Errorf("principle %q has refined score %d outside 1-5", id, rs.Score)
		}
		rs.PrincipleID = id
		payload.Refined[id] = rs
	}
	return payload.Refined, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
