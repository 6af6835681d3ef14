package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlens/internal/config"
	"learnlens/internal/model"
)

// geminiStub returns a test server that answers every generateContent call
// with the given candidate text, and an oracle pointed at it.
func geminiStub(t *testing.T, status int, candidateText string) (*OracleService, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(status)
		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": candidateText}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	cfg := &config.AIConfig{
		APIKey:              "test-key",
		BaseURL:             srv.URL,
		Models:              config.GeminiModels{Vision: "stub-vision", Refine: "stub-refine"},
		TimeoutMS:           5000,
		MaxImagesPerRequest: 10,
	}
	return NewOracleServiceWithConfig(cfg, srv.Client()), srv
}

func oneImage() []model.ImageBlob {
	return []model.ImageBlob{{Data: []byte{0x89, 0x50, 0x4e, 0x47}, MediaType: "image/png"}}
}

func TestScoreSectionRequiresAPIKey(t *testing.T) {
	oracle := NewOracleServiceWithConfig(&config.AIConfig{MaxImagesPerRequest: 10}, nil)
	_, err := oracle.ScoreSection(context.Background(), "Lesson 1", oneImage(), "prompt")

	var cerr *model.ConfigurationError
	require.ErrorAs(t, err, &cerr)
}

func TestScoreSectionValidatesImageCount(t *testing.T) {
	oracle, srv := geminiStub(t, http.StatusOK, `{"scores":{}}`)
	defer srv.Close()

	var verr *model.ValidationError

	_, err := oracle.ScoreSection(context.Background(), "Lesson 1", nil, "prompt")
	require.ErrorAs(t, err, &verr)

	tooMany := make([]model.ImageBlob, oracle.MaxImages()+1)
	for i := range tooMany {
		tooMany[i] = oneImage()[0]
	}
	_, err = oracle.ScoreSection(context.Background(), "Lesson 1", tooMany, "prompt")
	require.ErrorAs(t, err, &verr)
}

func TestScoreSectionParsesValidResponse(t *testing.T) {
	body := `{"scores":{"spaced-repetition":{"score":4,"reasoning":"daily review deck","confidence":"high"},"pretesting":{"score":0,"reasoning":"","notApplicable":true}}}`
	oracle, srv := geminiStub(t, http.StatusOK, body)
	defer srv.Close()

	scores, err := oracle.ScoreSection(context.Background(), "Lesson 1", oneImage(), "prompt")
	require.NoError(t, err)

	assert.Equal(t, 4, scores["spaced-repetition"].Score)
	assert.Equal(t, model.ConfidenceHigh, scores["spaced-repetition"].Confidence)
	assert.True(t, scores["pretesting"].NotApplicable)
}

func TestScoreSectionExtractsFencedJSON(t *testing.T) {
	body := "Here are the scores:\n```json\n{\"scores\":{\"dual-coding\":{\"score\":3,\"reasoning\":\"some diagrams\",\"confidence\":\"medium\"}}}\n```\nHope this helps!"
	oracle, srv := geminiStub(t, http.StatusOK, body)
	defer srv.Close()

	scores, err := oracle.ScoreSection(context.Background(), "Lesson 1", oneImage(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, 3, scores["dual-coding"].Score)
}

func TestScoreSectionNormalizesZeroToNotApplicable(t *testing.T) {
	body := `{"scores":{"pretesting":{"score":0,"reasoning":"cannot tell"}}}`
	oracle, srv := geminiStub(t, http.StatusOK, body)
	defer srv.Close()

	scores, err := oracle.ScoreSection(context.Background(), "Pre-Quiz", oneImage(), "prompt")
	require.NoError(t, err)
	assert.True(t, scores["pretesting"].NotApplicable)
}

func TestScoreSectionFailsClosed(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no JSON at all", "I could not score this section."},
		{"unknown principle", `{"scores":{"made-up-principle":{"score":3}}}`},
		{"score out of range", `{"scores":{"dual-coding":{"score":7}}}`},
		{"bad confidence", `{"scores":{"dual-coding":{"score":3,"confidence":"certain"}}}`},
		{"missing scores map", `{"result":"ok"}`},
		{"truncated JSON", `{"scores":{"dual-coding":{"score"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			oracle, srv := geminiStub(t, http.StatusOK, tc.body)
			defer srv.Close()

			_, err := oracle.ScoreSection(context.Background(), "Lesson 1", oneImage(), "prompt")
			var oerr *model.OracleError
			require.ErrorAs(t, err, &oerr)
			assert.Equal(t, "Lesson 1", oerr.Section)
		})
	}
}

func TestScoreSectionUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()
	cfg := &config.AIConfig{
		APIKey:              "test-key",
		BaseURL:             srv.URL,
		Models:              config.GeminiModels{Vision: "stub-vision"},
		TimeoutMS:           5000,
		MaxImagesPerRequest: 10,
	}
	oracle := NewOracleServiceWithConfig(cfg, srv.Client())

	_, err := oracle.ScoreSection(context.Background(), "Lesson 1", oneImage(), "prompt")
	var oerr *model.OracleError
	require.ErrorAs(t, err, &oerr)
}

func TestRefineScoresParsesValidResponse(t *testing.T) {
	body := `{"refined":{"spaced-repetition":{"score":4,"reasoning":"user confirmed spaced reviews","actions":["surface the review schedule","show next-review dates"]}}}`
	oracle, srv := geminiStub(t, http.StatusOK, body)
	defer srv.Close()

	refined, err := oracle.RefineScores(context.Background(), "prompt")
	require.NoError(t, err)

	rs := refined["spaced-repetition"]
	assert.Equal(t, "spaced-repetition", rs.PrincipleID)
	assert.Equal(t, 4, rs.Score)
	assert.Len(t, rs.Actions, 2)
}

func TestRefineScoresRejectsZero(t *testing.T) {
	// Refined scores are real re-scores; not-applicable is not an option.
	body := `{"refined":{"spaced-repetition":{"score":0}}}`
	oracle, srv := geminiStub(t, http.StatusOK, body)
	defer srv.Close()

	_, err := oracle.RefineScores(context.Background(), "prompt")
	var oerr *model.OracleError
	require.ErrorAs(t, err, &oerr)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{`{"a":1}`, `{"a":1}`, true},
		{"prose before {\"a\":{\"b\":2}} prose after", `{"a":{"b":2}}`, true},
		{"```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{`{"a":"brace in string }"}`, `{"a":"brace in string }"}`, true},
		{`{"a":"escaped quote \" }"}`, `{"a":"escaped quote \" }"}`, true},
		{"no json here", "", false},
		{`{"unterminated":`, "", false},
	}
	for _, tc := range cases {
		got, ok := extractJSON(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lon...", truncate("long enough", 3))
}
