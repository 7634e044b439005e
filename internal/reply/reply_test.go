package reply

import (
	"bitbucket.org/sotavant/eagle-energy-skill/internal/models"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestBuild(t *testing.T) {
	testCases := []struct {
		name      string
		utterance string
		isEnd     bool
		opts      []Option
		wantCard  *models.Card
		wantAttrs map[string]any
	}{
		{
			name:      "speech_only",
			utterance: "Goodbye!",
			isEnd:     true,
		},
		{
			name:      "with_card",
			utterance: "It's 12 34.",
			isEnd:     true,
			opts:      []Option{WithCard("Your Electricity Price", "$12.34 per kilowatt-hour")},
			wantCard: &models.Card{
				Type:    models.CardSimple,
				Title:   "Your Electricity Price",
				Content: "$12.34 per kilowatt-hour",
			},
		},
		{
			name:      "card_without_text_is_dropped",
			utterance: "hello",
			opts:      []Option{WithCard("title", "")},
		},
		{
			name:      "card_without_title_is_dropped",
			utterance: "hello",
			opts:      []Option{WithCard("", "text")},
		},
		{
			name:      "with_attributes",
			utterance: "I didn't understand that. Try again?",
			opts:      []Option{WithAttributes(map[string]any{"turn": 2})},
			wantAttrs: map[string]any{"turn": 2},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := Build(tc.utterance, tc.isEnd, tc.opts...)

			assert.Equal(t, models.Version, resp.Version)
			assert.Equal(t, models.SpeechPlainText, resp.Response.OutputSpeech.Type)
			assert.Equal(t, tc.utterance, resp.Response.OutputSpeech.Text)
			assert.Equal(t, tc.isEnd, resp.Response.ShouldEndSession)
			assert.Equal(t, tc.wantCard, resp.Response.Card)
			assert.Equal(t, tc.wantAttrs, resp.SessionAttributes)
		})
	}
}

func TestBuildEnvelope(t *testing.T) {
	resp := Build("Okay, exiting.", true, WithAttributes(map[string]any{"a": "b"}))

	b, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"version": "1.0",
		"sessionAttributes": {"a": "b"},
		"response": {
			"outputSpeech": {"type": "PlainText", "text": "Okay, exiting."},
			"shouldEndSession": true
		}
	}`, string(b))
}
