// Package reply assembles response envelopes for the voice platform.
package reply

import "bitbucket.org/sotavant/eagle-energy-skill/internal/models"

type options struct {
	cardTitle  string
	cardText   string
	attributes map[string]any
}

type Option func(*options)

// WithCard attaches a simple card. It is dropped unless both title and text are set.
func WithCard(title, text string) Option {
	return func(o *options) {
		o.cardTitle = title
		o.cardText = text
	}
}

// WithAttributes asks the platform to hand attrs back on the next turn of the session.
func WithAttributes(attrs map[string]any) Option {
	return func(o *options) {
		o.attributes = attrs
	}
}

// Build returns a response speaking utterance as plain text.
func Build(utterance string, isEnd bool, opts ...Option) models.Response {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	resp := models.Response{
		Version:           models.Version,
		SessionAttributes: o.attributes,
		Response: models.ResponsePayload{
			OutputSpeech: models.OutputSpeech{
				Type: models.SpeechPlainText,
				Text: utterance,
			},
			ShouldEndSession: isEnd,
		},
	}

	if o.cardTitle != "" && o.cardText != "" {
		resp.Response.Card = &models.Card{
			Type:    models.CardSimple,
			Title:   o.cardTitle,
			Content: o.cardText,
		}
	}

	return resp
}
