package models

import "encoding/json"

// Request types sent by the voice platform.
const (
	TypeIntentRequest       = "IntentRequest"
	TypeLaunchRequest       = "LaunchRequest"
	TypeSessionEndedRequest = "SessionEndedRequest"
)

// Intent names handled by the skill.
const (
	IntentCheckDemand    = "CheckDemandIntent"
	IntentCheckPrice     = "CheckPriceIntent"
	IntentCheckSummation = "CheckSummationIntent"
	IntentStop           = "AMAZON.StopIntent"
	IntentCancel         = "AMAZON.CancelIntent"
	IntentHelp           = "AMAZON.HelpIntent"
)

const (
	SpeechPlainText = "PlainText"
	CardSimple      = "Simple"
	Version         = "1.0"
)

// Request describes an incoming skill request.
// See https://developer.amazon.com/docs/custom-skills/request-and-response-json-reference.html
type Request struct {
	Version string      `json:"version"`
	Session Session     `json:"session"`
	Request RequestBody `json:"request"`
}

type Session struct {
	New         bool           `json:"new"`
	SessionID   string         `json:"sessionId"`
	Application Application    `json:"application"`
	Attributes  map[string]any `json:"attributes"`
	User        User           `json:"user"`
}

// Normalized returns a copy of the session whose Attributes is never nil.
// The copy shares the attribute map with the receiver when it is present.
func (s Session) Normalized() Session {
	if s.Attributes == nil {
		s.Attributes = map[string]any{}
	}
	return s
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID      string `json:"userId"`
	AccessToken string `json:"accessToken,omitempty"`
}

type RequestBody struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Timestamp string  `json:"timestamp"`
	Locale    string  `json:"locale,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Response describes the reply envelope returned to the platform.
type Response struct {
	Version           string          `json:"version"`
	SessionAttributes map[string]any  `json:"sessionAttributes,omitempty"`
	Response          ResponsePayload `json:"response"`
}

// MarshalJSON keeps sessionAttributes on the wire whenever attributes were set, even when empty.
func (r Response) MarshalJSON() ([]byte, error) {
	type response Response

	var attrs *map[string]any
	if r.SessionAttributes != nil {
		attrs = &r.SessionAttributes
	}
	return json.Marshal(struct {
		response
		SessionAttributes *map[string]any `json:"sessionAttributes,omitempty"`
	}{
		response:          response(r),
		SessionAttributes: attrs,
	})
}

type ResponsePayload struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Card             *Card        `json:"card,omitempty"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Card is shown alongside the spoken reply on devices with a screen.
type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
