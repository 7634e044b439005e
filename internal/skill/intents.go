package skill

import (
	"bitbucket.org/sotavant/eagle-energy-skill/internal/models"
	"bitbucket.org/sotavant/eagle-energy-skill/internal/reply"
	"context"
	"errors"
	"fmt"
	"strconv"
)

var errMissingIntent = errors.New("intent request without intent")

func (s *Skill) intent(ctx context.Context, intent *models.Intent, session models.Session) (models.Response, error) {
	if intent == nil {
		return models.Response{}, errMissingIntent
	}
	session = session.Normalized()

	switch intent.Name {
	case models.IntentCheckDemand:
		return s.checkDemand(ctx)
	case models.IntentCheckPrice:
		return s.checkPrice(ctx)
	case models.IntentCheckSummation:
		return reply.Build("This code not yet written.", true), nil
	case models.IntentStop, models.IntentCancel:
		return reply.Build("Okay, exiting.", true), nil
	case models.IntentHelp:
		return reply.Build("This sentence is helpful.", false), nil
	default:
		return reply.Build("I didn't understand that. Try again?", false,
			reply.WithAttributes(session.Attributes)), nil
	}
}

func (s *Skill) checkDemand(ctx context.Context) (models.Response, error) {
	d, err := s.poller.InstantaneousDemand(ctx)
	if err != nil {
		return models.Response{}, fmt.Errorf("check demand: %w", err)
	}
	return reply.Build("Current demand is "+demandText(d.Kilowatts), true), nil
}

func (s *Skill) checkPrice(ctx context.Context) (models.Response, error) {
	p, err := s.poller.Price(ctx)
	if err != nil {
		return models.Response{}, fmt.Errorf("check price: %w", err)
	}
	return reply.Build(priceText(p.Hundredths), true,
		reply.WithCard("Your Electricity Price", priceCardText(p.Hundredths))), nil
}

// demandText truncates toward zero; it does not round.
func demandText(kw float64) string {
	if kw < 1 {
		return fmt.Sprintf("%d Watts.", int64(kw*1000))
	}
	return fmt.Sprintf("%d kilowatts.", int64(kw))
}

// priceText speaks the last two characters of the price as cents and the rest as dollars.
// Prices below 100 have no dollars part.
func priceText(hundredths float64) string {
	s := strconv.FormatFloat(hundredths, 'f', -1, 64)
	cut := len(s) - 2
	if cut < 0 {
		cut = 0
	}
	return fmt.Sprintf("It's %s %s.", s[:cut], s[cut:])
}

func priceCardText(hundredths float64) string {
	return fmt.Sprintf("$%.2f per kilowatt-hour", hundredths/100)
}
