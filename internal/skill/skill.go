// Package skill routes voice platform requests to the energy intents.
package skill

import (
	"bitbucket.org/sotavant/eagle-energy-skill/internal/eagle"
	"bitbucket.org/sotavant/eagle-energy-skill/internal/logger"
	"bitbucket.org/sotavant/eagle-energy-skill/internal/models"
	"bitbucket.org/sotavant/eagle-energy-skill/internal/reply"
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"time"
)

// ErrInvalidApplication is returned when a request was meant for another skill.
var ErrInvalidApplication = errors.New("invalid application id")

const cloudName = "Rainforest"

type Skill struct {
	appID  string
	poller eagle.Poller
	loc    *time.Location
	now    func() time.Time
}

// New builds a Skill answering only requests addressed to appID.
// A nil loc means UTC.
func New(appID string, p eagle.Poller, loc *time.Location) *Skill {
	if loc == nil {
		loc = time.UTC
	}
	return &Skill{
		appID:  appID,
		poller: p,
		loc:    loc,
		now:    time.Now,
	}
}

// Handle answers req. The only error it returns is ErrInvalidApplication;
// every other failure is turned into a spoken apology.
func (s *Skill) Handle(ctx context.Context, req *models.Request) (resp models.Response, err error) {
	if req.Session.Application.ApplicationID != s.appID {
		return models.Response{}, fmt.Errorf("%w: %q", ErrInvalidApplication, req.Session.Application.ApplicationID)
	}

	defer func() {
		if r := recover(); r != nil {
			resp = s.apologize(req, fmt.Errorf("panic: %v", r))
		}
	}()

	resp, err = s.dispatch(ctx, req)
	if err != nil {
		return s.apologize(req, err), nil
	}
	return resp, nil
}

func (s *Skill) dispatch(ctx context.Context, req *models.Request) (models.Response, error) {
	switch req.Request.Type {
	case models.TypeIntentRequest:
		return s.intent(ctx, req.Request.Intent, req.Session)
	case models.TypeSessionEndedRequest:
		return reply.Build("Goodbye!", true), nil
	case models.TypeLaunchRequest:
		return reply.Build("", false), nil
	default:
		return reply.Build("", false), nil
	}
}

func (s *Skill) apologize(req *models.Request, err error) models.Response {
	if errors.Is(err, eagle.ErrTimeout) {
		logger.Log.Error("timeout accessing "+cloudName+" cloud", zap.Error(err))
		return reply.Build(fmt.Sprintf("I couldn't access the %s Cloud.", cloudName), true)
	}

	intent := ""
	if req.Request.Intent != nil {
		intent = req.Request.Intent.Name
	}
	logger.Log.Error("unhandled error for request",
		zap.Error(err),
		zap.String("request_id", req.Request.RequestID),
		zap.String("request_type", req.Request.Type),
		zap.String("intent", intent),
		zap.String("session_id", req.Session.SessionID),
		zap.String("user_id", req.Session.User.UserID),
		zap.Any("attributes", req.Session.Attributes),
		zap.String("local_time", timeString(s.now(), s.loc)),
	)

	return reply.Build("Sorry, something went wrong.", true,
		reply.WithAttributes(req.Session.Normalized().Attributes))
}
