package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cityconnect/models"
	"cityconnect/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultChatService) StartSession(ctx context.Context) (*models.ChatSession, error) {
	now := time.Now().UTC()
	sess := &models.ChatSession{
		ID:        uuid.New().String(),
		Stage:     models.StageNone,
		Turns:     []models.Turn{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.Logger.Debug("Chat session started", zap.String("sessionID", sess.ID))
	return sess, nil
}

func (s *DefaultChatService) GetSession(ctx context.Context, id string) (*models.ChatSession, error) {
	return s.Sessions.Get(ctx, id)
}

// Render replays the whole turn log of a session.
func (s *DefaultChatService) Render(ctx context.Context, id string) (*models.ChatResponse, error) {
	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ChatResponse{
		SessionID: sess.ID,
		Stage:     sess.Stage,
		Turns:     models.RenderTurns(sess.Turns),
	}, nil
}

func (s *DefaultChatService) EndSession(ctx context.Context, id string) error {
	unlock := s.locks.Lock(id)
	defer unlock()

	if _, err := s.Sessions.Get(ctx, id); err != nil {
		return err
	}
	return s.Sessions.Delete(ctx, id)
}

// HandleMessage loads the session, runs one turn and saves the session back.
func (s *DefaultChatService) HandleMessage(ctx context.Context, id, text string) (*models.ChatResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.Sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	first := len(sess.Turns)
	s.Process(ctx, sess, text)

	if err := s.Sessions.Set(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return &models.ChatResponse{
		SessionID: sess.ID,
		Stage:     sess.Stage,
		Turns:     models.RenderTurns(sess.Turns[first:]),
	}, nil
}

// Process runs one user message against sess: it appends the user turn and
// exactly one assistant turn, and updates the stage and draft. Failures of
// collaborators become assistant replies; Process never fails the turn.
func (s *DefaultChatService) Process(ctx context.Context, sess *models.ChatSession, text string) models.Turn {
	sess.Append(models.NewTextTurn(models.RoleUser, text))

	tr := Advance(sess.Stage, sess.Draft, text)
	var reply models.Turn
	switch tr.Action {
	case ActionReply:
		sess.Stage, sess.Draft = tr.Stage, tr.Draft
		reply = models.NewTextTurn(models.RoleAssistant, tr.Reply)
	case ActionListDates:
		reply = s.listDates(ctx, sess)
	case ActionListSlots:
		reply = s.listSlots(ctx, sess)
	case ActionCommit:
		reply = s.commit(ctx, sess, tr.Draft)
	default:
		sess.Stage, sess.Draft = tr.Stage, tr.Draft
		reply = s.searchOrChat(ctx, sess, text)
	}

	sess.Append(reply)
	sess.UpdatedAt = time.Now().UTC()
	s.Logger.Debug("Chat turn processed",
		zap.String("sessionID", sess.ID),
		zap.Stringer("action", tr.Action),
		zap.Stringer("stage", sess.Stage))
	return reply
}

func (s *DefaultChatService) listDates(ctx context.Context, sess *models.ChatSession) models.Turn {
	park := sess.Draft.Park
	dates, err := s.Schedule.AvailableDates(ctx, park)
	if err != nil {
		s.Logger.Error("Failed to load available dates", zap.String("park", park), zap.Error(err))
		return models.NewTextTurn(models.RoleAssistant, msgScheduleOffline)
	}
	if len(dates) == 0 {
		return models.NewTextTurn(models.RoleAssistant, msgNoDates)
	}
	return models.NewTextTurn(models.RoleAssistant, msgAvailableDates(park, dates))
}

func (s *DefaultChatService) listSlots(ctx context.Context, sess *models.ChatSession) models.Turn {
	park, date := sess.Draft.Park, sess.Draft.Date
	day, err := models.ParseUserDate(date)
	if err != nil {
		return s.retryDate(sess, date)
	}
	slots, err := s.Schedule.AvailableSlots(ctx, park, day)
	if err != nil {
		s.Logger.Error("Failed to load available slots", zap.String("park", park), zap.String("date", date), zap.Error(err))
		return models.NewTextTurn(models.RoleAssistant, msgScheduleOffline)
	}
	if len(slots) == 0 {
		return models.NewTextTurn(models.RoleAssistant, msgNoSlots)
	}
	return models.NewTextTurn(models.RoleAssistant, msgAvailableSlots(park, date, slots))
}

// retryDate sends the dialogue back to the DATE stage after an unreadable date.
func (s *DefaultChatService) retryDate(sess *models.ChatSession, date string) models.Turn {
	s.Logger.Info("Asking for the booking date again", zap.String("sessionID", sess.ID), zap.String("date", date))
	sess.Stage = models.StageDate
	sess.Draft.Date = ""
	sess.Draft.TimeSlot = ""
	return models.NewTextTurn(models.RoleAssistant, msgBadDate(date))
}

func (s *DefaultChatService) commit(ctx context.Context, sess *models.ChatSession, draft models.ReservationDraft) models.Turn {
	res, err := s.Reservations.Commit(ctx, draft)
	switch {
	case errors.Is(err, booking.ErrInvalidDate):
		return s.retryDate(sess, draft.Date)
	case err != nil:
		s.Logger.Error("Failed to commit chat reservation", zap.String("sessionID", sess.ID), zap.Error(err))
		return models.NewTextTurn(models.RoleAssistant, msgCommitFailed)
	}

	sess.Stage = models.StageNone
	sess.Draft = models.ReservationDraft{}
	return models.NewTextTurn(models.RoleAssistant, msgConfirmed(res.Record))
}

func (s *DefaultChatService) searchOrChat(ctx context.Context, sess *models.ChatSession, text string) models.Turn {
	res, err := s.Amenities.Search(ctx, text)
	if err != nil {
		s.Logger.Warn("Amenity search failed, falling back to assistant", zap.Error(err))
	} else if len(res.Points) > 0 {
		return models.NewMapTurn(models.RoleAssistant, msgParkMap(res.Parks), res.Points)
	}
	return s.ask(ctx, sess)
}

func (s *DefaultChatService) ask(ctx context.Context, sess *models.ChatSession) models.Turn {
	if s.AssistantTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.AssistantTimeout)
		defer cancel()
	}

	reply, err := s.Assistant.Complete(ctx, models.History(sess.Turns))
	if err == nil && strings.TrimSpace(reply) == "" {
		err = errors.New("empty reply")
	}
	if err != nil {
		s.Logger.Error("Assistant request failed", zap.String("sessionID", sess.ID), zap.Error(err))
		return models.NewTextTurn(models.RoleAssistant, msgAssistantOffline)
	}
	return models.NewTextTurn(models.RoleAssistant, reply)
}
