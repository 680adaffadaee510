package services

import (
	"context"
	"fmt"
	"time"

	"github.com/alzcare/screening-service/internal/catalog"
	"github.com/alzcare/screening-service/internal/events"
	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/repositories"
	"github.com/alzcare/screening-service/internal/scoring"
	"github.com/alzcare/screening-service/internal/session"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const eventSource = "screening-service"

// ===== REQUEST / RESPONSE TYPES =====

type StartSessionRequest struct {
	SubjectID string  `json:"subject_id" validate:"required,max=64"`
	IssuerID  *string `json:"issuer_id" validate:"omitempty,max=64"`
	// ScheduleID is set when the session answers a pending appointment.
	ScheduleID string `json:"schedule_id" validate:"omitempty,max=64"`
}

// ItemView is the item as presented to the test-taker; answer keys stay
// server-side.
type ItemView struct {
	ID        string          `json:"id"`
	Section   string          `json:"section"`
	Title     string          `json:"title"`
	Type      models.ItemType `json:"type"`
	Options   []string        `json:"options,omitempty"`
	WordCount int             `json:"word_count,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
}

type SessionResponse struct {
	SessionID string        `json:"session_id"`
	Index     int           `json:"index"`
	Total     int           `json:"total"`
	IsFirst   bool          `json:"is_first"`
	IsLast    bool          `json:"is_last"`
	Item      *ItemView     `json:"item"`
	Restored  session.Input `json:"restored"`
	// Warning carries degraded-continue notices (custom fetch failure,
	// fallback catalog substitution) surfaced to the caller.
	Warning string `json:"warning,omitempty"`
}

type ResultView struct {
	ResultID       string                `json:"result_id"`
	SectionScores  []models.SectionScore `json:"section_scores"`
	TotalScore     int                   `json:"total_score"`
	Interpretation models.Interpretation `json:"interpretation"`
	Feedback       []string              `json:"feedback"`
}

type AdvanceResponse struct {
	Completed bool             `json:"completed"`
	Session   *SessionResponse `json:"session,omitempty"`
	Result    *ResultView      `json:"result,omitempty"`
}

// ===== SERVICE =====

type ScreeningService interface {
	StartSession(ctx context.Context, req *StartSessionRequest) (*SessionResponse, error)
	GetSession(ctx context.Context, sessionID string) (*SessionResponse, error)
	Advance(ctx context.Context, sessionID string, in session.Input) (*AdvanceResponse, error)
	StepBack(ctx context.Context, sessionID string, in session.Input) (*SessionResponse, error)
	ListResults(ctx context.Context, subjectID string) ([]*models.ScreeningResult, error)
}

type screeningService struct {
	catalog    *catalog.Catalog
	locale     catalog.LocaleProvider
	randomizer *catalog.Randomizer
	sessions   *session.Manager
	results    repositories.ResultRepository
	schedules  ScheduleService
	publisher  events.EventPublisher
	logger     utils.Logger
	validator  *utils.Validator
}

func NewScreeningService(
	cat *catalog.Catalog,
	locale catalog.LocaleProvider,
	randomizer *catalog.Randomizer,
	sessions *session.Manager,
	results repositories.ResultRepository,
	schedules ScheduleService,
	publisher events.EventPublisher,
	logger utils.Logger,
	validator *utils.Validator,
) ScreeningService {
	return &screeningService{
		catalog:    cat,
		locale:     locale,
		randomizer: randomizer,
		sessions:   sessions,
		results:    results,
		schedules:  schedules,
		publisher:  publisher,
		logger:     logger,
		validator:  validator,
	}
}

// StartSession assembles the item pipeline (merge, template resolution,
// randomization, each exactly once) and hands out a fresh session at its
// first item. Catalog degradation never aborts the start.
func (s *screeningService) StartSession(ctx context.Context, req *StartSessionRequest) (*SessionResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	s.logger.Info("Starting screening session",
		"subject_id", req.SubjectID,
		"schedule_id", req.ScheduleID)

	warning := ""
	items, err := s.catalog.Assemble(ctx, req.SubjectID)
	if err != nil {
		// Degraded-continue: the static-only list came back alongside err.
		warning = "custom questions unavailable, continuing with the standard set"
	}

	items = catalog.ResolveTemplates(items, s.locale)
	items = s.randomizer.Apply(items)

	if len(items) == 0 {
		s.logger.Warn("assembled catalog is empty, substituting fallback item",
			"subject_id", req.SubjectID)
		items = []models.Item{catalog.FallbackItem()}
		warning = ErrEmptyCatalog.Error() + ", using a single fallback question"
	}

	sess := session.New(uuid.NewString(), req.SubjectID, req.ScheduleID, req.IssuerID, items)
	s.sessions.Put(sess)

	resp := s.sessionResponse(sess)
	resp.Warning = warning
	return resp, nil
}

func (s *screeningService) GetSession(ctx context.Context, sessionID string) (*SessionResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if sess.Completed() {
		return nil, ErrSessionCompleted
	}
	return s.sessionResponse(sess), nil
}

// Advance captures the current input and moves forward. On the last item it
// scores the session, returns the result immediately, and finalizes the
// outcome (persistence, event, schedule reconciliation) without the caller
// waiting on any of it.
func (s *screeningService) Advance(ctx context.Context, sessionID string, in session.Input) (*AdvanceResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if sess.Completed() {
		return nil, ErrSessionCompleted
	}

	if done := sess.Next(in); !done {
		return &AdvanceResponse{Session: s.sessionResponse(sess)}, nil
	}

	items, answers := sess.Snapshot()
	scored := scoring.Score(items, answers)

	result := &models.ScreeningResult{
		ID:             uuid.NewString(),
		SubjectID:      sess.SubjectID,
		IssuerID:       sess.IssuerID,
		DateTaken:      time.Now(),
		SectionScores:  datatypes.NewJSONType(scored.SectionScores),
		TotalScore:     scored.TotalScore,
		Interpretation: scored.Interpretation,
	}

	s.sessions.Remove(sess.ID)

	s.logger.Info("Screening session completed",
		"session_id", sess.ID,
		"subject_id", sess.SubjectID,
		"total_score", scored.TotalScore,
		"interpretation", scored.Interpretation)

	// The test-taker sees their score regardless of how persistence fares.
	go s.finalizeOutcome(context.Background(), sess, result)

	return &AdvanceResponse{
		Completed: true,
		Result: &ResultView{
			ResultID:       result.ID,
			SectionScores:  scored.SectionScores,
			TotalScore:     scored.TotalScore,
			Interpretation: scored.Interpretation,
			Feedback:       scored.Feedback,
		},
	}, nil
}

func (s *screeningService) StepBack(ctx context.Context, sessionID string, in session.Input) (*SessionResponse, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if sess.Completed() {
		return nil, ErrSessionCompleted
	}
	sess.Previous(in)
	return s.sessionResponse(sess), nil
}

func (s *screeningService) ListResults(ctx context.Context, subjectID string) ([]*models.ScreeningResult, error) {
	results, err := s.results.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// finalizeOutcome persists the result, publishes the completion event, and
// reconciles the originating schedule. Failures here are logged and never
// invalidate the already-returned result.
func (s *screeningService) finalizeOutcome(ctx context.Context, sess *session.Session, result *models.ScreeningResult) {
	if err := s.results.Save(ctx, result); err != nil {
		s.logger.LogError(err, ErrPersistence.Error(),
			"result_id", result.ID,
			"subject_id", result.SubjectID)
	}

	event := &events.ScreeningEvent{
		ID:             uuid.NewString(),
		Type:           events.EventScreeningCompleted,
		Source:         eventSource,
		Version:        "1.0",
		Timestamp:      time.Now(),
		SubjectID:      result.SubjectID,
		IssuerID:       result.IssuerID,
		ScheduleID:     sess.ScheduleID,
		ResultID:       result.ID,
		TotalScore:     result.TotalScore,
		Interpretation: string(result.Interpretation),
	}
	if err := s.publisher.PublishScreeningEvent(ctx, event); err != nil {
		s.logger.LogError(err, "failed to publish completion event", "result_id", result.ID)
	}

	s.schedules.OnSessionCompleted(ctx, sess.SubjectID, sess.ScheduleID)
}

func (s *screeningService) sessionResponse(sess *session.Session) *SessionResponse {
	item := sess.Current()
	index := sess.Index()

	view := &ItemView{
		ID:       item.ID,
		Section:  item.Section,
		Title:    item.Title,
		Type:     item.Type,
		Options:  item.Options,
		ImageURL: item.ImageURL,
	}
	if item.Type == models.ItemRecall {
		view.WordCount = len(sess.Restore().Slots)
	}

	return &SessionResponse{
		SessionID: sess.ID,
		Index:     index,
		Total:     sess.Len(),
		IsFirst:   index == 0,
		IsLast:    index == sess.Len()-1,
		Item:      view,
		Restored:  sess.Restore(),
	}
}
