package service

import (
	"context"
	"errors"
	"testing"

	"vocalfitness_backend/internal/chat/domain"
	"vocalfitness_backend/internal/events"
	"vocalfitness_backend/platform/apperr"
	platformevents "vocalfitness_backend/platform/events"
	"vocalfitness_backend/platform/logger"
)

type fakeLeadStore struct {
	leads      map[string]*domain.Lead
	upsertErr  error
	upsertCnt  int
	lastUpsert *domain.Lead
}

func newFakeLeadStore() *fakeLeadStore {
	return &fakeLeadStore{leads: make(map[string]*domain.Lead)}
}

func (s *fakeLeadStore) Find(_ context.Context, sessionID string) (*domain.Lead, error) {
	lead, ok := s.leads[sessionID]
	if !ok {
		return nil, nil
	}
	copied := *lead
	return &copied, nil
}

func (s *fakeLeadStore) Upsert(_ context.Context, lead *domain.Lead) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upsertCnt++
	copied := *lead
	s.leads[lead.SessionID] = &copied
	s.lastUpsert = &copied
	return nil
}

type fakeAssistant struct {
	reply      string
	err        error
	lastPrompt string
}

func (a *fakeAssistant) Reply(_ context.Context, _, systemPrompt, _ string) (string, error) {
	a.lastPrompt = systemPrompt
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}

type fakeExtractor struct {
	fields       domain.ExtractedFields
	lastQuestion string
}

func (e *fakeExtractor) Extract(_ context.Context, _, _, previousQuestion string) domain.ExtractedFields {
	e.lastQuestion = previousQuestion
	return e.fields
}

type recordingBus struct {
	published []platformevents.Event
}

func (b *recordingBus) Publish(_ context.Context, event platformevents.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(_ context.Context, event platformevents.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(string, platformevents.Handler) {}

func newTestService(store *fakeLeadStore, assistant *fakeAssistant, extractor *fakeExtractor, bus *recordingBus) *Service {
	return New(store, assistant, extractor, bus, logger.New("test"))
}

func TestSubmitTurnCreatesLeadForNewSession(t *testing.T) {
	store := newFakeLeadStore()
	assistant := &fakeAssistant{reply: "Ciao! Come ti chiami?"}
	svc := newTestService(store, assistant, &fakeExtractor{}, &recordingBus{})

	result, err := svc.SubmitTurn(context.Background(), "session-1", "ciao", "it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.SessionID != "session-1" {
		t.Errorf("session id: got %q", result.SessionID)
	}
	if result.Reply != "Ciao! Come ti chiami?" {
		t.Errorf("reply: got %q", result.Reply)
	}
	if result.IsComplete {
		t.Error("first turn with no data should not complete")
	}

	stored := store.leads["session-1"]
	if stored == nil {
		t.Fatal("lead was not persisted")
	}
	if stored.Language != "it" {
		t.Errorf("language: got %q", stored.Language)
	}
	if len(stored.History) != 2 {
		t.Fatalf("expected 2 history entries after one turn, got %d", len(stored.History))
	}
	if stored.History[0].Role != domain.RoleUser || stored.History[1].Role != domain.RoleAssistant {
		t.Errorf("unexpected history roles: %q, %q", stored.History[0].Role, stored.History[1].Role)
	}
}

func TestSubmitTurnGrowsHistoryAcrossTurns(t *testing.T) {
	store := newFakeLeadStore()
	assistant := &fakeAssistant{reply: "Qual è la tua email?"}
	extractor := &fakeExtractor{}
	svc := newTestService(store, assistant, extractor, &recordingBus{})

	if _, err := svc.SubmitTurn(context.Background(), "session-1", "ciao", "it"); err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	if _, err := svc.SubmitTurn(context.Background(), "session-1", "Mario Rossi", "it"); err != nil {
		t.Fatalf("turn 2: %v", err)
	}

	if got := len(store.leads["session-1"].History); got != 4 {
		t.Fatalf("expected 4 history entries after two turns, got %d", got)
	}
	if extractor.lastQuestion != "Qual è la tua email?" {
		t.Fatalf("extractor should receive the previous assistant question, got %q", extractor.lastQuestion)
	}
}

func TestSubmitTurnAssistantFailurePersistsNothing(t *testing.T) {
	store := newFakeLeadStore()
	assistant := &fakeAssistant{err: errors.New("upstream timeout")}
	svc := newTestService(store, assistant, &fakeExtractor{}, &recordingBus{})

	_, err := svc.SubmitTurn(context.Background(), "session-1", "ciao", "it")
	if err == nil {
		t.Fatal("expected error from failed assistant call")
	}
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindUnavailable {
		t.Fatalf("expected KindUnavailable, got %v", err)
	}
	if store.upsertCnt != 0 {
		t.Fatal("nothing should be persisted when the assistant call fails")
	}
}

func TestSubmitTurnMergesExtractedFields(t *testing.T) {
	store := newFakeLeadStore()
	extractor := &fakeExtractor{fields: domain.ExtractedFields{Name: "Mario Rossi", Email: "mario@test.com"}}
	svc := newTestService(store, &fakeAssistant{reply: "ok"}, extractor, &recordingBus{})

	result, err := svc.SubmitTurn(context.Background(), "session-1", "Mario Rossi, mario@test.com", "it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Collected.Name != "Mario Rossi" || result.Collected.Email != "mario@test.com" {
		t.Fatalf("collected fields not merged: %+v", result.Collected)
	}
}

func TestSubmitTurnPublishesLeadQualifiedOnce(t *testing.T) {
	store := newFakeLeadStore()
	bus := &recordingBus{}
	extractor := &fakeExtractor{fields: domain.ExtractedFields{
		Name:         "Mario Rossi",
		Email:        "mario@test.com",
		EnglishLevel: "B2",
		Goal:         "career growth",
		Urgency:      "subito",
	}}
	svc := newTestService(store, &fakeAssistant{reply: "Perfetto, grazie!"}, extractor, bus)

	result, err := svc.SubmitTurn(context.Background(), "session-1", "ecco tutti i miei dati", "it")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsComplete {
		t.Fatal("turn with all five fields should complete")
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected exactly one published event, got %d", len(bus.published))
	}
	qualified, ok := bus.published[0].(events.LeadQualified)
	if !ok {
		t.Fatalf("unexpected event type %T", bus.published[0])
	}
	if qualified.SessionID != "session-1" || qualified.Email != "mario@test.com" {
		t.Fatalf("unexpected event payload: %+v", qualified)
	}

	// A later turn on the completed session stays complete and does not
	// publish again.
	extractor.fields = domain.ExtractedFields{}
	result, err = svc.SubmitTurn(context.Background(), "session-1", "grazie", "it")
	if err != nil {
		t.Fatalf("follow-up turn: %v", err)
	}
	if !result.IsComplete {
		t.Fatal("completed session must stay complete")
	}
	if len(bus.published) != 1 {
		t.Fatalf("completion event published again: %d events", len(bus.published))
	}
}

func TestSubmitTurnHesitantUserCompletesEarly(t *testing.T) {
	store := newFakeLeadStore()
	bus := &recordingBus{}
	svc := newTestService(store, &fakeAssistant{reply: "Capisco perfettamente!"}, &fakeExtractor{}, bus)

	if _, err := svc.SubmitTurn(context.Background(), "session-1", "ciao", "it"); err != nil {
		t.Fatalf("turn 1: %v", err)
	}
	result, err := svc.SubmitTurn(context.Background(), "session-1", "no, preferisco parlare con qualcuno", "it")
	if err != nil {
		t.Fatalf("turn 2: %v", err)
	}
	if !result.IsComplete {
		t.Fatal("hesitant user past 3 messages should complete")
	}
	if len(bus.published) != 1 {
		t.Fatalf("expected one qualification event, got %d", len(bus.published))
	}
}

func TestSubmitTurnUpsertFailureReturnsInternal(t *testing.T) {
	store := newFakeLeadStore()
	store.upsertErr = errors.New("connection reset")
	svc := newTestService(store, &fakeAssistant{reply: "ok"}, &fakeExtractor{}, &recordingBus{})

	_, err := svc.SubmitTurn(context.Background(), "session-1", "ciao", "it")
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Kind != apperr.KindInternal {
		t.Fatalf("expected KindInternal, got %v", err)
	}
}
