package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innocurve/models"
)

type fakeGenerator struct {
	reply      string
	err        error
	called     bool
	lastSystem string
	lastInput  string
}

func (f *fakeGenerator) Generate(_ context.Context, system, message string) (string, error) {
	f.called = true
	f.lastSystem = system
	f.lastInput = message
	return f.reply, f.err
}

func newTestService(repo *fakeKnowledgeRepo, gen Generator) *DefaultChatService {
	svc := NewDefaultChatService(repo, gen, nil)
	svc.Now = func() time.Time {
		return time.Date(2025, time.March, 5, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestReservationKeywordPromptsConfirmation(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newTestService(&fakeKnowledgeRepo{}, gen)

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "상담 예약하고 싶어요", Language: "ko",
	})
	require.NoError(t, err)
	assert.False(t, resp.ShowReservationForm)
	assert.Equal(t, LocaleFor("ko").ConfirmReservation, resp.Response)
	assert.False(t, gen.called)
}

func TestAffirmativeShowsReservationForm(t *testing.T) {
	svc := newTestService(&fakeKnowledgeRepo{}, &fakeGenerator{})

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "예", Language: "ko",
	})
	require.NoError(t, err)
	assert.True(t, resp.ShowReservationForm)
	assert.Equal(t, LocaleFor("ko").ReservationFormHint, resp.Response)
}

func TestEnglishAffirmativeShowsReservationForm(t *testing.T) {
	svc := newTestService(&fakeKnowledgeRepo{}, &fakeGenerator{})

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "yes", Language: "en",
	})
	require.NoError(t, err)
	assert.True(t, resp.ShowReservationForm)
}

func TestUnknownLanguageFallsBackToKorean(t *testing.T) {
	svc := newTestService(&fakeKnowledgeRepo{}, &fakeGenerator{})

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "예약 문의합니다", Language: "fr",
	})
	require.NoError(t, err)
	assert.Equal(t, LocaleFor("ko").ConfirmReservation, resp.Response)
}

func TestKnowledgeHitSkipsGenerator(t *testing.T) {
	repo := &fakeKnowledgeRepo{entries: []models.KnowledgeEntry{
		{ID: "k1", Question: "이노커브는 어떤 회사인가요?", Keywords: []string{"이노커브"}, Answer: "AI 솔루션 회사입니다."},
	}}
	gen := &fakeGenerator{}
	svc := newTestService(repo, gen)

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "이노커브", Language: "ko",
	})
	require.NoError(t, err)
	assert.Equal(t, "AI 솔루션 회사입니다.", resp.Response)
	assert.False(t, resp.ShowReservationForm)
	assert.False(t, gen.called)
}

func TestNoMatchFallsBackToGenerator(t *testing.T) {
	gen := &fakeGenerator{reply: "반갑습니다!"}
	svc := newTestService(&fakeKnowledgeRepo{}, gen)

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "오늘 날씨 어때요", Language: "ko",
	})
	require.NoError(t, err)
	assert.True(t, gen.called)
	assert.Equal(t, "반갑습니다!", resp.Response)
	assert.Equal(t, "오늘 날씨 어때요", gen.lastInput)
}

func TestStoreFailureDegradesToGenerator(t *testing.T) {
	repo := &fakeKnowledgeRepo{
		searchErr: errors.New("store down"),
		getAllErr: errors.New("store down"),
	}
	gen := &fakeGenerator{reply: "안녕하세요."}
	svc := newTestService(repo, gen)

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "안녕", Language: "ko",
	})
	require.NoError(t, err)
	assert.True(t, gen.called)
	assert.Equal(t, "안녕하세요.", resp.Response)
}

func TestEmptyCompletionBecomesApology(t *testing.T) {
	gen := &fakeGenerator{reply: "   "}
	svc := newTestService(&fakeKnowledgeRepo{}, gen)

	resp, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "등록되지 않은 질문", Language: "ko",
	})
	require.NoError(t, err)
	assert.Equal(t, LocaleFor("ko").Apology, resp.Response)
	assert.NotEmpty(t, resp.Response)
}

func TestGeneratorFailurePropagates(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	svc := newTestService(&fakeKnowledgeRepo{}, gen)

	_, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "등록되지 않은 질문", Language: "ko",
	})
	assert.Error(t, err)
}

func TestSystemPromptCarriesPersonaTimeAndKnowledge(t *testing.T) {
	repo := &fakeKnowledgeRepo{entries: []models.KnowledgeEntry{
		{ID: "k1", Question: "이노커브 소개", Answer: "AI 솔루션 회사입니다."},
	}}
	gen := &fakeGenerator{reply: "답변"}
	svc := newTestService(repo, gen)

	_, err := svc.HandleMessage(context.Background(), models.ChatRequest{
		Message: "등록되지 않은 질문", Language: "ko",
	})
	require.NoError(t, err)
	assert.Contains(t, gen.lastSystem, "정민기")
	assert.Contains(t, gen.lastSystem, "현재 시각")
	assert.Contains(t, gen.lastSystem, "이노커브 소개")
	assert.Contains(t, gen.lastSystem, "AI 솔루션 회사입니다.")
}

func TestUnrecognizedPersonaLanguageUsesDefault(t *testing.T) {
	prompt := buildSystemPrompt("fr", time.Now(), nil)
	assert.Contains(t, prompt, "당신은 이노커브의 대표 정민기입니다")
}
