package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aivantu/aivantu/internal/client/client"
	"github.com/aivantu/aivantu/internal/client/models"
	"github.com/aivantu/aivantu/internal/common"
)

type AssistantService interface {
	Ask(ctx context.Context, query, lang string) (*models.AssistantReply, error)
}

type assistantService struct {
	client client.Client
	lang   string
}

// NewAssistantService returns an AssistantService that answers in lang
// unless a call asks for another language.
func NewAssistantService(client client.Client, lang string) AssistantService {
	return &assistantService{client: client, lang: lang}
}

func (s *assistantService) Ask(ctx context.Context, query, lang string) (*models.AssistantReply, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty question", common.ErrorInvalidInput)
	}
	return s.client.Assistant(ctx, query, common.FirstNonEmpty(strings.TrimSpace(lang), s.lang, models.DefaultLang))
}

type VoiceService interface {
	Preview(ctx context.Context, text, lang string) (*models.VoicePreview, error)
}

type voiceService struct {
	client client.Client
	lang   string
}

func NewVoiceService(client client.Client, lang string) VoiceService {
	return &voiceService{client: client, lang: lang}
}

func (s *voiceService) Preview(ctx context.Context, text, lang string) (*models.VoicePreview, error) {
	text = common.FirstNonEmpty(strings.TrimSpace(text), models.DefaultPreviewText)
	return s.client.PreviewVoice(ctx, text, common.FirstNonEmpty(strings.TrimSpace(lang), s.lang, models.DefaultLang))
}
