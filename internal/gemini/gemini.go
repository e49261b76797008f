// Package gemini drafts exhibit descriptions with the Gemini API. Callers
// always get display-ready text back; failures resolve to fixed notices.
package gemini

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"exhibition-catalog/internal/metrics"
)

const defaultModel = "gemini-2.5-flash"

// Fallback texts shown in place of generated copy.
const (
	msgNotConfigured = "请配置 API KEY 以使用 AI 生成功能。"
	msgEmpty         = "无法生成描述。"
	msgFailed        = "生成描述时发生错误，请稍后重试。"
)

type Service struct {
	client *genai.Client
	model  string
	log    *zap.Logger
}

// New builds the description service. With an empty API key the service
// stays usable and answers every request with a fixed configuration notice.
func New(ctx context.Context, apiKey, model string, log *zap.Logger) *Service {
	s := &Service{model: model, log: log}
	if s.model == "" {
		s.model = defaultModel
	}
	if apiKey == "" {
		return s
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		log.Error("gemini client init failed", zap.Error(err))
		return s
	}
	s.client = client
	return s
}

// Configured reports whether a client is available for real generation.
func (s *Service) Configured() bool { return s.client != nil }

// GenerateDescription asks for a short, formal exhibit introduction in the
// voice of a museum docent. It never returns an error: the result is either
// generated text or one of the fixed fallback strings.
func (s *Service) GenerateDescription(ctx context.Context, name, categoryTitle string) string {
	if s.client == nil {
		metrics.Descriptions.WithLabelValues("unconfigured").Inc()
		return msgNotConfigured
	}

	prompt := fmt.Sprintf("作为一个历史博物馆的专业讲解员，请为“%s”（属于“%s”分类）写一段简短、庄重且富有教育意义的展品介绍（约100-150字）。内容需符合中国抗战历史背景。", name, categoryTitle)

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
	if err != nil {
		s.log.Error("gemini generate failed", zap.Error(err))
		metrics.Descriptions.WithLabelValues("error").Inc()
		return msgFailed
	}
	text := resp.Text()
	if text == "" {
		metrics.Descriptions.WithLabelValues("empty").Inc()
		return msgEmpty
	}
	metrics.Descriptions.WithLabelValues("ok").Inc()
	return text
}
