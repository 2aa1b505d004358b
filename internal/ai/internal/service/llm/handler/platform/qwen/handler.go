package qwen

import (
	"context"

	"github.com/ecodeclub/woofcourt/internal/ai/internal/domain"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// 阿里的 OpenAI 兼容入口
const defaultBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1/"

// Handler 走 OpenAI 兼容协议的通义千问出口
type Handler struct {
	client *openai.Client
}

func NewHandler(apikey, baseURL string) *Handler {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apikey),
	)
	return &Handler{
		client: client,
	}
}

func (h *Handler) Name() string {
	return "qwen"
}

func (h *Handler) Handle(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
	completion, err := h.client.Chat.Completions.New(ctx, h.buildParams(req))
	if err != nil {
		return domain.LLMResponse{}, err
	}
	resp := domain.LLMResponse{
		Tokens: completion.Usage.TotalTokens,
	}
	if len(completion.Choices) > 0 {
		resp.Answer = completion.Choices[0].Message.Content
	}
	return resp, nil
}

func (h *Handler) buildParams(req domain.LLMRequest) openai.ChatCompletionNewParams {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.Config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(req.Config.SystemPrompt))
	}
	messages = append(messages, openai.UserMessage(req.Prompt()))
	params := openai.ChatCompletionNewParams{
		Messages: openai.F(messages),
		Model:    openai.F(req.Config.Model),
	}
	if req.Config.Temperature > 0 {
		params.Temperature = openai.F(req.Config.Temperature)
	}
	if req.Config.TopP > 0 {
		params.TopP = openai.F(req.Config.TopP)
	}
	if req.Config.MaxTokens > 0 {
		params.MaxTokens = openai.F(int64(req.Config.MaxTokens))
	}
	return params
}
