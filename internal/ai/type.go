package ai

import (
	"github.com/ecodeclub/woofcourt/internal/ai/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service

const (
	BizCourtScoring   = domain.BizCourtScoring
	BizCourtVerdict   = domain.BizCourtVerdict
	BizCourtLoveIndex = domain.BizCourtLoveIndex
)
