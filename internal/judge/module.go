package judge

import (
	"github.com/ecodeclub/woofcourt/internal/judge/internal/domain"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/service"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Handler = web.Handler
type Service = service.JudgeService

type CaseInput = domain.CaseInput
type Party = domain.Party
type JudgeResult = domain.JudgeResult
type LoveIndexAnalysis = domain.LoveIndexAnalysis
