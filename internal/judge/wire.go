//go:build wireinject

package judge

import (
	"github.com/ecodeclub/woofcourt/internal/ai"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/service"
	"github.com/ecodeclub/woofcourt/internal/judge/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
)

// analyzeLimit 由 ioc 构造，只挂在 /analyze 上
func InitModule(aiModule *ai.Module, analyzeLimit gin.HandlerFunc) *Module {
	wire.Build(
		web.NewHandler,
		service.NewJudgeService,
		service.NewScoringService,
		service.NewComposerService,
		service.NewLoveIndexService,
		service.NewTimeSeededRand,

		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
