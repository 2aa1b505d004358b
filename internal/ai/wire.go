//go:build wireinject

package ai

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/repository"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/repository/cache"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/woofcourt/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitLLMService,
		repository.NewLLMLogRepo,
		repository.NewCachedConfigRepository,
		cache.NewConfigCache,

		InitLLMRecordDAO,
		dao.NewGORMConfigDAO,

		config.NewBuilder,
		log.NewHandler,
		record.NewHandler,

		InitHandlerFacade,
		InitCommonHandlers,
		InitPlatform,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

func InitLLMService(facade *biz.FacadeHandler) llm.Service {
	return llm.NewLLMService(facade)
}

var daoOnce = sync.Once{}

func InitTableOnce(db *gorm.DB) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitLLMRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	InitTableOnce(db)
	return dao.NewGORMLLMLogDAO(db)
}
