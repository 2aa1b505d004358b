//go:build wireinject

package verdict

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository/cache"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/repository/dao"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/service"
	"github.com/ecodeclub/woofcourt/internal/verdict/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, ec ecache.Cache, node *snowflake.Node) (*Module, error) {
	wire.Build(
		web.NewHandler,
		service.NewVerdictService,
		repository.NewCachedVerdictRepository,
		cache.NewVerdictCache,
		InitVerdictDAO,

		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
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

func InitVerdictDAO(db *egorm.Component) dao.VerdictDAO {
	InitTableOnce(db)
	return dao.NewGORMVerdictDAO(db)
}
