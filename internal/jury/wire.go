//go:build wireinject

package jury

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/event"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/repository"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/repository/dao"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/service"
	"github.com/ecodeclub/woofcourt/internal/jury/internal/web"
	"github.com/ecodeclub/woofcourt/internal/verdict"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitModule(db *egorm.Component, q mq.MQ, verdictModule *verdict.Module) (*Module, error) {
	wire.Build(
		web.NewHandler,
		service.NewJuryService,
		repository.NewJuryRepository,
		InitJuryDAO,
		event.NewVoteEventProducer,
		event.NewStatsConsumer,

		wire.FieldsOf(new(*verdict.Module), "Svc"),
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

func InitJuryDAO(db *egorm.Component) dao.JuryDAO {
	InitTableOnce(db)
	return dao.NewGORMJuryDAO(db)
}
