//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/woofcourt/internal/ai"
	"github.com/ecodeclub/woofcourt/internal/judge"
	"github.com/ecodeclub/woofcourt/internal/jury"
	"github.com/ecodeclub/woofcourt/internal/verdict"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ,
	InitSnowflakeNode, InitRateLimiter, InitAnalyzeLimit)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitModule,
		judge.InitModule,
		verdict.InitModule,
		jury.InitModule,
		wire.FieldsOf(new(*judge.Module), "Hdl"),
		wire.FieldsOf(new(*verdict.Module), "Hdl"),
		wire.FieldsOf(new(*jury.Module), "Hdl"),
		initMQConsumers,
		initGinxServer)
	return new(App), nil
}
