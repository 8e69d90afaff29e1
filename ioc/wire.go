//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/roastmyidea/internal/agent"
	"github.com/ecodeclub/roastmyidea/internal/ai"
	"github.com/ecodeclub/roastmyidea/internal/leaderboard"
	"github.com/ecodeclub/roastmyidea/internal/roast"
	"github.com/ecodeclub/roastmyidea/internal/voice"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitObjStore)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		ai.InitPlatform,
		ai.InitModule,
		roast.InitModule,
		leaderboard.InitModule,
		voice.InitModule,
		agent.InitModule,
		wire.FieldsOf(new(*roast.Module), "Hdl"),
		wire.FieldsOf(new(*leaderboard.Module), "Hdl"),
		wire.FieldsOf(new(*voice.Module), "Hdl"),
		wire.FieldsOf(new(*agent.Module), "Hdl"),
		initConsumers,
		initGinxServer)
	return new(App), nil
}
