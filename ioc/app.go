package ioc

import (
	"context"

	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web *egin.Component
	// Consumers 由 main 负责 Start
	Consumers []Consumer
}

type Consumer interface {
	Start(ctx context.Context)
}
