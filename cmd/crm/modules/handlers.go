package modules

import (
	"go.uber.org/fx"

	"github.com/memohai/crm/internal/handlers"
	"github.com/memohai/crm/internal/metrics"
	"github.com/memohai/crm/internal/server"
)

var HandlersModule = fx.Module(
	"handlers",
	fx.Provide(
		annotateHandler(metrics.New),
		annotateHandler(handlers.NewPingHandler),
		annotateHandler(handlers.NewSwaggerHandler),
		annotateHandler(handlers.NewClientsHandler),
		annotateHandler(handlers.NewContactsHandler),
		annotateHandler(handlers.NewActivitiesHandler),
		annotateHandler(handlers.NewTasksHandler),
		annotateHandler(handlers.NewStatsHandler),
	),
)

// annotateHandler wraps a handler provider function with fx.Annotate
// to register it as a server.Handler with the correct group tag
func annotateHandler(fn any) any {
	return fx.Annotate(
		fn,
		fx.As(new(server.Handler)),
		fx.ResultTags(`group:"server_handlers"`),
	)
}
