package modules

import (
	"go.uber.org/fx"

	"github.com/memohai/crm/internal/activities"
	"github.com/memohai/crm/internal/clients"
	"github.com/memohai/crm/internal/contacts"
	"github.com/memohai/crm/internal/stats"
	"github.com/memohai/crm/internal/tasks"
)

var DomainModule = fx.Module(
	"domain",
	fx.Provide(
		clients.NewService,
		contacts.NewService,
		activities.NewService,
		tasks.NewService,
		stats.NewService,
	),
)
