package prompt_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripforge/internal/config"
	"tripforge/internal/services"
)

var Module = fx.Provide(providePromptService)

func providePromptService(cfg *config.Config, logger *zap.Logger) services.PromptServiceInterface {
	return services.NewPromptService(cfg, logger)
}
