package service

import (
	"github.com/Rafail-Drakakis/Coins-collection/internal/config"
	"github.com/Rafail-Drakakis/Coins-collection/internal/logger"
	"github.com/Rafail-Drakakis/Coins-collection/internal/store"
)

// Services aggregates all server-side services.
type Services struct {
	CoinService    CoinService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		CoinService:    NewCoinService(storages.CoinRepository, logger),
		AppInfoService: NewAppInfoService(cfg.App),
	}
}
