package service

import (
	"context"

	"github.com/Rafail-Drakakis/Coins-collection/internal/config"
)

type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App) AppInfoService {
	return &appInfoService{version: cfg.Version}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	if s.version == "" {
		return "N/A"
	}
	return s.version
}
