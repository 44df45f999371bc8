package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService reports build. A non-empty cfg.Version overrides the
// linker-injected version; missing values read "N/A".
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) AppInfoService {
	if cfg.Version != "" {
		build = models.NewAppBuildInfo(cfg.Version, build.BuildDate(), build.BuildCommit())
	}

	return &appInfoService{buildInfo: build.WithDefaults()}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
