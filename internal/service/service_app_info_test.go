package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

func TestAppInfoService_BuildInfoPassedThrough(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"))

	info := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "1.2.3", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestAppInfoService_ConfigVersionOverrides(t *testing.T) {
	svc := NewAppInfoService(config.App{Version: "v2.0.0-rc1"}, models.NewAppBuildInfo("1.2.3", "", "abc123"))

	info := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "v2.0.0-rc1", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}

func TestAppInfoService_EmptyBuildInfo(t *testing.T) {
	svc := NewAppInfoService(config.App{}, models.AppBuildInfo{})

	assert.Equal(t, "N/A", svc.GetBuildInfo(context.Background()).BuildVersion())
}
