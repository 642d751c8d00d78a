package service

import (
	"context"

	"github.com/MKhiriev/go-todo-fetch/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService returns the service reporting the server build version.
func NewAppInfoService(version string, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
