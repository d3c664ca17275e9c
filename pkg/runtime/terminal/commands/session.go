package commands

import (
	"github.com/de-tools/profit-report/pkg/models/domain"
	"github.com/de-tools/profit-report/pkg/services/config"
)

// Session carries state resolved before any command runs.
type Session struct {
	Settings *config.Settings
}

type ReportHandler interface {
	Handle(report *domain.Report) error
}
