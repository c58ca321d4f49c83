package analyzer

import (
	"fmt"
	"log/slog"

	"github.com/Aman-s12345/swagger-sync/internal/logging"
)

type Analyzer struct {
	routesPath string
	sourceExt  string
	logger     *slog.Logger
}

func New(routesPath, sourceExt string, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Analyzer{
		routesPath: routesPath,
		sourceExt:  sourceExt,
		logger:     logger,
	}
}

// Analyze walks the routes tree and returns every declared route in walk
// order. The first unreadable file aborts the run.
func (a *Analyzer) Analyze() (*Analysis, error) {
	analysis := &Analysis{
		Routes: []Route{},
	}

	if err := a.parseRoutes(analysis); err != nil {
		return nil, fmt.Errorf("failed to parse routes: %w", err)
	}

	a.logger.Debug("routes analyzed",
		"root", a.routesPath,
		"files", analysis.FilesScanned,
		"routes", len(analysis.Routes))
	return analysis, nil
}
