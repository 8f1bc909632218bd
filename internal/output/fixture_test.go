package output

import (
	"context"
	"testing"
	"time"

	"github.com/rpgo/planning-engine/internal/calculation"
	"github.com/rpgo/planning-engine/internal/config"
	"github.com/rpgo/planning-engine/internal/domain"
)

var fixtureTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

// buildTestReport runs the example configuration through the engine.
func buildTestReport(t *testing.T) *domain.Report {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return fixtureTime })
	t.Cleanup(func() { calculation.SetNowFunc(time.Now) })

	cfg := config.NewInputParser().CreateExampleConfiguration()
	report, err := calculation.NewCalculationEngine().RunConfiguration(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run configuration: %v", err)
	}
	return report
}
