package output

import (
	"encoding/json"

	"github.com/rpgo/planning-engine/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
