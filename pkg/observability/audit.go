package observability

import (
	"log/slog"

	"github.com/aretw0/fae/pkg/domain"
)

// AuditHooks logs every evaluation event to logger.
// Strings are logged at debug level, evaluation boundaries at info.
func AuditHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEvaluationStart: func(e *domain.EvaluationEvent) {
			logger.Info("evaluation_start",
				"automaton", e.Description,
				"cases", e.Cases,
			)
		},
		OnStringEvaluated: func(e *domain.StringEvent) {
			logger.Debug("string_evaluated",
				"automaton", e.Description,
				"value", e.Value,
				"outcome", e.Outcome,
			)
		},
		OnEvaluationEnd: func(e *domain.EvaluationEvent) {
			if e.Error != "" {
				logger.Warn("evaluation_end",
					"automaton", e.Description,
					"cases", e.Cases,
					"error", e.Error,
				)
				return
			}
			logger.Info("evaluation_end",
				"automaton", e.Description,
				"cases", e.Cases,
				"mismatches", e.Mismatches,
				"foreign", e.Foreign,
				"passed", e.Passed,
			)
		},
	}
}
