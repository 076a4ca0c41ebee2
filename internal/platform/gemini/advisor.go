package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/advisor"
	"github.com/Manoj-Murari/task-analyzer/internal/config"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
	"github.com/Manoj-Murari/task-analyzer/internal/platform/logger"
	"github.com/Manoj-Murari/task-analyzer/internal/redact"
	"github.com/sony/gobreaker/v2"
)

// Advisor implements the advisor.Advisor interface using the Gemini API.
type Advisor struct {
	// logger is used for structured logging
	logger *slog.Logger

	// promptTemplate is the parsed template for creating prompts
	promptTemplate *template.Template

	// generator performs the actual model call
	generator contentGenerator

	// breaker stops calling a failing API until it has cooled down
	breaker *gobreaker.CircuitBreaker[[]advisor.Opinion]

	// timeout bounds a single request
	timeout time.Duration

	// now supplies the date written into prompts
	now func() time.Time
}

var _ advisor.Advisor = (*Advisor)(nil)

// New returns the advisor described by cfg: a Gemini-backed Advisor when an
// API key is configured, advisor.Disabled otherwise.
func New(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (advisor.Advisor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		logger.InfoContext(ctx, "Gemini API key not configured, AI advisor disabled")
		return advisor.Disabled{}, nil
	}

	a, err := NewAdvisor(ctx, logger, cfg)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// NewAdvisor creates a Gemini-backed Advisor.
//
// Parameters:
//   - ctx: Context for client initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized Advisor or an error if initialization fails
func NewAdvisor(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Advisor, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", advisor.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", advisor.ErrInvalidConfig)
	}

	generator, err := newGenaiGenerator(ctx, cfg.GeminiAPIKey, cfg.ModelName)
	if err != nil {
		return nil, err
	}

	return newAdvisor(logger, cfg, generator)
}

// newAdvisor wires an Advisor around any contentGenerator.
func newAdvisor(logger *slog.Logger, cfg config.LLMConfig, generator contentGenerator) (*Advisor, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	tmpl, err := loadPromptTemplate(cfg.PromptTemplatePath)
	if err != nil {
		return nil, err
	}

	log := logger.With("component", "gemini_advisor", "model", cfg.ModelName)

	threshold := uint32(max(cfg.BreakerFailureThreshold, 1))
	cooldown := time.Duration(cfg.BreakerCooldownSeconds) * time.Second

	breaker := gobreaker.NewCircuitBreaker[[]advisor.Opinion](gobreaker.Settings{
		Name:        "gemini",
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String())
		},
	})

	timeout := time.Duration(cfg.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Advisor{
		logger:         log,
		promptTemplate: tmpl,
		generator:      generator,
		breaker:        breaker,
		timeout:        timeout,
		now:            time.Now,
	}, nil
}

// Advise implements advisor.Advisor. Every failure is logged at WARN and
// reported as an Unavailable outcome.
func (a *Advisor) Advise(ctx context.Context, tasks []domain.Task) advisor.Outcome {
	log := logger.FromContextOrDefault(ctx, a.logger)

	if len(tasks) == 0 {
		return advisor.Success([]domain.ScoreResult{})
	}

	prompt, err := renderPrompt(a.promptTemplate, tasks, a.now())
	if err != nil {
		return a.unavailable(ctx, log, "prompt rendering failed", err)
	}

	log.DebugContext(ctx, "Requesting Gemini prioritization",
		"task_count", len(tasks),
		"prompt_length", len(prompt))

	opinions, err := a.breaker.Execute(func() ([]advisor.Opinion, error) {
		callCtx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		text, err := a.generator.GenerateContent(callCtx, prompt)
		if err != nil {
			return nil, err
		}
		return advisor.ParseOpinions(text)
	})
	if err != nil {
		return a.unavailable(ctx, log, describeFailure(err), err)
	}

	log.InfoContext(ctx, "Gemini prioritization succeeded",
		"task_count", len(tasks),
		"opinion_count", len(opinions))

	return advisor.Success(advisor.Merge(tasks, opinions))
}

func (a *Advisor) unavailable(ctx context.Context, log *slog.Logger, reason string, err error) advisor.Outcome {
	log.WarnContext(ctx, "Gemini advisor unavailable, falling back",
		"reason", reason,
		"error", redact.Error(err))
	return advisor.Unavailable(reason)
}

// describeFailure turns an error into a short, secret-free reason.
func describeFailure(err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit breaker open"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	case errors.Is(err, advisor.ErrContentBlocked):
		return "content blocked"
	case errors.Is(err, advisor.ErrEmptyResponse):
		return "empty response"
	case errors.Is(err, advisor.ErrInvalidResponse):
		return "malformed response"
	default:
		return "request failed"
	}
}
