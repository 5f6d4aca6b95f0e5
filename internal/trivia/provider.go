package trivia

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/triviaz/internal/llm"
)

// Config controls the Provider.
type Config struct {
	// Subjects is the rotation a subject is drawn from for each fetch.
	Subjects []string

	// Validators run in order on every question; the first failure rejects it.
	Validators []Validator

	// MaxAttempts is how many times a fetch asks the source before falling
	// back. Only retryable validation failures and retryable LLM replies
	// (empty, malformed or off-schema) trigger another attempt; transport
	// retries belong to the source.
	MaxAttempts int

	// History is how many served question texts are remembered and passed
	// to the source to avoid repeats.
	History int

	// Timeout bounds one FetchQuestion call. Zero means no limit.
	Timeout time.Duration
}

// DefaultConfig returns the standard provider settings.
func DefaultConfig() Config {
	return Config{
		Subjects:    DefaultSubjects,
		Validators:  DefaultValidators(),
		MaxAttempts: 2,
		History:     20,
		Timeout:     30 * time.Second,
	}
}

// Provider hands out one validated question per call. It never fails: any
// source error, timeout or invalid payload yields Fallback().
type Provider struct {
	source Source
	config Config
	pick   func(n int) int

	mu    sync.Mutex
	prior []string
}

// NewProvider creates a Provider over source. A nil source always serves
// the fallback question.
func NewProvider(source Source, cfg Config) *Provider {
	if len(cfg.Subjects) == 0 {
		cfg.Subjects = DefaultSubjects
	}
	return &Provider{source: source, config: cfg, pick: rand.IntN}
}

// SourceName names the configured source, or SourceFallback when none is set.
func (p *Provider) SourceName() string {
	if p.source == nil {
		return SourceFallback
	}
	return p.source.Name()
}

// FetchQuestion returns a playable question.
func (p *Provider) FetchQuestion(ctx context.Context) Question {
	if p.source == nil {
		return Fallback()
	}

	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	input := GenerateInput{
		Subject:        p.config.Subjects[p.pick(len(p.config.Subjects))],
		PriorQuestions: p.history(),
	}

	attempts := max(p.config.MaxAttempts, 1)
	var lastErr error
	for attempt := range attempts {
		q, err := p.attempt(ctx, input)
		if err == nil {
			p.remember(q.Text)
			return *q
		}
		lastErr = err

		if !retryable(err) || ctx.Err() != nil {
			break
		}
		log.Debug().Err(err).
			Int("attempt", attempt+1).
			Str("subject", input.Subject).
			Msg("rejected generated question")
	}

	log.Warn().Err(lastErr).
		Str("source", p.source.Name()).
		Str("subject", input.Subject).
		Msg("question fetch failed, serving fallback")
	return Fallback()
}

// attempt asks the source once and validates the result. A panicking
// source is reported as an error so that FetchQuestion stays total.
func (p *Provider) attempt(ctx context.Context, input GenerateInput) (q *Question, err error) {
	defer func() {
		if r := recover(); r != nil {
			q, err = nil, fmt.Errorf("question source panicked: %v", r)
		}
	}()

	q, err = p.source.Generate(ctx, input)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, errors.New("question source returned no question")
	}

	for _, v := range p.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return nil, verr
		}
	}
	if q.Source == "" {
		q.Source = p.source.Name()
	}
	return q, nil
}

// retryable reports whether another attempt may produce a usable question.
func retryable(err error) bool {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Retryable
	}
	return llm.RetryableResponse(err)
}

func (p *Provider) history() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.prior...)
}

func (p *Provider) remember(text string) {
	if p.config.History <= 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prior = append(p.prior, text)
	if len(p.prior) > p.config.History {
		p.prior = p.prior[len(p.prior)-p.config.History:]
	}
}
