package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

type (
	// Retry wraps "cenkalti/backoff" with xerrors-aware retry semantics:
	// only errors wrapped by Retryable are retried, and the retry stops
	// once MaxAttempts is exceeded.
	Retry interface {
		Retry(ctx context.Context, operation OperationFn) error
	}

	RetryableError struct {
		Err error
	}

	OperationFn func(ctx context.Context) error

	// Filter should return true if the error is retryable.
	Filter func(err error) bool

	// BackoffFactory returns a new instance of backoff policy.
	BackoffFactory func() backoff.BackOff

	Option func(r *retryImpl)

	retryImpl struct {
		maxAttempts    int
		filter         Filter
		backoffFactory BackoffFactory
		logger         *zap.Logger
	}
)

const (
	DefaultMaxAttempts = 4

	defaultInitialInterval     = 100 * time.Millisecond
	defaultRandomizationFactor = 0.5
	defaultMultiplier          = 2
	defaultMaxInterval         = 15 * time.Second
	defaultMaxElapsedTime      = 5 * time.Minute
)

var _ xerrors.Wrapper = (*RetryableError)(nil)

func New(opts ...Option) Retry {
	r := &retryImpl{
		maxAttempts:    DefaultMaxAttempts,
		filter:         defaultFilter,
		backoffFactory: DefaultBackoffFactory,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func WithMaxAttempts(maxAttempts int) Option {
	return func(r *retryImpl) {
		r.maxAttempts = maxAttempts
	}
}

func WithFilter(filter Filter) Option {
	return func(r *retryImpl) {
		r.filter = filter
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(r *retryImpl) {
		r.logger = logger
	}
}

func Retryable(err error) error {
	return &RetryableError{
		Err: err,
	}
}

func (r *retryImpl) Retry(ctx context.Context, operation OperationFn) error {
	backoffContext := backoff.WithContext(r.backoffFactory(), ctx)

	attempts := 0
	decoratedOperation := func() error {
		err := operation(ctx)
		attempts += 1
		if err == nil {
			return nil
		}

		if !r.filter(err) {
			r.warn("encountered a permanent error", attempts, err)
			return backoff.Permanent(err)
		}

		if attempts >= r.maxAttempts {
			r.warn("max attempts exceeded", attempts, err)
			return backoff.Permanent(err)
		}

		r.warn("encountered a retryable error", attempts, err)
		return err
	}

	return backoff.Retry(decoratedOperation, backoffContext)
}

func (r *retryImpl) warn(msg string, attempts int, err error) {
	if r.logger != nil {
		r.logger.Warn(msg, zap.Int("attempts", attempts), zap.Error(err))
	}
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("RetryableError: %v", e.Err.Error())
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

func defaultFilter(err error) bool {
	var retryableErr *RetryableError
	return xerrors.As(err, &retryableErr)
}

// DefaultBackoffFactory creates an exponential backoff policy.
func DefaultBackoffFactory() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = defaultInitialInterval
	b.RandomizationFactor = defaultRandomizationFactor
	b.Multiplier = defaultMultiplier
	b.MaxInterval = defaultMaxInterval
	b.MaxElapsedTime = defaultMaxElapsedTime
	return b
}
