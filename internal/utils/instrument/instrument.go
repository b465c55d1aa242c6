package instrument

import (
	"context"
	"time"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"

	"github.com/coinbase/treenode/internal/utils/retry"
)

type (
	// Call instruments an operation with success/error counters and a latency timer.
	Call interface {
		Instrument(ctx context.Context, operation OperationFn) error
	}

	OperationFn func(ctx context.Context) error

	// FilterFn returns true if the error should be counted as a success,
	// e.g. not-found errors that are part of the normal flow.
	FilterFn func(err error) bool

	Option func(c *callImpl)

	callImpl struct {
		name         string
		successCount tally.Counter
		errorCount   tally.Counter
		latency      tally.Timer
		logger       *zap.Logger
		loggerMsg    string
		loggerFields []zap.Field
		filter       FilterFn
		retry        retry.Retry
	}
)

const (
	resultTypeTag     = "result_type"
	resultTypeSuccess = "success"
	resultTypeError   = "error"
	latencySuffix     = "latency"
)

var _ Call = (*callImpl)(nil)

func NewCall(scope tally.Scope, name string, opts ...Option) Call {
	scope = scope.SubScope(name)
	call := &callImpl{
		name:         name,
		successCount: scope.Tagged(map[string]string{resultTypeTag: resultTypeSuccess}).Counter(name),
		errorCount:   scope.Tagged(map[string]string{resultTypeTag: resultTypeError}).Counter(name),
		latency:      scope.Timer(latencySuffix),
	}
	for _, opt := range opts {
		opt(call)
	}

	return call
}

func WithLogger(logger *zap.Logger, msg string) Option {
	return func(c *callImpl) {
		c.logger = logger
		c.loggerMsg = msg
	}
}

func WithLoggerField(field zap.Field) Option {
	return func(c *callImpl) {
		c.loggerFields = append(c.loggerFields, field)
	}
}

func WithFilter(filter FilterFn) Option {
	return func(c *callImpl) {
		c.filter = filter
	}
}

func WithRetry(retry retry.Retry) Option {
	return func(c *callImpl) {
		c.retry = retry
	}
}

func (c *callImpl) Instrument(ctx context.Context, operation OperationFn) error {
	stopwatch := c.latency.Start()
	defer stopwatch.Stop()

	startTime := time.Now()
	err := c.run(ctx, operation)
	if err != nil && (c.filter == nil || !c.filter(err)) {
		c.errorCount.Inc(1)
		c.log(startTime, zap.Error(err), zap.String(resultTypeTag, resultTypeError))
		return err
	}

	c.successCount.Inc(1)
	c.log(startTime, zap.String(resultTypeTag, resultTypeSuccess))
	return err
}

func (c *callImpl) run(ctx context.Context, operation OperationFn) error {
	if c.retry != nil {
		return c.retry.Retry(ctx, retry.OperationFn(operation))
	}

	return operation(ctx)
}

func (c *callImpl) log(startTime time.Time, fields ...zap.Field) {
	if c.logger == nil {
		return
	}

	fields = append(fields, c.loggerFields...)
	fields = append(fields, zap.String("operation", c.name), zap.Duration("duration", time.Since(startTime)))
	c.logger.Debug(c.loggerMsg, fields...)
}
