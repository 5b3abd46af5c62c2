package retrier

import (
	"context"
	"time"
)

// Retrier повторяет fn с задержками до успеха, исчерпания бюджета времени
// или отмены контекста.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc решает, стоит ли повторять после данной ошибки.
type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// nil — повторяются любые ошибки; иначе только те, для которых
	// функция вернула true. Доменные ошибки повторять бессмысленно.
	ShouldRetry ShouldRetryFunc
}
