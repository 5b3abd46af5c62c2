package token_bucket

import (
	"sync"
	"time"
)

type Limiter interface {
	Allow() bool
}

// TokenBucket ограничивает частоту запросов: ведро вмещает capacity токенов,
// пополняется со скоростью refillRate токенов в секунду. Запрос стоит один
// токен; нет токена — запрос отклоняется.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill(time.Now())

	if t.tokens < 1 {
		return false
	}
	t.tokens--
	return true
}

// refill начисляет дробные токены за время с прошлого пополнения, не выше
// capacity. Дробная часть накапливается, поэтому низкий refillRate тоже
// работает корректно.
func (t *TokenBucket) refill(now time.Time) {
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens += elapsed * t.refillRate
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = now
}
