package tui

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"golang.org/x/time/rate"
)

// RateLimitConfig configures per-IP connection limiting.
type RateLimitConfig struct {
	PerSecond       float64       // New sessions allowed per second per IP
	Burst           int           // Maximum burst size
	CleanupInterval time.Duration // How often stale limiters are dropped
}

// DefaultRateLimitConfig allows a reconnect every few seconds with a small burst.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		PerSecond:       0.5,
		Burst:           3,
		CleanupInterval: 5 * time.Minute,
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter limits how often one remote host may open sessions.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	config   RateLimitConfig
	metrics  *Metrics
	stop     chan struct{}
	stopOnce sync.Once
}

// NewIPRateLimiter creates a limiter and starts its cleanup loop.
func NewIPRateLimiter(cfg RateLimitConfig, metrics *Metrics) *IPRateLimiter {
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = DefaultRateLimitConfig().CleanupInterval
	}
	rl := &IPRateLimiter{
		limiters: make(map[string]*limiterEntry),
		config:   cfg,
		metrics:  metrics,
		stop:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Stop ends the cleanup loop.
func (rl *IPRateLimiter) Stop() {
	rl.stopOnce.Do(func() {
		close(rl.stop)
	})
}

// Allow reports whether host may open another session now.
func (rl *IPRateLimiter) Allow(host string) bool {
	return rl.allowAt(host, time.Now())
}

func (rl *IPRateLimiter) allowAt(host string, now time.Time) bool {
	rl.mu.Lock()
	e, ok := rl.limiters[host]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(rl.config.PerSecond), rl.config.Burst)}
		rl.limiters[host] = e
	}
	e.lastSeen = now
	rl.mu.Unlock()

	return e.limiter.AllowN(now, 1)
}

func (rl *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.cleanup(now)
		}
	}
}

func (rl *IPRateLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-2 * rl.config.CleanupInterval)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	for host, e := range rl.limiters {
		if e.lastSeen.Before(cutoff) {
			delete(rl.limiters, host)
		}
	}
}

// Middleware rejects sessions from hosts over their limit.
func (rl *IPRateLimiter) Middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		host := remoteHost(s.RemoteAddr())
		if !rl.Allow(host) {
			rl.metrics.Rejected("rate_limit")
			wish.Fatalln(s, "Too many connections, try again in a few seconds.")
			return
		}
		next(s)
	}
}

func remoteHost(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	return host
}
