package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/Xushengqwer/trade_site/config"
	"github.com/Xushengqwer/trade_site/myErrors"
)

const (
	defaultContactMax    = 5
	defaultContactWindow = 10 * time.Minute
)

type visitorLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter 按客户端 IP 限制联系表单的提交频率。
// 每个 IP 一个令牌桶：桶容量为 max，每 window/max 补充一个令牌。
type IPRateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitorLimiter
	limit     rate.Limit
	burst     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewIPRateLimiter 创建限流器，配置缺失时使用每 10 分钟 5 次。
func NewIPRateLimiter(cfg config.ContactLimitConfig) *IPRateLimiter {
	max := cfg.MaxPerWindow
	if max <= 0 {
		max = defaultContactMax
	}
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = defaultContactWindow
	}
	return &IPRateLimiter{
		visitors: make(map[string]*visitorLimiter),
		limit:    rate.Every(window / time.Duration(max)),
		burst:    max,
		window:   window,
		now:      time.Now,
	}
}

// Allow 消耗 ip 的一个令牌，没有可用令牌时返回 false。
func (l *IPRateLimiter) Allow(ip string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// 顺带清理超过一个窗口未出现的 IP，桶早已回满，丢弃等价于重建。
	if now.Sub(l.lastSweep) > l.window {
		for key, v := range l.visitors {
			if now.Sub(v.lastSeen) > l.window {
				delete(l.visitors, key)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitorLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// ContactRateLimit 返回限流中间件，超限时响应 429。
func ContactRateLimit(limiter *IPRateLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !limiter.Allow(ip) {
			logger.Warn("联系表单提交过于频繁", zap.String("ip", ip))
			response.RespondError(c, http.StatusTooManyRequests, response.ErrCodeClientInvalidInput, myErrors.ErrRateLimited.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
