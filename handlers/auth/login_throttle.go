package auth

import (
	"context"
	"strconv"
	"time"

	"fieldscore/config"
	"fieldscore/database"
)

const loginAttemptKeyPrefix = "login_attempts:"

// loginCooldown returns how long the account still has to wait before the
// next login attempt, based on how many failed attempts redis has recorded.
func loginCooldown(ctx context.Context, email string) time.Duration {
    if database.REDIS == nil {
        return 0
    }

    raw, err := database.REDIS.Get(ctx, loginAttemptKeyPrefix+email).Result()
    if err != nil {
        return 0
    }
    attempts, err := strconv.Atoi(raw)
    if err != nil {
        return 0
    }

    cfg := config.DefaultRateLimitConfig
    var cooldown time.Duration
    switch {
    case attempts >= cfg.AttemptsThreshold2:
        cooldown = cfg.CooldownDuration2
    case attempts >= cfg.AttemptsThreshold1:
        cooldown = cfg.CooldownDuration1
    default:
        return 0
    }

    ttl, err := database.REDIS.TTL(ctx, loginAttemptKeyPrefix+email).Result()
    if err != nil || ttl <= 0 {
        return 0
    }
    if ttl < cooldown {
        return ttl
    }
    return cooldown
}

// recordFailedLogin bumps the failed-attempt counter; the counter expires with
// the longest cooldown so old failures age out.
func recordFailedLogin(ctx context.Context, email string) {
    if database.REDIS == nil {
        return
    }
    key := loginAttemptKeyPrefix + email
    database.REDIS.Incr(ctx, key)
    database.REDIS.Expire(ctx, key, config.DefaultRateLimitConfig.CooldownDuration2)
}

// clearFailedLogins resets the counter after a successful login
func clearFailedLogins(ctx context.Context, email string) {
    if database.REDIS != nil {
        database.REDIS.Del(ctx, loginAttemptKeyPrefix+email)
    }
}
