// Package runlock provides a Redis-backed mutual exclusion lock for
// verification runs. Only one run per conference may be in flight.
package runlock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"veriface/internal/attendance/models"
	"veriface/internal/platform/redis"
	"veriface/pkg/platform/sentinel"
)

const keyPrefix = "veriface:runlock:"

// releaseScript deletes the lock only when the caller still owns it.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`

// Lock acquires per-conference run locks with a TTL so a crashed run
// cannot wedge a conference forever.
type Lock struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) (*Lock, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("ttl must be positive")
	}
	return &Lock{client: client, ttl: ttl}, nil
}

// Acquire takes the run lock for the conference. It returns a release
// function on success and sentinel.ErrConflict when another run holds it.
func (l *Lock) Acquire(ctx context.Context, conferenceID models.ConferenceID) (func(), error) {
	key := keyPrefix + conferenceID.String()
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("run already in progress for conference %s: %w", conferenceID, sentinel.ErrConflict)
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = l.client.Eval(ctx, releaseScript, []string{key}, token).Err()
	}
	return release, nil
}
