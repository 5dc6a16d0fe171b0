package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ltnam/fashion-store/internal/core/domain"
)

const stockKeyPrefix = "stock:"

func stockKey(key domain.VariantKey) string {
	return fmt.Sprintf("%s%s:%s:%s", stockKeyPrefix, key.ProductID, key.Size, key.Color)
}

var reserveScript = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if not cur then
	return -2
end
if tonumber(cur) < tonumber(ARGV[1]) then
	return -1
end
return redis.call('DECRBY', KEYS[1], ARGV[1])
`)

// multiReserveScript checks every key before touching any of them, so a
// multi-item reservation is all-or-nothing in a single atomic step.
// Returns 0 on success, i when key i has insufficient stock, -i when key i
// is missing.
var multiReserveScript = redis.NewScript(`
for i = 1, #KEYS do
	local cur = redis.call('GET', KEYS[i])
	if not cur then
		return -i
	end
	if tonumber(cur) < tonumber(ARGV[i]) then
		return i
	end
end
for i = 1, #KEYS do
	redis.call('DECRBY', KEYS[i], ARGV[i])
end
return 0
`)

var releaseScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return -2
end
return redis.call('INCRBY', KEYS[1], ARGV[1])
`)

var setStockScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('SET', KEYS[1], ARGV[1])
return 1
`)

// RedisLedger keeps authoritative stock counters in Redis. Check-and-
// decrement runs inside a Lua script, so concurrent reservations over the
// same variant serialize on the server.
type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(client *redis.Client) *RedisLedger {
	return &RedisLedger{client: client}
}

func (r *RedisLedger) Reserve(ctx context.Context, key domain.VariantKey, qty int) (int, error) {
	result, err := reserveScript.Run(ctx, r.client, []string{stockKey(key)}, qty).Int()
	if err != nil {
		return 0, fmt.Errorf("reserve stock: %w", err)
	}
	switch result {
	case -2:
		return 0, fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	case -1:
		return 0, fmt.Errorf("%w: %s", domain.ErrInsufficientStock, key)
	}
	return result, nil
}

func (r *RedisLedger) MultiReserve(ctx context.Context, items []domain.LineItem) error {
	// Two line items may name the same variant. Demand is summed per key
	// before the script runs, or the check phase would read the same
	// undecremented counter once per duplicate and overshoot.
	keys := make([]string, 0, len(items))
	args := make([]interface{}, 0, len(items))
	variants := make([]domain.VariantKey, 0, len(items))
	index := make(map[string]int, len(items))
	for _, item := range items {
		k := stockKey(item.Key())
		if i, ok := index[k]; ok {
			args[i] = args[i].(int) + item.Quantity
			continue
		}
		index[k] = len(keys)
		keys = append(keys, k)
		args = append(args, item.Quantity)
		variants = append(variants, item.Key())
	}

	result, err := multiReserveScript.Run(ctx, r.client, keys, args...).Int()
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	switch {
	case result > 0:
		key := variants[result-1]
		return &domain.OrderRejectedError{
			Item: key,
			Err:  fmt.Errorf("%w: %s", domain.ErrInsufficientStock, key),
		}
	case result < 0:
		key := variants[-result-1]
		return &domain.OrderRejectedError{
			Item: key,
			Err:  fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key),
		}
	}
	return nil
}

func (r *RedisLedger) Release(ctx context.Context, key domain.VariantKey, qty int) error {
	result, err := releaseScript.Run(ctx, r.client, []string{stockKey(key)}, qty).Int()
	if err != nil {
		return fmt.Errorf("release stock: %w", err)
	}
	if result == -2 {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	return nil
}

func (r *RedisLedger) SetStock(ctx context.Context, key domain.VariantKey, qty int) error {
	result, err := setStockScript.Run(ctx, r.client, []string{stockKey(key)}, qty).Int()
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	if result == 0 {
		return fmt.Errorf("%w: %s", domain.ErrVariantNotFound, key)
	}
	return nil
}

// InitStock seeds a counter. Used when syncing the durable store's stock
// into Redis at startup; unlike SetStock it may create the key.
func (r *RedisLedger) InitStock(ctx context.Context, key domain.VariantKey, qty int) error {
	return r.client.Set(ctx, stockKey(key), qty, 0).Err()
}
