package cachestore

import (
	"context"
	"fmt"
	"io"

	"github.com/amirrezaask/cachetrace/errors"

	"github.com/redis/go-redis/v9"
)

// Replay writes the recorded call count of op followed by one line per
// recorded call, inputs and output, in invocation order.
func (c *Cache) Replay(ctx context.Context, w io.Writer, op Op) error {
	count, err := c.rdb.Get(ctx, string(op)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			return errors.Wrap(err, "cannot read call counter for %s", op)
		}
		count = "0"
	}
	fmt.Fprintf(w, "%s was called %s times:\n", op, count)

	inputs, err := c.rdb.LRange(ctx, op.inputsKey(), 0, -1).Result()
	if err != nil {
		return errors.Wrap(err, "cannot read input history for %s", op)
	}
	outputs, err := c.rdb.LRange(ctx, op.outputsKey(), 0, -1).Result()
	if err != nil {
		return errors.Wrap(err, "cannot read output history for %s", op)
	}

	// a failed call can leave an input without an output, replay only
	// completed pairs
	n := min(len(inputs), len(outputs))
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "%s(%s) -> %s\n", op, inputs[i], outputs[i])
	}
	return nil
}
