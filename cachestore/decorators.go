package cachestore

import (
	"context"
	"fmt"

	"github.com/amirrezaask/cachetrace/errors"
	"github.com/amirrezaask/cachetrace/kv"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Op names an instrumented store operation. The string value doubles as the
// redis key of the operation's call counter; history lives next to it under
// "<op>:inputs" and "<op>:outputs".
type Op string

const (
	OpStore  Op = "Cache.Store"
	OpGet    Op = "Cache.Get"
	OpGetStr Op = "Cache.GetStr"
	OpGetInt Op = "Cache.GetInt"
)

func (op Op) inputsKey() string  { return string(op) + ":inputs" }
func (op Op) outputsKey() string { return string(op) + ":outputs" }

var opCalls = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "cachetrace",
	Name:      "store_op_calls_total",
	Help:      "Calls per instrumented store operation",
}, []string{"op"})

type opFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

// countCalls advances the operation's counter in redis before running next.
// The counter relies on INCR atomicity, nothing is coordinated locally.
func countCalls[In, Out any](rdb *kv.Redis, op Op, next opFunc[In, Out]) opFunc[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		if err := rdb.Incr(ctx, string(op)).Err(); err != nil {
			var zero Out
			return zero, errors.Wrap(err, "cannot advance call counter for %s", op)
		}
		opCalls.WithLabelValues(string(op)).Inc()
		return next(ctx, in)
	}
}

// callHistory appends the call's input before running next and its output
// after, so a failed call leaves an input with no matching output.
func callHistory[In, Out any](rdb *kv.Redis, op Op, next opFunc[In, Out]) opFunc[In, Out] {
	return func(ctx context.Context, in In) (Out, error) {
		var zero Out
		encoded, err := encodeArgs(in)
		if err != nil {
			return zero, errors.Wrap(err, "cannot record inputs for %s", op)
		}
		if err := rdb.RPush(ctx, op.inputsKey(), encoded).Err(); err != nil {
			return zero, errors.Wrap(err, "cannot record inputs for %s", op)
		}
		out, err := next(ctx, in)
		if err != nil {
			return out, err
		}
		if err := rdb.RPush(ctx, op.outputsKey(), fmt.Sprint(out)).Err(); err != nil {
			return zero, errors.Wrap(err, "cannot record output for %s", op)
		}
		return out, nil
	}
}

// encodeArgs renders an argument list as one canonical JSON array. Byte
// slices are recorded as text, the same form they round-trip through redis.
func encodeArgs(args ...any) (string, error) {
	vals := make([]any, 0, len(args))
	for _, a := range args {
		if b, ok := a.([]byte); ok {
			vals = append(vals, string(b))
			continue
		}
		vals = append(vals, a)
	}
	return json.MarshalToString(vals)
}
