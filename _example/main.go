package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/amirrezaask/cachetrace/cachestore"
	"github.com/amirrezaask/cachetrace/httpclient"
	"github.com/amirrezaask/cachetrace/kv"
	"github.com/amirrezaask/cachetrace/logging"
	"github.com/amirrezaask/cachetrace/tracing"
	"github.com/amirrezaask/cachetrace/webcache"
)

func main() {
	logging.Init(logging.Config{LogLevel: slog.LevelDebug})

	shutdown, err := tracing.Init()
	if err != nil {
		panic(err)
	}
	ctx := context.Background()
	defer shutdown(ctx)

	rdb, err := kv.NewRedis(ctx, kv.ConfigFromEnv())
	if err != nil {
		panic(err)
	}

	cache, err := cachestore.New(ctx, rdb)
	if err != nil {
		panic(err)
	}

	key, err := cache.Store(ctx, "hello")
	if err != nil {
		panic(err)
	}
	text, err := cache.GetStr(ctx, key)
	if err != nil {
		panic(err)
	}
	fmt.Println("stored and read back:", text)

	if err := cache.Replay(ctx, os.Stdout, cachestore.OpStore); err != nil {
		panic(err)
	}

	pages := webcache.New(rdb, httpclient.New("cachetrace", "example", 10*time.Second), webcache.TTLFromEnv())
	body, err := pages.GetPage(ctx, "http://example.com")
	if err != nil {
		panic(err)
	}
	fmt.Println("fetched", len(body), "bytes")

	n, err := pages.Count(ctx, "http://example.com")
	if err != nil {
		panic(err)
	}
	fmt.Println("accessed", n, "times")
}
