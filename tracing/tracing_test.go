package tracing

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func TestInitAndShutdown(t *testing.T) {
	is := is.New(t)

	shutdown, err := Init()
	is.NoErr(err)
	is.True(shutdown != nil)
	is.NoErr(shutdown(context.Background()))
}
