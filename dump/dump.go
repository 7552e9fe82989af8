package dump

import (
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
)

func This(obj any) {
	spew.Dump(obj)
}

func To(w io.Writer, obj any) {
	spew.Fdump(w, obj)
}

func AndDie(obj any) {
	spew.Dump(obj)
	os.Exit(0)
}
