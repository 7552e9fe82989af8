package env

import (
	"testing"

	"github.com/matryer/is"
)

func TestGetEnvDefault(t *testing.T) {
	is := is.New(t)
	t.Setenv("CACHETRACE_TEST_KEY", "from-env")

	is.Equal("from-env", GetEnvDefault("CACHETRACE_TEST_KEY", "fallback"))
	is.Equal("fallback", GetEnvDefault("CACHETRACE_TEST_MISSING", "fallback"))
}

func TestGetEnvIntDefault(t *testing.T) {
	is := is.New(t)
	t.Setenv("CACHETRACE_TEST_INT", "42")
	t.Setenv("CACHETRACE_TEST_NOT_INT", "forty-two")

	is.Equal(42, GetEnvIntDefault("CACHETRACE_TEST_INT", 7))
	is.Equal(7, GetEnvIntDefault("CACHETRACE_TEST_NOT_INT", 7))
	is.Equal(7, GetEnvIntDefault("CACHETRACE_TEST_INT_MISSING", 7))
}

func TestParseCommaSeperatedAsSet(t *testing.T) {
	is := is.New(t)
	s := ParseCommaSeperatedAsSet("a,b,c")

	is.True(s.Exists("a"))
	is.True(s.Exists("b"))
	is.True(s.Exists("c"))
	is.True(!s.Exists("d"))
}
