package optparse

import (
	"errors"
	"testing"
	"time"

	"github.com/napalu/optparse/types"
	"github.com/napalu/optparse/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBind(t *testing.T) {
	var (
		count   int
		ratio   float64
		timeout time.Duration
		since   time.Time
		tags    []string
		ports   []int
		name    string
		debug   bool
	)

	p := NewParser()
	require.NoError(t, p.AddOption('c', "count", "count", Bind(&count)))
	require.NoError(t, p.AddOption(0, "ratio", "ratio", Bind(&ratio)))
	require.NoError(t, p.AddOption('t', "timeout", "timeout", Bind(&timeout)))
	require.NoError(t, p.AddOption(0, "since", "since", Bind(&since)))
	require.NoError(t, p.AddOption(0, "tags", "tags", Bind(&tags)))
	require.NoError(t, p.AddOption(0, "ports", "ports", Bind(&ports)))
	require.NoError(t, p.AddOption(0, "name", "name", Bind(&name)))
	require.NoError(t, p.AddOption('d', "debug", "debug", BindFlag(&debug)))

	errs := p.Parse([]string{
		"-c3", "--ratio=0.5", "-t", "2s", "--since", "2024-01-02",
		"--tags", "a,b|c", "--ports=80,443", "--name", "x y", "-d",
	})
	assert.Empty(t, errs)
	assert.Equal(t, 3, count)
	assert.Equal(t, 0.5, ratio)
	assert.Equal(t, 2*time.Second, timeout)
	assert.Equal(t, 2024, since.Year())
	assert.Equal(t, time.January, since.Month())
	assert.Equal(t, 2, since.Day())
	assert.Equal(t, []string{"a", "b", "c"}, tags)
	assert.Equal(t, []int{80, 443}, ports)
	assert.Equal(t, "x y", name)
	assert.True(t, debug)
}

func TestBind_InvalidValue(t *testing.T) {
	count := 7
	p := NewParser()
	require.NoError(t, p.AddOption('c', "count", "count", Bind(&count)))

	errs := p.Parse([]string{"--count", "many", "-c", "2x"})
	require.Len(t, errs, 2)
	assert.Equal(t, types.HandlerValidationError, errs[0].Kind)
	assert.Equal(t, "--count", errs[0].Label)
	assert.Equal(t, `invalid integer value: "many"`, errs[0].Message)
	assert.Equal(t, "-c", errs[1].Label)
	assert.False(t, errs[0].Fatal)

	var convErr *util.ConversionError
	assert.True(t, errors.As(errs[0], &convErr))
	assert.Equal(t, 7, count, "target keeps its value on failure")
}

func TestBind_Nil(t *testing.T) {
	p := NewParser()

	assert.False(t, Bind[int](nil).Valid())
	assert.False(t, BindFlag(nil).Valid())
	assert.True(t, errors.Is(p.AddOption('x', "", "x", Bind[int](nil)), ErrInvalidOption))

	err := BindOption[int](p, 'x', "", "x", nil)
	assert.True(t, errors.Is(err, ErrBindNilPointer))
	err = BindPositional[string](p, "P", "p", nil)
	assert.True(t, errors.Is(err, ErrBindNilPointer))
}

func TestBindPositional(t *testing.T) {
	var (
		src   string
		level int
		rest  []string
	)

	p := NewParser()
	require.NoError(t, BindPositional(p, "SRC", "source", &src))
	require.NoError(t, BindPositional(p, "LEVEL", "level", &level))
	p.OptionalFromHere()
	require.NoError(t, BindPositional(p, "REST", "the rest", &rest))

	errs := p.Parse([]string{"in.txt", "3", "a", "b,c"})
	assert.Empty(t, errs)
	assert.Equal(t, "in.txt", src)
	assert.Equal(t, 3, level)
	assert.Equal(t, []string{"a", "b,c"}, rest, "every token is collected as is")

	errs = p.Parse([]string{"in.txt", "high"})
	require.Len(t, errs, 1)
	assert.Equal(t, `invalid integer value: "high"`, errs[0].Message)
	assert.Empty(t, errs[0].Label, "positional errors keep the label the handler set")
}
