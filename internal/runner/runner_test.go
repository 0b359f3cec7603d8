package runner

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/agentready/internal/attr"
)

// fakeCheck implements Check for testing. run may panic or block; the
// runner must contain either.
type fakeCheck struct {
	def attr.Definition
	run func(ctx context.Context, deps *Deps) attr.Result
}

func (f *fakeCheck) Definition() attr.Definition { return f.def }

func (f *fakeCheck) Run(ctx context.Context, deps *Deps) attr.Result {
	return f.run(ctx, deps)
}

func passing(id string) *fakeCheck {
	return &fakeCheck{
		def: attr.Definition{ID: id, Category: attr.CategoryStructure, Weight: 1, Description: id},
		run: func(ctx context.Context, deps *Deps) attr.Result { return attr.Pass(id, "ok") },
	}
}

func TestRunner_ResultsInRegistryOrder(t *testing.T) {
	// Stagger completion so execution order differs from registry order.
	delays := map[string]time.Duration{"a": 30 * time.Millisecond, "b": 10 * time.Millisecond, "c": 0}
	var cs []Check
	for _, id := range []string{"a", "b", "c"} {
		id := id
		cs = append(cs, &fakeCheck{
			def: attr.Definition{ID: id, Category: attr.CategoryStructure, Weight: 1, Description: id},
			run: func(ctx context.Context, deps *Deps) attr.Result {
				time.Sleep(delays[id])
				return attr.Pass(id, "ok")
			},
		})
	}

	r := New(cs, Options{Concurrency: 3})
	_, results, err := r.Run(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)

	require.Len(t, results, 3)
	assert.Equal(t, "a", results[0].AttributeID)
	assert.Equal(t, "b", results[1].AttributeID)
	assert.Equal(t, "c", results[2].AttributeID)
}

func TestRunner_PanicContainedToOneAttribute(t *testing.T) {
	boom := &fakeCheck{
		def: attr.Definition{ID: "boom", Category: attr.CategoryQuality, Weight: 1, Description: "boom"},
		run: func(ctx context.Context, deps *Deps) attr.Result { panic("kaboom") },
	}

	r := New([]Check{passing("a"), boom, passing("c")}, Options{})
	_, results, err := r.Run(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, attr.StatusPass, results[0].Status)
	assert.Equal(t, attr.StatusErrored, results[1].Status)
	assert.Contains(t, results[1].Err, "kaboom")
	assert.Equal(t, attr.StatusPass, results[2].Status)
}

func TestRunner_TimeoutIsErroredNotFailed(t *testing.T) {
	slow := &fakeCheck{
		def: attr.Definition{ID: "slow", Category: attr.CategoryQuality, Weight: 1, Description: "slow"},
		run: func(ctx context.Context, deps *Deps) attr.Result {
			// Ignores its deadline on purpose; the runner must cut it off.
			time.Sleep(400 * time.Millisecond)
			return attr.Fail("slow", "should not be recorded")
		},
	}

	r := New([]Check{slow, passing("b")}, Options{CheckTimeout: 30 * time.Millisecond})
	_, results, err := r.Run(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)

	assert.Equal(t, attr.StatusErrored, results[0].Status)
	assert.Contains(t, results[0].Err, "timed out")
	assert.Equal(t, attr.StatusPass, results[1].Status)
}

func TestRunner_ExclusionMonotonicity(t *testing.T) {
	cs := []Check{passing("a"), passing("b"), passing("c")}
	dir := t.TempDir()

	r := New(cs, Options{})
	_, full, err := r.Run(context.Background(), dir, nil)
	require.NoError(t, err)

	_, excluded, err := r.Run(context.Background(), dir, []string{"b"})
	require.NoError(t, err)

	require.Len(t, excluded, 2)
	// Excluding b changes nothing about a and c.
	assert.Equal(t, full[0], excluded[0])
	assert.Equal(t, full[2], excluded[1])
}

func TestRunner_UnknownExclusionIsConfigError(t *testing.T) {
	r := New([]Check{passing("a")}, Options{})
	_, _, err := r.Run(context.Background(), t.TempDir(), []string{"nope"})
	require.Error(t, err)

	var cfg *attr.ConfigurationError
	assert.True(t, errors.As(err, &cfg))
}

func TestRunner_MissingRepoAborts(t *testing.T) {
	r := New([]Check{passing("a")}, Options{})
	_, _, err := r.Run(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"), nil)
	require.Error(t, err)

	var aborted *attr.RunAbortedError
	assert.True(t, errors.As(err, &aborted))
}

func TestRunner_ConfirmDeclineAborts(t *testing.T) {
	dir := t.TempDir()
	// Two files against a threshold of one triggers the guard.
	for _, name := range []string{"a.txt", "b.txt"} {
		writeFixture(t, dir, name)
	}

	asked := 0
	r := New([]Check{passing("a")}, Options{
		MaxFiles: 1,
		Confirm:  func(files int) bool { asked = files; return false },
	})
	_, _, err := r.Run(context.Background(), dir, nil)
	require.Error(t, err)

	var aborted *attr.RunAbortedError
	require.True(t, errors.As(err, &aborted))
	assert.Equal(t, 2, asked)
}

func TestRunner_DuplicateCheckIDIsConfigError(t *testing.T) {
	r := New([]Check{passing("a"), passing("a")}, Options{})
	_, _, err := r.Run(context.Background(), t.TempDir(), nil)
	require.Error(t, err)

	var cfg *attr.ConfigurationError
	assert.True(t, errors.As(err, &cfg))
}

func TestReweight(t *testing.T) {
	cs := []Check{passing("a"), passing("b")}

	out, err := Reweight(cs, map[string]float64{"b": 9})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out[0].Definition().Weight)
	assert.Equal(t, 9.0, out[1].Definition().Weight)
	// Originals untouched.
	assert.Equal(t, 1.0, cs[1].Definition().Weight)
}

func TestReweight_UnknownID(t *testing.T) {
	_, err := Reweight([]Check{passing("a")}, map[string]float64{"zzz": 2})
	require.Error(t, err)

	var cfg *attr.ConfigurationError
	assert.True(t, errors.As(err, &cfg))
}

func TestReweight_NonPositive(t *testing.T) {
	_, err := Reweight([]Check{passing("a")}, map[string]float64{"a": 0})
	require.Error(t, err)
}

func writeFixture(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}
