package dto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testParent struct {
	id    uint64
	label string
}

type testChild struct {
	name string
	ref  uint64
}

func buildLabel(c testChild, p testParent) (string, error) {
	return c.name + "/" + p.label, nil
}

func TestResolveOwned_JoinsEachChildToItsParent(t *testing.T) {
	parents := []testParent{{id: 1, label: "one"}, {id: 2, label: "two"}}
	children := []testChild{
		{name: "a", ref: 2},
		{name: "b", ref: 1},
		{name: "c", ref: 2},
	}

	views, err := ResolveOwned(children, parents, "ref",
		func(p testParent) uint64 { return p.id },
		func(c testChild) uint64 { return c.ref },
		buildLabel,
	)
	require.NoError(t, err)
	// Output follows child order.
	assert.Equal(t, []string{"a/two", "b/one", "c/two"}, views)
}

func TestResolveOwned_DanglingReferenceFailsWholeBatch(t *testing.T) {
	parents := []testParent{{id: 1, label: "one"}}
	children := []testChild{
		{name: "a", ref: 1},
		{name: "b", ref: 77},
	}

	views, err := ResolveOwned(children, parents, "ref",
		func(p testParent) uint64 { return p.id },
		func(c testChild) uint64 { return c.ref },
		buildLabel,
	)
	assert.Nil(t, views)

	var dangling *DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "ref", dangling.Field)
	assert.Equal(t, uint64(77), dangling.Value)
	assert.Contains(t, dangling.Error(), "ref=77")
}

func TestResolveOwned_NoChildren(t *testing.T) {
	views, err := ResolveOwned(nil, []testParent{{id: 1}}, "ref",
		func(p testParent) uint64 { return p.id },
		func(c testChild) uint64 { return c.ref },
		buildLabel,
	)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestResolveOwned_BuildErrorPropagates(t *testing.T) {
	wantErr := fmt.Errorf("boom")
	_, err := ResolveOwned([]testChild{{name: "a", ref: 1}}, []testParent{{id: 1}}, "ref",
		func(p testParent) uint64 { return p.id },
		func(c testChild) uint64 { return c.ref },
		func(testChild, testParent) (string, error) { return "", wantErr },
	)
	assert.True(t, errors.Is(err, wantErr))
}

func TestResolveOwned_Idempotent(t *testing.T) {
	parents := []testParent{{id: 1, label: "one"}, {id: 2, label: "two"}}
	children := []testChild{{name: "a", ref: 1}, {name: "b", ref: 2}}

	first, err := ResolveOwned(children, parents, "ref",
		func(p testParent) uint64 { return p.id },
		func(c testChild) uint64 { return c.ref },
		buildLabel,
	)
	require.NoError(t, err)

	second, err := ResolveOwned(children, parents, "ref",
		func(p testParent) uint64 { return p.id },
		func(c testChild) uint64 { return c.ref },
		buildLabel,
	)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
