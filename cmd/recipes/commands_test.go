package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONTENT_BACKEND", "memory")

	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecipesCommand(t *testing.T) {
	out, err := execute(t, "--dev", "recipes", "--category", "Desserts")
	require.NoError(t, err)
	assert.Contains(t, out, "* 🍰 Chocolate Lava Cake")
	assert.NotContains(t, out, "Fluffy Pancakes")

	out, err = execute(t, "--dev", "recipes", "--search", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No recipes found.")
}

func TestBlogListCommand(t *testing.T) {
	out, err := execute(t, "--dev", "blog", "list", "--sort", "oldest")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 4 of 4")
	assert.Less(t, bytes.Index([]byte(out), []byte("pancake-sunday")), bytes.Index([]byte(out), []byte("weeknight-carbonara")))

	_, err = execute(t, "--dev", "blog", "list", "--sort", "random")
	assert.Error(t, err)
}

func TestBlogShowCommand(t *testing.T) {
	out, err := execute(t, "--dev", "blog", "show", "lava-cake-secrets")
	require.NoError(t, err)
	assert.Contains(t, out, "Lava Cake Secrets")
	assert.Contains(t, out, "By Admin · Unknown date")
	assert.Contains(t, out, "Underbake by one minute.")

	_, err = execute(t, "--dev", "blog", "show", "missing")
	assert.ErrorContains(t, err, "Blog post not found")
}
