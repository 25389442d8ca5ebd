package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckManagerDeduplicate(t *testing.T) {
	checker := NewCheckManager(true, false)

	rec1, b1, err := replay(mustParse(t, "Bcc W Bdd"), replayOptions{})
	require.NoError(t, err)
	rec2, b2, err := replay(mustParse(t, "Bdd W Bcc"), replayOptions{})
	require.NoError(t, err)
	rec3, b3, err := replay(mustParse(t, "Bcc Wdd"), replayOptions{})
	require.NoError(t, err)

	assert.NoError(t, checker.Check(rec1, b1))
	assert.ErrorIs(t, checker.Check(rec2, b2), errDuplicate)
	assert.NoError(t, checker.Check(rec3, b3))
	checker.AddFailed(2)

	replayed, failed, rejected, duplicate := checker.Counts()
	assert.Equal(t, 3, replayed)
	assert.Equal(t, 2, failed)
	assert.Equal(t, 0, rejected)
	assert.Equal(t, 1, duplicate)
}

func TestCheckManagerCountsRejected(t *testing.T) {
	checker := NewCheckManager(false, false)
	rec, b, err := replay(mustParse(t, "Bcc Bdd"), replayOptions{})
	require.NoError(t, err)

	// duplicates are kept without deduplication
	assert.NoError(t, checker.Check(rec, b))
	assert.NoError(t, checker.Check(rec, b))
	_, _, rejected, duplicate := checker.Counts()
	assert.Equal(t, 2, rejected)
	assert.Zero(t, duplicate)
}
