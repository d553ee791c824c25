package sqlitedb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsAndExamples(t *testing.T) {
	ctx := context.Background()
	client, err := Open(ctx, filepath.Join(t.TempDir(), "corpus.sqlite"))
	require.NoError(t, err)
	defer client.Close()

	run := &Run{AbstSlots: "name,food", Examples: 2, DAHash: "aa", TextHash: "bb"}
	require.NoError(t, client.Runs.Start(ctx, run))
	assert.NotEqual(t, uuid.Nil, run.ID)

	got, err := client.Runs.Get(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "name,food", got.AbstSlots)
	assert.Equal(t, 2, got.Examples)
	assert.Equal(t, "aa", got.DAHash)
	assert.Equal(t, "bb", got.TextHash)

	missing, err := client.Runs.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	examples := []Example{
		{RunID: run.ID, Part: "train", Index: 1, DA: "hello()", DelexDA: "hello()", Text: "hi", DelexText: "hi"},
		{RunID: run.ID, Part: "train", Index: 0, DA: "inform(food=italian)", DelexDA: "inform(food=X-food)",
			Text: "italian food", DelexText: "X-food food", Absts: "food=italian:0-1"},
		{RunID: run.ID, Part: "test", Index: 2, DA: "bye()", DelexDA: "bye()", Text: "bye", DelexText: "bye"},
	}
	require.NoError(t, client.Examples.InsertAll(ctx, examples))

	train, err := client.Examples.ListByPart(ctx, run.ID, "train")
	require.NoError(t, err)
	require.Len(t, train, 2)
	assert.Equal(t, examples[1], train[0])
	assert.Equal(t, examples[0], train[1])
}

func TestInsertAllRollsBackOnConflict(t *testing.T) {
	ctx := context.Background()
	client, err := Open(ctx, filepath.Join(t.TempDir(), "corpus.sqlite"))
	require.NoError(t, err)
	defer client.Close()

	run := &Run{Examples: 1}
	require.NoError(t, client.Runs.Start(ctx, run))

	dup := Example{RunID: run.ID, Part: "train", Index: 0}
	assert.Error(t, client.Examples.InsertAll(ctx, []Example{dup, dup}))

	stored, err := client.Examples.ListByPart(ctx, run.ID, "train")
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestCloseNil(t *testing.T) {
	var c *Client
	assert.NoError(t, c.Close())
}
