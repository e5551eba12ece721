package service

import (
	"testing"

	"lostfound/database"
	"lostfound/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLostItemCreateEscapesMarkup(t *testing.T) {
	setupDB(t)
	s := LostItemService{}

	err := s.Create("alice", "Wallet", "<script>alert(1)</script>", "")
	require.NoError(t, err)

	var item model.LostItem
	require.NoError(t, database.GetDB().Order("id desc").First(&item).Error)

	assert.Equal(t, "alice", item.Owner)
	assert.Equal(t, "&lt;script&gt;alert(1)&lt;/script&gt;", item.Description)
	assert.NotContains(t, item.Description, "<script>")
	assert.False(t, item.Resolved)
}

func TestLostItemResolveIsIdempotent(t *testing.T) {
	setupDB(t)
	s := LostItemService{}

	require.NoError(t, s.Create("alice", "Keys", "", ""))

	var item model.LostItem
	require.NoError(t, database.GetDB().Order("id desc").First(&item).Error)

	require.NoError(t, s.Resolve(item.Id))
	require.NoError(t, s.Resolve(item.Id))

	var after model.LostItem
	require.NoError(t, database.GetDB().First(&after, item.Id).Error)
	assert.True(t, after.Resolved)
}

func TestLostItemResolveUnknownIdIsNoOp(t *testing.T) {
	setupDB(t)
	s := LostItemService{}

	assert.NoError(t, s.Resolve(99999))

	items, err := s.GetAll()
	require.NoError(t, err)
	for _, item := range items {
		if item.Title == "Blue Backpack" {
			assert.False(t, item.Resolved)
		}
	}
}
