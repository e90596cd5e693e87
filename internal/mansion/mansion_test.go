package mansion_test

import (
	"strings"
	"testing"

	"github.com/myrjola/detectivequest/internal/mansion"
	"github.com/myrjola/detectivequest/internal/models"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	hall := mansion.Build()
	require.Equal(t, mansion.EntranceHall, hall.Name())
	require.False(t, hall.IsLeaf())

	livingRoom, kitchen := hall.Left(), hall.Right()
	require.Equal(t, mansion.LivingRoom, livingRoom.Name())
	require.Equal(t, mansion.Kitchen, kitchen.Name())

	require.Equal(t, mansion.Library, livingRoom.Left().Name())
	require.Equal(t, mansion.WinterGarden, livingRoom.Right().Name())
	require.Equal(t, mansion.Attic, kitchen.Left().Name())
	require.Equal(t, mansion.GuestRoom, kitchen.Right().Name())

	for _, leaf := range []*mansion.Room{livingRoom.Left(), livingRoom.Right(), kitchen.Left(), kitchen.Right()} {
		require.True(t, leaf.IsLeaf(), "%s should be a dead end", leaf.Name())
		require.Nil(t, leaf.Left())
		require.Nil(t, leaf.Right())
	}
}

func TestConnect(t *testing.T) {
	t.Run("nil parent is ignored", func(t *testing.T) {
		require.NotPanics(t, func() {
			mansion.Connect(nil, mansion.NewRoom("a"), mansion.NewRoom("b"))
		})
	})

	t.Run("overwrites previous exits", func(t *testing.T) {
		parent := mansion.NewRoom("parent")
		mansion.Connect(parent, mansion.NewRoom("a"), mansion.NewRoom("b"))
		c := mansion.NewRoom("c")
		mansion.Connect(parent, c, nil)
		require.Same(t, c, parent.Left())
		require.Nil(t, parent.Right())
		require.False(t, parent.IsLeaf())
	})
}

func TestNewRoom_truncatesName(t *testing.T) {
	room := mansion.NewRoom(strings.Repeat("x", 80))
	require.Len(t, room.Name(), models.MaxNameBytes)
}

func TestWalk(t *testing.T) {
	type visit struct {
		name  string
		depth int
	}
	var visits []visit
	mansion.Walk(mansion.Build(), func(room *mansion.Room, depth int) {
		visits = append(visits, visit{name: room.Name(), depth: depth})
	})

	require.Equal(t, []visit{
		{mansion.EntranceHall, 0},
		{mansion.LivingRoom, 1},
		{mansion.Library, 2},
		{mansion.WinterGarden, 2},
		{mansion.Kitchen, 1},
		{mansion.Attic, 2},
		{mansion.GuestRoom, 2},
	}, visits)

	require.NotPanics(t, func() {
		mansion.Walk(nil, func(*mansion.Room, int) { t.Fatal("nil map has no rooms") })
	})
}
