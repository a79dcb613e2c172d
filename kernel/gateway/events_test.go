package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierOneEventPerUpgrade(t *testing.T) {
	f := newFixture(t)
	id, events := f.gw.Notifier().Subscribe(8)
	defer f.gw.Notifier().Unsubscribe(id)

	require.NoError(t, f.gw.Upgrade(admin, moduleB))
	require.NoError(t, f.gw.Upgrade(admin, moduleA))

	first := <-events
	second := <-events
	assert.Equal(t, moduleB, first.Module)
	assert.Equal(t, moduleA, second.Module)
	assert.Equal(t, first.Sequence+1, second.Sequence)
	assert.Len(t, events, 0)
}

func TestNotifierFailedUpgradeEmitsNothing(t *testing.T) {
	f := newFixture(t)
	id, events := f.gw.Notifier().Subscribe(1)
	defer f.gw.Notifier().Unsubscribe(id)

	_ = f.gw.Upgrade(outsider, moduleB)
	assert.Len(t, events, 0)
}

func TestNotifierFullSubscriberDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	id, _ := f.gw.Notifier().Subscribe(1)
	defer f.gw.Notifier().Unsubscribe(id)

	require.NoError(t, f.gw.Upgrade(admin, moduleB))
	require.NoError(t, f.gw.Upgrade(admin, moduleA))

	assert.Equal(t, uint64(1), f.gw.Notifier().Dropped())
}

func TestNotifierUnsubscribeClosesChannel(t *testing.T) {
	f := newFixture(t)
	id, events := f.gw.Notifier().Subscribe(1)

	f.gw.Notifier().Unsubscribe(id)
	_, open := <-events
	assert.False(t, open)
}
