package persistence

import (
	"errors"
	"testing"

	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type memStore struct {
	items   map[string][]byte
	saveErr error
	saves   int
}

func (m *memStore) LoadItem(key string) ([]byte, error) {
	return m.items[key], nil
}

func (m *memStore) SaveItem(key string, data []byte) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.items[key] = data
	return nil
}

func useStore(t *testing.T, m *memStore) {
	prev := store
	store = m
	t.Cleanup(func() { store = prev })
}

func newTestProgress() (*ecs.ECS, *components.ProgressData) {
	e := ecs.NewECS(donburi.NewWorld())
	entry := archetypes.Progress.Spawn(e)
	return e, components.Progress.Get(entry)
}

func TestProgressRoundTrip(t *testing.T) {
	useStore(t, &memStore{items: map[string][]byte{}})
	e, progress := newTestProgress()
	progress.LevelIndex = 2
	progress.TotalDeaths = 17
	progress.Dirty = true

	UpdateProgress(e)
	assert.False(t, progress.Dirty)

	saved, err := LoadProgress()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, SavedProgress{LevelIndex: 2, TotalDeaths: 17}, *saved)
}

func TestUpdateProgressOnlyWhenDirty(t *testing.T) {
	m := &memStore{items: map[string][]byte{}}
	useStore(t, m)
	e, progress := newTestProgress()

	UpdateProgress(e)
	assert.Equal(t, 0, m.saves)

	progress.Dirty = true
	UpdateProgress(e)
	UpdateProgress(e)
	assert.Equal(t, 1, m.saves)
}

func TestSaveFailureIsNotRetriedEveryTick(t *testing.T) {
	m := &memStore{items: map[string][]byte{}, saveErr: errors.New("disk full")}
	useStore(t, m)
	e, progress := newTestProgress()
	progress.Dirty = true

	UpdateProgress(e)
	UpdateProgress(e)
	assert.Equal(t, 1, m.saves)
	assert.False(t, progress.Dirty)

	saved, err := LoadProgress()
	assert.NoError(t, err)
	assert.Nil(t, saved)
}

func TestLoadProgress(t *testing.T) {
	t.Run("no store", func(t *testing.T) {
		prev := store
		store = nil
		t.Cleanup(func() { store = prev })

		saved, err := LoadProgress()
		assert.NoError(t, err)
		assert.Nil(t, saved)
	})

	t.Run("corrupt", func(t *testing.T) {
		useStore(t, &memStore{items: map[string][]byte{
			cfg.Persistence.ProgressKey: []byte("{not json"),
		}})
		saved, err := LoadProgress()
		assert.Error(t, err)
		assert.Nil(t, saved)
	})
}
