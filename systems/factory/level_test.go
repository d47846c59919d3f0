package factory

import (
	"strings"
	"testing"

	"github.com/automoto/boxhop/archetypes"
	"github.com/automoto/boxhop/components"
	cfg "github.com/automoto/boxhop/config"
	"github.com/automoto/boxhop/shared/leveldata"
	"github.com/automoto/boxhop/shared/physics"
	"github.com/automoto/boxhop/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func parseLevel(t *testing.T, name string, rows ...string) *leveldata.Level {
	t.Helper()
	level, err := leveldata.ParseGrid(name, strings.NewReader(strings.Join(rows, "\n")), cfg.Level.TileSize)
	require.NoError(t, err)
	return level
}

func count(world donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(world, func(*donburi.Entry) { n++ })
	return n
}

func testLevels(t *testing.T) []*leveldata.Level {
	return []*leveldata.Level{
		parseLevel(t, "one", "P.C.G", "#####"),
		parseLevel(t, "two", "P..BG", "##.##"),
	}
}

func playerBody(t *testing.T, e *ecs.ECS) *physics.Player {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return components.Player.Get(entry).Body
}

func levelData(t *testing.T, e *ecs.ECS) *components.LevelData {
	t.Helper()
	entry, ok := components.Level.First(e.World)
	require.True(t, ok)
	return components.Level.Get(entry)
}

func TestCreateLevel(t *testing.T) {
	e := newTestECS()
	_, err := CreateLevel(e, testLevels(t), 0)
	require.NoError(t, err)

	data := levelData(t, e)
	assert.Equal(t, 0, data.LevelIndex)
	assert.Equal(t, "one", data.CurrentLevel.Name)
	assert.Equal(t, 7, data.World.Obstacles.Len())
	assert.Equal(t, 7, count(e.World, tags.Obstacle))
	assert.Equal(t, 1, count(e.World, tags.Checkpoint))
	assert.Equal(t, 1, count(e.World, tags.Player))

	body := playerBody(t, e)
	offset := (cfg.Level.TileSize - cfg.Player.Size) / 2
	assert.Equal(t, dmath.Vec2{X: offset, Y: offset}, body.Spawn)
	assert.Equal(t, 5*cfg.Level.TileSize, data.World.Bounds.Width)

	for _, o := range data.World.Obstacles.Obstacles() {
		entry, ok := o.Data.(*donburi.Entry)
		require.True(t, ok)
		assert.Same(t, o, components.Obstacle.Get(entry).Obstacle)
	}
}

func TestCreateLevelNoLevels(t *testing.T) {
	_, err := CreateLevel(newTestECS(), nil, 0)
	assert.Error(t, err)
}

func TestCheckpointRemovesEntity(t *testing.T) {
	e := newTestECS()
	_, err := CreateLevel(e, testLevels(t), 0)
	require.NoError(t, err)
	data := levelData(t, e)
	body := playerBody(t, e)

	cp := data.World.Obstacles.Obstacles()[0]
	require.Equal(t, physics.KindCheckpoint, cp.Kind)
	body.Position = cp.SpawnFor(body.Width, body.Height)
	body.Velocity = dmath.Vec2{}
	body.Step(data.World, physics.Input{}, 1)

	assert.Equal(t, cp.SpawnFor(body.Width, body.Height), body.Spawn)
	assert.Equal(t, 0, count(e.World, tags.Checkpoint))
	assert.Equal(t, 6, count(e.World, tags.Obstacle))
	assert.Equal(t, 6, data.World.Obstacles.Len())
	assert.Equal(t, 1, count(e.World, tags.Effect))
	assert.Equal(t, checkpointSegments*checkpointSegments, count(e.World, tags.Particle))
}

func TestDeathSpawnsParticles(t *testing.T) {
	e := newTestECS()
	progress := archetypes.Progress.Spawn(e)
	_, err := CreateLevel(e, testLevels(t), 0)
	require.NoError(t, err)
	data := levelData(t, e)
	body := playerBody(t, e)

	body.Position.Y = data.CurrentLevel.Height + 10
	body.Step(data.World, physics.Input{}, 1)

	require.True(t, body.IsDead())
	assert.Equal(t, 25, count(e.World, tags.Particle))
	assert.Equal(t, 1, components.Progress.Get(progress).TotalDeaths)
	assert.True(t, components.Progress.Get(progress).Dirty)

	shakeEntry, ok := components.ScreenShake.First(e.World)
	require.True(t, ok)
	assert.Equal(t, cfg.ScreenShake.DeathDuration, components.ScreenShake.Get(shakeEntry).Duration)
}

func TestLevelCompleteAndNextLevel(t *testing.T) {
	e := newTestECS()
	levelEntry, err := CreateLevel(e, testLevels(t), 0)
	require.NoError(t, err)
	data := levelData(t, e)
	body := playerBody(t, e)
	body.SetDeaths(3)

	goal := data.World.Obstacles.Obstacles()[1]
	require.Equal(t, physics.KindGoal, goal.Kind)
	body.Position = goal.SpawnFor(body.Width, body.Height)
	body.Step(data.World, physics.Input{}, 1)

	complete := components.LevelComplete.Get(levelEntry)
	assert.True(t, complete.IsComplete)
	assert.False(t, complete.AllComplete)
	assert.False(t, complete.Ready(), "the tick that reaches the goal takes no overlay input")
	assert.True(t, complete.Ready())

	require.NoError(t, LoadLevel(e, 1))
	assert.Equal(t, 1, data.LevelIndex)
	assert.Equal(t, "two", data.CurrentLevel.Name)
	assert.False(t, components.LevelComplete.Get(levelEntry).IsComplete)
	assert.False(t, components.LevelComplete.Get(levelEntry).Armed)
	assert.Equal(t, 1, count(e.World, tags.Player))
	assert.Equal(t, 3, playerBody(t, e).Deaths(), "deaths carry over between levels")
	assert.Equal(t, 6, count(e.World, tags.Obstacle))

	goal = data.World.Obstacles.Obstacles()[1]
	require.Equal(t, physics.KindGoal, goal.Kind)
	body = playerBody(t, e)
	body.Position = goal.SpawnFor(body.Width, body.Height)
	body.Step(data.World, physics.Input{}, 1)
	assert.True(t, components.LevelComplete.Get(levelEntry).AllComplete)
}

func TestLoadLevelWrapsIndex(t *testing.T) {
	e := newTestECS()
	_, err := CreateLevel(e, testLevels(t), 5)
	require.NoError(t, err)
	assert.Equal(t, 0, levelData(t, e).LevelIndex)
}

func TestCreateRegistryBounceSpeed(t *testing.T) {
	level := parseLevel(t, "bounce", "PB")
	level.Tiles = append(level.Tiles, leveldata.Tile{X: 80, Y: 0, W: 40, H: 40, Kind: leveldata.TileBounce, BounceSpeed: 0.9})

	reg, err := CreateRegistry(level)
	require.NoError(t, err)
	obstacles := reg.Obstacles()
	require.Len(t, obstacles, 2)
	assert.Equal(t, cfg.Bounce.Speed, obstacles[0].BounceSpeed)
	assert.Equal(t, 0.9, obstacles[1].BounceSpeed)

	level.Tiles = append(level.Tiles, leveldata.Tile{Kind: "lava"})
	_, err = CreateRegistry(level)
	assert.ErrorIs(t, err, leveldata.ErrUnknownKind)
}
