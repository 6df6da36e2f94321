package devil

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ErrInvalidLevel is returned when a level number below 1 is requested.
var ErrInvalidLevel = errors.New("devil: level number must be at least 1")

// Layout constants for the generated levels.
const (
	basePlatforms     = 15
	maxPlatforms      = 30
	platformSpacingX  = 80
	platformWrapX     = 1000
	platformOffsetX   = 50
	platformBaseY     = 400
	platformWaveY     = 50
	platformMinWidth  = 70
	platformWidthSpan = 30

	movingFromLevel = 10
	maxMoving       = 3

	baseObstacles    = 5
	maxObstacles     = 15
	obstacleOffsetX  = 150
	obstacleSpacingX = 120
	obstacleWrapX    = 900
	obstacleBaseY    = 380
	obstacleJitterY  = 100

	bombsFromLevel = 5
	baseBombs      = 3
	maxBombs       = 10
	bombSpawnY     = 100
	bombRespawnGap = 100

	goalInsetX = 100
)

// Generator builds levels from a level number. Layout is a pure function of
// the number; widths, obstacle heights and bomb placement draw on the RNG.
type Generator struct {
	cfg config.PlatformerConfig
	rng *rand.Rand
}

// NewGenerator creates a generator with its own seeded RNG.
func NewGenerator(cfg config.PlatformerConfig, seed int64) *Generator {
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// newGeneratorWithRand shares an RNG with the simulation so one seed drives a whole run.
func newGeneratorWithRand(cfg config.PlatformerConfig, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// Generate builds the level with the given number.
func (g *Generator) Generate(number int) (*Level, error) {
	if number < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLevel, number)
	}
	if g.cfg.Canvas.Width <= 0 || g.cfg.Canvas.Height <= 0 {
		return nil, fmt.Errorf("devil: cannot generate level %d: %w", number, config.ErrInvalidConfig)
	}

	lvl := &Level{
		Number:    number,
		Platforms: g.platforms(number),
		Moving:    g.movingPlatforms(number),
		Obstacles: g.obstacles(number),
		Bombs:     g.bombs(number),
		Goal:      g.goal(),
		Duration:  g.cfg.Session.CountdownSeconds(number),
	}

	first := lvl.Platforms[0]
	lvl.Spawn = Point{
		X: first.X + g.cfg.Player.SpawnInsetX,
		Y: first.Y - g.cfg.Player.Height,
	}
	return lvl, nil
}

// PlatformCount returns min(15 + level/2, 30).
func PlatformCount(level int) int {
	return core.Min(basePlatforms+level/2, maxPlatforms)
}

// MovingPlatformCount returns min(3, level/10) past level 10, otherwise 0.
func MovingPlatformCount(level int) int {
	if level <= movingFromLevel {
		return 0
	}
	return core.Min(maxMoving, level/10)
}

// ObstacleCount returns min(5 + level/3, 15).
func ObstacleCount(level int) int {
	return core.Min(baseObstacles+level/3, maxObstacles)
}

// BombCount returns min(3 + level/5, 10) past level 5, otherwise 0.
func BombCount(level int) int {
	if level <= bombsFromLevel {
		return 0
	}
	return core.Min(baseBombs+level/5, maxBombs)
}

// MovingPlatformSpeed returns 1 + level/20.
func MovingPlatformSpeed(level int) float64 {
	return 1 + float64(level)/20
}

func (g *Generator) platforms(level int) []Platform {
	n := PlatformCount(level)
	out := make([]Platform, 0, n)
	for i := 0; i < n; i++ {
		x := float64((i*platformSpacingX)%platformWrapX + platformOffsetX)
		y := platformBaseY + platformWaveY*math.Sin(0.5*float64(i))
		w := platformMinWidth + g.rng.Float64()*platformWidthSpan
		out = append(out, Platform{Rect: core.NewRect(x, y, w, g.cfg.Entities.PlatformHeight)})
	}
	return out
}

func (g *Generator) movingPlatforms(level int) []MovingPlatform {
	n := MovingPlatformCount(level)
	if n == 0 {
		return nil
	}

	w := g.cfg.Entities.MovingPlatformW
	maxX := math.Max(0, g.cfg.Canvas.Width-w)
	speed := MovingPlatformSpeed(level)

	out := make([]MovingPlatform, 0, n)
	for j := 0; j < n; j++ {
		dir := 1
		if j%2 == 1 {
			dir = -1
		}
		x := core.ClampF(float64(150+j*350), 0, maxX)
		y := float64(260 - j*50)
		out = append(out, MovingPlatform{
			Rect:      core.NewRect(x, y, w, g.cfg.Entities.PlatformHeight),
			Speed:     speed,
			Direction: dir,
		})
	}
	return out
}

func (g *Generator) obstacles(level int) []Obstacle {
	n := ObstacleCount(level)
	size := g.cfg.Entities.ObstacleSize
	out := make([]Obstacle, 0, n)
	for i := 0; i < n; i++ {
		x := float64(obstacleOffsetX + (i*obstacleSpacingX)%obstacleWrapX)
		y := obstacleBaseY - g.rng.Float64()*obstacleJitterY
		out = append(out, Obstacle{Rect: core.NewRect(x, y, size, size)})
	}
	return out
}

func (g *Generator) bombs(level int) []Bomb {
	n := BombCount(level)
	if n == 0 {
		return nil
	}
	out := make([]Bomb, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Bomb{
			Rect:   core.NewRect(g.randomBombX(), bombSpawnY, g.cfg.Entities.BombSize, g.cfg.Entities.BombSize),
			VY:     g.randomBombSpeed(),
			Active: true,
		})
	}
	return out
}

func (g *Generator) goal() Goal {
	size := g.cfg.Entities.GoalSize
	return Goal{Rect: core.NewRect(
		g.cfg.Canvas.Width-goalInsetX,
		g.cfg.Canvas.Height/2-size/2,
		size, size,
	)}
}

// randomBombX returns an x in [0, canvasWidth - bombSize].
func (g *Generator) randomBombX() float64 {
	span := math.Max(0, g.cfg.Canvas.Width-g.cfg.Entities.BombSize)
	return g.rng.Float64() * span
}

// randomBombSpeed returns a fall speed in [min, max).
func (g *Generator) randomBombSpeed() float64 {
	e := g.cfg.Entities
	return e.BombSpeedMin + g.rng.Float64()*(e.BombSpeedMax-e.BombSpeedMin)
}

// respawnBomb moves a bomb above the top edge at a random column and rearms it.
func (g *Generator) respawnBomb(b *Bomb) {
	b.Y = -b.H - g.rng.Float64()*bombRespawnGap
	b.X = g.randomBombX()
	b.Active = true
}
