package devil

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestMovingPlatformReverses(t *testing.T) {
	lvl := emptyLevel()
	lvl.Moving = []MovingPlatform{
		{Rect: core.NewRect(1098, 260, 100, 20), Speed: 3, Direction: 1},
		{Rect: core.NewRect(1, 210, 100, 20), Speed: 2, Direction: -1},
		{Rect: core.NewRect(500, 160, 100, 20), Speed: 2, Direction: 1},
	}

	updateMovingPlatforms(lvl, 1200)

	if got := lvl.Moving[0]; got.X != 1100 || got.Direction != -1 {
		t.Errorf("right edge: x=%v dir=%d, expected x=1100 dir=-1", got.X, got.Direction)
	}
	if got := lvl.Moving[1]; got.X != 0 || got.Direction != 1 {
		t.Errorf("left edge: x=%v dir=%d, expected x=0 dir=1", got.X, got.Direction)
	}
	if got := lvl.Moving[2]; got.X != 502 || got.Direction != 1 {
		t.Errorf("middle: x=%v dir=%d, expected x=502 dir=1", got.X, got.Direction)
	}
}

func TestRiderFollowsPlatformIntoEdge(t *testing.T) {
	lvl := emptyLevel()
	lvl.Moving = []MovingPlatform{{Rect: core.NewRect(1098, 260, 100, 20), Speed: 3, Direction: 1}}
	p := Player{X: 1120, Y: 225, W: 40, H: 40, VY: 5, IsJumping: true}

	updateMovingPlatforms(lvl, 1200)
	c := Resolve(&p, lvl, 1200)

	mp := lvl.Moving[0]
	if mp.LastDX != 2 {
		t.Errorf("platform displacement = %v, expected the clamped 2", mp.LastDX)
	}
	if !c.Landed {
		t.Fatal("expected the rider to stay on the platform")
	}
	if p.X != 1122 {
		t.Errorf("rider x = %v, expected 1122 (same +2 as the platform)", p.X)
	}

	// Next tick the platform heads back and carries the rider with it.
	p.VY = 1
	p.Y += p.VY
	updateMovingPlatforms(lvl, 1200)
	Resolve(&p, lvl, 1200)
	if p.X != 1119 {
		t.Errorf("rider x = %v after reversal, expected 1119", p.X)
	}
}

func TestMovingPlatformStaysInCanvas(t *testing.T) {
	lvl := emptyLevel()
	lvl.Moving = []MovingPlatform{{Rect: core.NewRect(150, 260, 100, 20), Speed: 6, Direction: 1}}

	for i := 0; i < 2000; i++ {
		updateMovingPlatforms(lvl, 1200)
		mp := lvl.Moving[0]
		if mp.X < 0 || mp.Right() > 1200 {
			t.Fatalf("tick %d: platform left the canvas: %+v", i, mp.Rect)
		}
	}
}

func TestBombRecycles(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	gen := NewGenerator(cfg, 5)
	lvl := emptyLevel()
	lvl.Bombs = []Bomb{
		{Rect: core.NewRect(300, 599, 20, 20), VY: 3, Active: false},
		{Rect: core.NewRect(300, 100, 20, 20), VY: 3, Active: true},
	}

	updateBombs(lvl, cfg.Canvas.Height, gen)

	b := lvl.Bombs[0]
	if b.Y >= 0 || b.Y < -120 {
		t.Errorf("recycled bomb y = %v, expected in [-120, 0)", b.Y)
	}
	if b.X < 0 || b.X > 1180 {
		t.Errorf("recycled bomb x = %v outside canvas", b.X)
	}
	if !b.Active {
		t.Error("recycled bomb should be rearmed")
	}
	if b.VY != 3 {
		t.Errorf("recycling should keep speed, got %v", b.VY)
	}

	if lvl.Bombs[1].Y != 103 {
		t.Errorf("falling bomb y = %v, expected 103", lvl.Bombs[1].Y)
	}
}
