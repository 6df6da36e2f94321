package devil

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func emptyLevel() *Level {
	return &Level{
		Number:   1,
		Goal:     Goal{Rect: core.NewRect(1100, 280, 40, 40)},
		Spawn:    Point{X: 100, Y: 400},
		Duration: 89,
	}
}

func withPlatform(lvl *Level, x, y, w, h float64) *Level {
	lvl.Platforms = append(lvl.Platforms, Platform{Rect: core.NewRect(x, y, w, h)})
	return lvl
}

func TestResolveLandsOnPlatform(t *testing.T) {
	lvl := withPlatform(emptyLevel(), 80, 300, 100, 20)
	p := Player{X: 100, Y: 255, W: 40, H: 50, VY: 5, IsJumping: true}

	c := Resolve(&p, lvl, 1200)

	if !c.Landed {
		t.Error("expected a landing")
	}
	if p.Y != 250 || p.VY != 0 {
		t.Errorf("y=%v vy=%v, expected y=250 vy=0", p.Y, p.VY)
	}
	if p.IsJumping {
		t.Error("player should be grounded after landing")
	}
}

func TestResolveHeadBump(t *testing.T) {
	lvl := withPlatform(emptyLevel(), 80, 300, 100, 20)
	p := Player{X: 100, Y: 315, W: 40, H: 40, VY: -6, IsJumping: true}

	c := Resolve(&p, lvl, 1200)

	if c.Landed {
		t.Error("a head bump is not a landing")
	}
	if p.Y != 320 || p.VY != 0 {
		t.Errorf("y=%v vy=%v, expected y=320 vy=0", p.Y, p.VY)
	}
	if !p.IsJumping {
		t.Error("player should stay airborne after a head bump")
	}
}

func TestResolveSideCollision(t *testing.T) {
	tests := []struct {
		name         string
		x, prevX, vx float64
		wantX        float64
	}{
		{"from left", 62, 50, 4.8, 60},
		{"from right", 198, 205, -4.8, 200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := withPlatform(emptyLevel(), 100, 300, 100, 20)
			p := Player{X: tc.x, PrevX: tc.prevX, VX: tc.vx, Y: 290, VY: 0.5, W: 40, H: 40}

			c := Resolve(&p, lvl, 1200)

			if c.Landed {
				t.Error("side contact is not a landing")
			}
			if p.X != tc.wantX {
				t.Errorf("x = %v, expected %v", p.X, tc.wantX)
			}
			if p.Y != 290 {
				t.Errorf("side contact should not change y, got %v", p.Y)
			}
		})
	}
}

func TestResolveRidesMovingPlatform(t *testing.T) {
	lvl := emptyLevel()
	lvl.Moving = []MovingPlatform{{Rect: core.NewRect(300, 300, 100, 20), Speed: 2, Direction: 1, LastDX: 2}}
	p := Player{X: 320, Y: 265, W: 40, H: 40, VY: 5, IsJumping: true}

	c := Resolve(&p, lvl, 1200)

	if !c.Landed {
		t.Fatal("expected a landing on the moving platform")
	}
	if p.Y != 260 {
		t.Errorf("y = %v, expected 260", p.Y)
	}
	if p.X != 322 {
		t.Errorf("x = %v, expected to be carried to 322", p.X)
	}
}

func TestResolveAssumesAirborne(t *testing.T) {
	lvl := emptyLevel()
	p := Player{X: 500, Y: 100, W: 40, H: 40}

	Resolve(&p, lvl, 1200)

	if !p.IsJumping {
		t.Error("player touching nothing should be airborne")
	}
}

func TestResolveObstacleWinsOverBombAndGoal(t *testing.T) {
	lvl := emptyLevel()
	lvl.Obstacles = []Obstacle{{Rect: core.NewRect(500, 300, 25, 25)}}
	lvl.Bombs = []Bomb{{Rect: core.NewRect(500, 300, 20, 20), VY: 3, Active: true}}
	lvl.Goal = Goal{Rect: core.NewRect(500, 300, 40, 40)}
	p := Player{X: 500, Y: 290, W: 40, H: 40}

	c := Resolve(&p, lvl, 1200)

	if !c.HitObstacle {
		t.Error("expected an obstacle hit")
	}
	if c.HitBomb != -1 {
		t.Errorf("only one hazard per tick, bomb reported at %d", c.HitBomb)
	}
	if c.ReachedGoal {
		t.Error("goal must not trigger on a hazard tick")
	}
	if !lvl.Bombs[0].Active {
		t.Error("unchecked bomb should stay active")
	}
}

func TestResolveBombDeactivates(t *testing.T) {
	lvl := emptyLevel()
	lvl.Bombs = []Bomb{
		{Rect: core.NewRect(500, 300, 20, 20), VY: 3, Active: true},
		{Rect: core.NewRect(505, 300, 20, 20), VY: 3, Active: true},
	}
	p := Player{X: 500, Y: 290, W: 40, H: 40}

	c := Resolve(&p, lvl, 1200)
	if c.HitBomb != 0 {
		t.Fatalf("HitBomb = %d, expected 0", c.HitBomb)
	}
	if lvl.Bombs[0].Active {
		t.Error("hit bomb should be deactivated")
	}
	if !lvl.Bombs[1].Active {
		t.Error("second bomb should not be consumed on the same tick")
	}
	if !c.Hazard() {
		t.Error("Hazard() should be true")
	}

	c = Resolve(&p, lvl, 1200)
	if c.HitBomb != 1 {
		t.Errorf("next tick should hit the remaining bomb, got %d", c.HitBomb)
	}

	c = Resolve(&p, lvl, 1200)
	if c.Hazard() {
		t.Error("inactive bombs must not hurt")
	}
}

func TestResolveReachesGoal(t *testing.T) {
	lvl := emptyLevel()
	p := Player{X: 1090, Y: 290, W: 40, H: 40}

	if c := Resolve(&p, lvl, 1200); !c.ReachedGoal {
		t.Error("expected to reach the goal")
	}
}
