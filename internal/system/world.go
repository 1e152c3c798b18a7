// internal/system/world.go
package system

import (
	"edge-arena/internal/component"
	"edge-arena/internal/config"
	"edge-arena/internal/entity"
	"edge-arena/internal/utils"
	"log"
	"math"
)

// placementAttempts bounds every rejection loop that looks for a clear point.
const placementAttempts = 24

// WallGap is the minimum distance between an obstacle and a world wall.
// Any body up to the boss's size fits through it.
func WallGap(t config.Tuning) float64 {
	widest := math.Max(t.FighterRadius, t.BossRadius)
	return math.Max(t.ObstaclePadding, 2*(widest+t.CollisionMargin))
}

// GenerateObstacles fills s.Obstacles with non-overlapping rectangles that keep
// clear of the player spawn. Placement gives up after a bounded number of attempts
// and returns how many obstacles were actually placed.
func GenerateObstacles(s *entity.State) int {
	t := s.Tuning
	s.Obstacles = s.Obstacles[:0]
	spawn := s.SpawnPoint()
	maxAttempts := t.ObstacleCount * t.ObstacleAttemptsPer
	gap := WallGap(t)

	for attempt := 0; attempt < maxAttempts && len(s.Obstacles) < t.ObstacleCount; attempt++ {
		w := s.Rng.Range(t.ObstacleMinSize, t.ObstacleMaxSize)
		h := s.Rng.Range(t.ObstacleMinSize, t.ObstacleMaxSize)
		if w+2*gap >= t.WorldWidth || h+2*gap >= t.WorldHeight {
			continue
		}
		candidate := component.Obstacle{
			X: s.Rng.Range(gap, t.WorldWidth-w-gap),
			Y: s.Rng.Range(gap, t.WorldHeight-h-gap),
			W: w,
			H: h,
		}
		if candidate.Nearest(spawn).Dist(spawn) < t.ObstacleSpawnClearance {
			continue
		}
		if overlapsAny(s.Obstacles, candidate, t.ObstaclePadding) {
			continue
		}
		s.Obstacles = append(s.Obstacles, candidate)
	}

	if len(s.Obstacles) < t.ObstacleCount {
		log.Printf("World: placed %d of %d obstacles after %d attempts", len(s.Obstacles), t.ObstacleCount, maxAttempts)
	}
	return len(s.Obstacles)
}

func overlapsAny(existing []component.Obstacle, candidate component.Obstacle, pad float64) bool {
	for _, o := range existing {
		if o.Overlaps(candidate, pad) {
			return true
		}
	}
	return false
}

// FreePoint returns a random point at least minDist from avoid whose circle of
// radius is clear of obstacles. When no such point turns up it drops the distance
// requirement, and as a last resort returns the spawn point, which obstacles keep clear of.
func FreePoint(s *entity.State, avoid utils.Vec2, minDist, radius float64) utils.Vec2 {
	for i := 0; i < placementAttempts; i++ {
		q, ok := settle(s, s.RandomPoint(radius), radius)
		if ok && q.Dist(avoid) >= minDist {
			return q
		}
	}
	for i := 0; i < placementAttempts; i++ {
		if p, ok := settle(s, s.RandomPoint(radius), radius); ok {
			return p
		}
	}
	return s.ClampToWorld(s.SpawnPoint(), radius)
}

// settle clamps p into the world, pushes it out of obstacles and clamps again.
// It reports false when the final point still overlaps an obstacle.
func settle(s *entity.State, p utils.Vec2, radius float64) (utils.Vec2, bool) {
	p = ResolveObstacles(s, s.ClampToWorld(p, radius), radius)
	p = s.ClampToWorld(p, radius)
	return p, !blocked(s, p, radius)
}

// blocked reports whether a circle at p overlaps an obstacle. A point pushed out
// to exactly the clearance counts as clear despite rounding.
func blocked(s *entity.State, p utils.Vec2, radius float64) bool {
	clearance := radius + s.Tuning.CollisionMargin - 1e-6
	for _, o := range s.Obstacles {
		if o.Nearest(p).Dist(p) < clearance {
			return true
		}
	}
	return false
}
