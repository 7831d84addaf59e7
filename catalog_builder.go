package pacanim

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// Frame name patterns produced by the sprite pipeline:
//   paku_<color>_<type>_walk<NNNN> - movement frames
//   mort_<color>_<type>_mort<NNNN> - death frames
var (
	walkFramePattern  = regexp.MustCompile(`^paku_(blue|red)_([1-4])_walk(\d{4})$`)
	deathFramePattern = regexp.MustCompile(`^mort_(blue|red)_([1-4])_mort(\d{4})$`)
)

// BuilderConfig sets the total duration per animation kind.
type BuilderConfig struct {
	WalkDuration      time.Duration
	CollisionDuration time.Duration
	DeathDuration     time.Duration
}

// DefaultBuilderConfig keeps the 8/4/7 frame proportions of the
// original sheets at 100ms per frame.
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		WalkDuration:      800 * time.Millisecond,
		CollisionDuration: 400 * time.Millisecond,
		DeathDuration:     700 * time.Millisecond,
	}
}

type numberedFrame struct {
	num  int
	name string
}

// BuildCatalog groups atlas frame names by sprite set and derives the
// walk, collision and death animations for each set. Names matching no
// pattern are skipped, tiles and UI share the atlas with the pacs.
func BuildCatalog(frameNames []string, cfg BuilderConfig) (*Catalog, error) {
	if cfg.WalkDuration <= 0 || cfg.CollisionDuration <= 0 || cfg.DeathDuration <= 0 {
		return nil, fmt.Errorf("builder config has a non-positive duration: %+v", cfg)
	}

	logrus.Debug("Grouping atlas frames")
	walkFrames := make(map[SpriteKey][]numberedFrame)
	deathFrames := make(map[SpriteKey][]numberedFrame)
	for _, name := range frameNames {
		if m := walkFramePattern.FindStringSubmatch(name); m != nil {
			key := spriteKeyFromMatch(m)
			walkFrames[key] = append(walkFrames[key], numberedFrame{frameNumber(m), name})
			continue
		}
		if m := deathFramePattern.FindStringSubmatch(name); m != nil {
			key := spriteKeyFromMatch(m)
			deathFrames[key] = append(deathFrames[key], numberedFrame{frameNumber(m), name})
		}
	}

	logrus.Debug("Building animation definitions")
	defs := make(map[SpriteKey]map[Kind]*AnimationDefinition)
	for key, frames := range walkFrames {
		walk := orderedNames(frames)

		kinds := ensureKinds(defs, key)

		// The walk cycle plays the frames forward and then back.
		kinds[KindWalk] = &AnimationDefinition{
			Frames:   pingPong(walk),
			Duration: cfg.WalkDuration,
			Loop:     true,
		}

		// Collision is a short bounce on the first two walk frames.
		if len(walk) >= 2 {
			kinds[KindCollision] = &AnimationDefinition{
				Frames:   []string{walk[0], walk[1], walk[1], walk[0]},
				Duration: cfg.CollisionDuration,
			}
		}
	}
	for key, frames := range deathFrames {
		kinds := ensureKinds(defs, key)
		kinds[KindDeath] = &AnimationDefinition{
			Frames:   orderedNames(frames),
			Duration: cfg.DeathDuration,
		}
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no pac frames among %d atlas frames", len(frameNames))
	}

	logrus.Debugf("Built animations for %d sprite sets", len(defs))
	return NewCatalog(defs), nil
}

func spriteKeyFromMatch(m []string) SpriteKey {
	pacType, _ := strconv.Atoi(m[2])
	return SpriteKey{Color: Color(m[1]), Type: PacType(pacType)}
}

func frameNumber(m []string) int {
	num, _ := strconv.Atoi(m[3])
	return num
}

func orderedNames(frames []numberedFrame) []string {
	sort.Slice(frames, func(i, j int) bool { return frames[i].num < frames[j].num })
	names := make([]string, len(frames))
	for i, frame := range frames {
		names[i] = frame.name
	}
	return names
}

func pingPong(names []string) []string {
	cycle := make([]string, 0, 2*len(names))
	cycle = append(cycle, names...)
	for i := len(names) - 1; i >= 0; i-- {
		cycle = append(cycle, names[i])
	}
	return cycle
}

func ensureKinds(defs map[SpriteKey]map[Kind]*AnimationDefinition, key SpriteKey) map[Kind]*AnimationDefinition {
	kinds, ok := defs[key]
	if !ok {
		kinds = make(map[Kind]*AnimationDefinition)
		defs[key] = kinds
	}
	return kinds
}
