package pacanim

import (
	"fmt"
	"reflect"
	"testing"
	"time"
)

func syntheticAtlasNames() []string {
	names := []string{
		"tile_wall_0001",
		"cherry_bonus",
	}
	// Walk frames arrive out of order on purpose.
	for _, n := range []int{3, 1, 4, 2} {
		names = append(names, fmt.Sprintf("paku_blue_1_walk%04d", n))
	}
	for n := 1; n <= 7; n++ {
		names = append(names, fmt.Sprintf("mort_blue_1_mort%04d", n))
	}
	for n := 1; n <= 4; n++ {
		names = append(names, fmt.Sprintf("paku_red_2_walk%04d", n))
	}
	return names
}

func TestBuildCatalogWalkCycle(t *testing.T) {
	catalog, err := BuildCatalog(syntheticAtlasNames(), DefaultBuilderConfig())
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	walk := catalog.Lookup(ColorBlue, TypeWoodBronze, KindWalk)
	if walk == nil {
		t.Fatal("No walk animation for blue type 1")
	}

	want := []string{
		"paku_blue_1_walk0001", "paku_blue_1_walk0002", "paku_blue_1_walk0003", "paku_blue_1_walk0004",
		"paku_blue_1_walk0004", "paku_blue_1_walk0003", "paku_blue_1_walk0002", "paku_blue_1_walk0001",
	}
	if !reflect.DeepEqual(walk.Frames, want) {
		t.Errorf("Walk cycle = %v, want %v", walk.Frames, want)
	}
	if !walk.Loop {
		t.Error("Walk cycle does not loop")
	}
	if walk.Duration != 800*time.Millisecond {
		t.Errorf("Walk duration = %v, want 800ms", walk.Duration)
	}
}

func TestBuildCatalogCollisionBounce(t *testing.T) {
	catalog, err := BuildCatalog(syntheticAtlasNames(), DefaultBuilderConfig())
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	collision := catalog.Lookup(ColorRed, TypeScissor, KindCollision)
	if collision == nil {
		t.Fatal("No collision animation for red type 2")
	}

	want := []string{
		"paku_red_2_walk0001", "paku_red_2_walk0002",
		"paku_red_2_walk0002", "paku_red_2_walk0001",
	}
	if !reflect.DeepEqual(collision.Frames, want) {
		t.Errorf("Collision bounce = %v, want %v", collision.Frames, want)
	}
	if collision.Loop {
		t.Error("Collision animation loops")
	}
}

func TestBuildCatalogDeathSequence(t *testing.T) {
	catalog, err := BuildCatalog(syntheticAtlasNames(), DefaultBuilderConfig())
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	death := catalog.Lookup(ColorBlue, TypeWoodBronze, KindDeath)
	if death == nil {
		t.Fatal("No death animation for blue type 1")
	}
	if len(death.Frames) != 7 {
		t.Fatalf("Death sequence has %d frames, want 7", len(death.Frames))
	}
	if death.Frames[0] != "mort_blue_1_mort0001" || death.Frames[6] != "mort_blue_1_mort0007" {
		t.Errorf("Death sequence out of order: %v", death.Frames)
	}
	if death.Loop {
		t.Error("Death animation loops")
	}

	// Red type 2 has walk frames only.
	if catalog.Lookup(ColorRed, TypeScissor, KindDeath) != nil {
		t.Error("Death animation built without death frames")
	}
}

func TestBuildCatalogIgnoresForeignNames(t *testing.T) {
	catalog, err := BuildCatalog(syntheticAtlasNames(), DefaultBuilderConfig())
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}

	wantKeys := []SpriteKey{
		{Color: ColorBlue, Type: TypeWoodBronze},
		{Color: ColorRed, Type: TypeScissor},
	}
	if keys := catalog.Keys(); !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("Catalog keys = %v, want %v", keys, wantKeys)
	}
	if catalog.Lookup(ColorRed, TypePaper, KindWalk) != nil {
		t.Error("Catalog has an entry for a sprite set with no frames")
	}
}

func TestBuildCatalogNoPacFrames(t *testing.T) {
	if _, err := BuildCatalog([]string{"tile_wall_0001"}, DefaultBuilderConfig()); err == nil {
		t.Error("BuildCatalog succeeded with no pac frames")
	}
}

func TestBuildCatalogRejectsBadConfig(t *testing.T) {
	cfg := DefaultBuilderConfig()
	cfg.DeathDuration = 0
	if _, err := BuildCatalog(syntheticAtlasNames(), cfg); err == nil {
		t.Error("BuildCatalog accepted a zero duration")
	}
}
