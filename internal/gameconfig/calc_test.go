package gameconfig

import "testing"

func TestCalcDeterministic(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		for b := 0; b < len(MaxEnergyBoost); b++ {
			if MaxEnergy(level, b) != MaxEnergy(level, b) {
				t.Fatalf("MaxEnergy(%d,%d) not deterministic", level, b)
			}
		}
	}
}

func TestCalcMonotoneInBooster(t *testing.T) {
	for level := 1; level <= MaxLevel; level++ {
		for b := 1; b < len(MaxEnergyBoost); b++ {
			if MaxEnergy(level, b) < MaxEnergy(level, b-1) {
				t.Fatalf("MaxEnergy(%d,%d) = %d < tier %d", level, b, MaxEnergy(level, b), b-1)
			}
		}
		for b := 1; b < len(EnergyRegenBoost); b++ {
			if EnergyPerSecond(level, b) < EnergyPerSecond(level, b-1) {
				t.Fatalf("EnergyPerSecond(%d,%d) decreased", level, b)
			}
		}
		for b := 1; b < len(EarnTapBoost); b++ {
			if EarnByTap(level, b) < EarnByTap(level, b-1) {
				t.Fatalf("EarnByTap(%d,%d) decreased", level, b)
			}
		}
	}
}

func TestLevelTableMonotone(t *testing.T) {
	prev := int64(-1)
	for level := 1; level <= MaxLevel; level++ {
		info, ok := Levels[level]
		if !ok {
			t.Fatalf("level %d missing from table", level)
		}
		if info.PointsToGet <= prev && level > 1 {
			t.Fatalf("level %d threshold %d not above previous %d", level, info.PointsToGet, prev)
		}
		prev = info.PointsToGet
	}
}

func TestBoosterCostsMonotone(t *testing.T) {
	tracks := map[string][]BoosterTier{
		"max-energy":   MaxEnergyBoost,
		"energy-regen": EnergyRegenBoost,
		"earn-tap":     EarnTapBoost,
	}
	for name, track := range tracks {
		for i := 1; i < len(track); i++ {
			if track[i].Cost <= track[i-1].Cost {
				t.Fatalf("%s tier %d cost %d not above tier %d", name, i, track[i].Cost, i-1)
			}
		}
	}
}

func TestDefaultsMatchLevelOne(t *testing.T) {
	if MaxEnergy(DefaultLevel, 0) != DefaultEnergy {
		t.Fatalf("default energy %d does not fill level-1 cap %d", DefaultEnergy, MaxEnergy(DefaultLevel, 0))
	}
}
