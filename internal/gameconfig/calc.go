package gameconfig

// Derived user stats. All three are pure table lookups; they run on every
// action for the lazy energy recalculation. Booster levels are bounded by the
// highest purchasable tier, so an out-of-range index is a configuration
// error, not a reachable runtime state.

// MaxEnergy returns the energy cap for a level and max-energy booster level.
func MaxEnergy(level, boosterLevel int) int64 {
	return Levels[level].MaxEnergy + MaxEnergyBoost[boosterLevel].Bonus
}

// EnergyPerSecond returns the regen rate for a level and regen booster level.
func EnergyPerSecond(level, boosterLevel int) int64 {
	return Levels[level].EnergyPerSecond + EnergyRegenBoost[boosterLevel].Bonus
}

// EarnByTap returns the reward per tap for a level and tap booster level.
func EarnByTap(level, boosterLevel int) int64 {
	return Levels[level].EarnPerTap + EarnTapBoost[boosterLevel].Bonus
}
