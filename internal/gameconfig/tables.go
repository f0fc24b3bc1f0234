package gameconfig

// LevelInfo holds per-level base stats and the balance needed to reach the level.
type LevelInfo struct {
	PointsToGet     int64
	MaxEnergy       int64
	EnergyPerSecond int64
	EarnPerTap      int64
}

// Levels is indexed by level number starting at 1.
var Levels = map[int]LevelInfo{
	1:  {PointsToGet: 0, MaxEnergy: 500, EnergyPerSecond: 1, EarnPerTap: 1},
	2:  {PointsToGet: 10000, MaxEnergy: 1000, EnergyPerSecond: 2, EarnPerTap: 2},
	3:  {PointsToGet: 50000, MaxEnergy: 1500, EnergyPerSecond: 3, EarnPerTap: 3},
	4:  {PointsToGet: 150000, MaxEnergy: 2000, EnergyPerSecond: 4, EarnPerTap: 4},
	5:  {PointsToGet: 500000, MaxEnergy: 2500, EnergyPerSecond: 5, EarnPerTap: 5},
	6:  {PointsToGet: 1500000, MaxEnergy: 3000, EnergyPerSecond: 6, EarnPerTap: 6},
	7:  {PointsToGet: 5000000, MaxEnergy: 3500, EnergyPerSecond: 7, EarnPerTap: 7},
	8:  {PointsToGet: 15000000, MaxEnergy: 4000, EnergyPerSecond: 8, EarnPerTap: 8},
	9:  {PointsToGet: 50000000, MaxEnergy: 4500, EnergyPerSecond: 9, EarnPerTap: 9},
	10: {PointsToGet: 150000000, MaxEnergy: 5000, EnergyPerSecond: 10, EarnPerTap: 10},
}

// MaxLevel is the highest level present in Levels.
const MaxLevel = 10

// BoosterTier is one purchasable step of a booster track. Index 0 is the
// free starting tier.
type BoosterTier struct {
	Cost  int64
	Bonus int64
}

var MaxEnergyBoost = []BoosterTier{
	{Cost: 0, Bonus: 0},
	{Cost: 1000, Bonus: 500},
	{Cost: 2500, Bonus: 1000},
	{Cost: 5000, Bonus: 1500},
	{Cost: 10000, Bonus: 2000},
	{Cost: 25000, Bonus: 2500},
	{Cost: 50000, Bonus: 3000},
	{Cost: 100000, Bonus: 3500},
	{Cost: 250000, Bonus: 4000},
	{Cost: 500000, Bonus: 4500},
	{Cost: 1000000, Bonus: 5000},
}

var EnergyRegenBoost = []BoosterTier{
	{Cost: 0, Bonus: 0},
	{Cost: 1500, Bonus: 1},
	{Cost: 4000, Bonus: 2},
	{Cost: 8000, Bonus: 3},
	{Cost: 16000, Bonus: 4},
	{Cost: 35000, Bonus: 5},
	{Cost: 75000, Bonus: 6},
	{Cost: 150000, Bonus: 7},
	{Cost: 300000, Bonus: 8},
	{Cost: 600000, Bonus: 9},
	{Cost: 1200000, Bonus: 10},
}

var EarnTapBoost = []BoosterTier{
	{Cost: 0, Bonus: 0},
	{Cost: 2000, Bonus: 1},
	{Cost: 5000, Bonus: 2},
	{Cost: 12000, Bonus: 3},
	{Cost: 30000, Bonus: 4},
	{Cost: 70000, Bonus: 5},
	{Cost: 150000, Bonus: 6},
	{Cost: 350000, Bonus: 7},
	{Cost: 700000, Bonus: 8},
	{Cost: 1500000, Bonus: 9},
	{Cost: 3000000, Bonus: 10},
}

// Booster track names as they appear in the API.
const (
	BoosterMaxEnergy   = "max-energy"
	BoosterEnergyRegen = "energy-regen"
	BoosterEarnTap     = "earn-tap"
)

// BoosterTable resolves a track name to its tier table.
func BoosterTable(track string) ([]BoosterTier, bool) {
	switch track {
	case BoosterMaxEnergy:
		return MaxEnergyBoost, true
	case BoosterEnergyRegen:
		return EnergyRegenBoost, true
	case BoosterEarnTap:
		return EarnTapBoost, true
	}
	return nil, false
}

// Daily bonus amounts indexed by the current streak.
var Daily = []int64{500, 1000, 2500, 5000, 10000, 25000, 50000, 100000, 250000, 500000}

const (
	// DailyClaimCooldown is the minimum gap between two claims, seconds.
	DailyClaimCooldown = 86400
	// DailyStreakWindow is the gap since the previous claim after which the
	// streak resets, seconds.
	DailyStreakWindow = 172800
)

// Referral payout amounts, snapshotted into the referral record at invite time.
const (
	ReferralBonusRegular = 5000
	ReferralBonusPremium = 25000
)

// New-user defaults.
const (
	DefaultLevel  = 1
	DefaultEnergy = 500
)
