// Package game holds the pure game rules: no storage, no clocks of its own.
package game

import "time"

// EnergyRegenPerSecond - скорость восстановления энергии
const EnergyRegenPerSecond = 1

// RegenerateEnergy computes the energy a user has regained between
// lastUpdate and now, at EnergyRegenPerSecond per elapsed whole second,
// clamped so the result never exceeds maxEnergy.
//
// changed=false means nothing was gained (under a second elapsed, or the
// bar is already full); in that case lastUpdate must NOT be advanced, or
// sub-second partial progress would be lost between calls.
func RegenerateEnergy(energy, maxEnergy int, lastUpdate, now time.Time) (newEnergy int, changed bool) {
	elapsed := int(now.Sub(lastUpdate) / time.Second)
	if elapsed <= 0 {
		return energy, false
	}

	gain := elapsed * EnergyRegenPerSecond
	if room := maxEnergy - energy; gain > room {
		gain = room
	}
	if gain <= 0 {
		return energy, false
	}
	return energy + gain, true
}
