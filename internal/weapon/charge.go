package weapon

// Phaser tuning, in 30 ticks per second units.
const (
	ChargeFire = 10.0 // charge spent per shot, and required to fire
	ChargeMax  = 30.0 // charge ceiling
	ChargeRate = 30.0 // charge gained per second
	FireTime   = 5.0  // duration of a shot in ticks
)

// Settings tune a ship's phasers.
type Settings struct {
	Range      float64
	HitRadius  float64
	ChargeFire float64
	ChargeMax  float64
	ChargeRate float64 // units per second
	FireTime   float64 // ticks at 30 ticks per second
}

// DefaultSettings returns the stock phaser tuning.
func DefaultSettings() Settings {
	return Settings{
		Range:      DefaultRange,
		HitRadius:  DefaultHitRadius,
		ChargeFire: ChargeFire,
		ChargeMax:  ChargeMax,
		ChargeRate: ChargeRate,
		FireTime:   FireTime,
	}
}

// Phaser tracks the charge and firing state of one ship's phasers.
type Phaser struct {
	Settings Settings
	Charge   float64
	Firing   float64 // remaining shot time, zero when idle
}

// NewPhaser returns an uncharged phaser.
func NewPhaser(s Settings) *Phaser {
	return &Phaser{Settings: s}
}

// CanFire reports whether there is enough charge and no shot in progress.
func (p *Phaser) CanFire() bool {
	return p.Charge >= p.Settings.ChargeFire && p.Firing == 0
}

// Fire starts a shot. Callers check CanFire first; Fire itself does not.
func (p *Phaser) Fire() {
	p.Charge -= p.Settings.ChargeFire
	if p.Charge < 0 {
		p.Charge = 0
	}
	p.Firing = p.Settings.FireTime
}

// IsFiring reports whether a beam is currently active.
func (p *Phaser) IsFiring() bool {
	return p.Firing > 0
}

// Tick counts down an active shot by timeScale ticks.
func (p *Phaser) Tick(timeScale float64) {
	p.Firing -= timeScale
	if p.Firing < 0 {
		p.Firing = 0
	}
}

// Recharge adds one tick worth of charge, scaled by timeScale and a
// difficulty multiplier.
func (p *Phaser) Recharge(timeScale, multiplier float64) {
	p.Charge += timeScale / 30 * p.Settings.ChargeRate * multiplier
	if p.Charge > p.Settings.ChargeMax {
		p.Charge = p.Settings.ChargeMax
	}
}

// Reset empties the phaser.
func (p *Phaser) Reset() {
	p.Charge = 0
	p.Firing = 0
}
