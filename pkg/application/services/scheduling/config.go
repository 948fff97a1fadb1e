package scheduling

// Config holds the tunable assumptions of both capacity models. The
// defaults reproduce the behavior of the planning tool this replaces and
// should only be changed with production's sign-off.
type Config struct {
	// WorkingHoursPerDay converts hourly machine capacity into daily
	// piece throughput.
	WorkingHoursPerDay float64

	// MaxPlanningDays is the hard iteration cap of the forward walk. It
	// guarantees termination on malformed data (a phase with zero capacity
	// forever); roughly two years of calendar.
	MaxPlanningDays int

	// HandoffDivisor sizes the hour-budget model's inter-department
	// handoff buffer: ceil(cycleSteps / HandoffDivisor) extra working
	// days. The half-step heuristic has no recorded business
	// justification; it is kept configurable pending product-owner
	// confirmation.
	HandoffDivisor int

	// DepartmentDayHours is the daily hour budget assumed for every
	// department by the hour-budget model. The source system hardcoded 8
	// with no per-department override; that limitation is preserved.
	DepartmentDayHours float64
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		WorkingHoursPerDay: 8,
		MaxPlanningDays:    730,
		HandoffDivisor:     2,
		DepartmentDayHours: 8,
	}
}

// normalized fills zero fields with defaults so a partially populated
// Config behaves sanely
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.WorkingHoursPerDay <= 0 {
		c.WorkingHoursPerDay = def.WorkingHoursPerDay
	}
	if c.MaxPlanningDays <= 0 {
		c.MaxPlanningDays = def.MaxPlanningDays
	}
	if c.HandoffDivisor <= 0 {
		c.HandoffDivisor = def.HandoffDivisor
	}
	if c.DepartmentDayHours <= 0 {
		c.DepartmentDayHours = def.DepartmentDayHours
	}
	return c
}
