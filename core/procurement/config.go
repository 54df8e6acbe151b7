package procurement

// Default termination ceilings.
const (
	// DefaultMaxSteps bounds unit productions per Plan call.
	DefaultMaxSteps = 200000
	// DefaultMaxVisits bounds how often TotalNeeds expands one item.
	DefaultMaxVisits = 2000
)

// Config holds the planner ceilings.
type Config struct {
	// MaxSteps bounds recursive unit productions per plan.
	MaxSteps int `mapstructure:"max_steps" default:"200000"`
	// MaxVisits bounds per-item expansions when aggregating total needs.
	MaxVisits int `mapstructure:"max_visits" default:"2000"`
}

// Steps returns MaxSteps or the default when unset.
func (c Config) Steps() int {
	if c.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return c.MaxSteps
}

// Visits returns MaxVisits or the default when unset.
func (c Config) Visits() int {
	if c.MaxVisits <= 0 {
		return DefaultMaxVisits
	}
	return c.MaxVisits
}
