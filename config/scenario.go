package config

// Scenario is one graph family of the lab comparison.
type Scenario struct {
	Name       string
	Density    float64
	Asymmetric bool
}

// LabScenarios are the four families the algorithms are compared on.
func LabScenarios() []Scenario {
	return []Scenario{
		{Name: "100% connections, symmetric", Density: 1},
		{Name: "80% connections, symmetric", Density: 0.8},
		{Name: "100% connections, asymmetric", Density: 1, Asymmetric: true},
		{Name: "80% connections, asymmetric", Density: 0.8, Asymmetric: true},
	}
}

// WithScenario returns a copy of e using the scenario's graph family.
func (e Experiment) WithScenario(s Scenario) Experiment {
	e.Density = s.Density
	e.Asymmetric = s.Asymmetric
	e.Algorithms = append([]string(nil), e.Algorithms...)

	return e
}
