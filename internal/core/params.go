package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
)

// Parameter describes a single tunable value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of tunables exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterControl describes an adjustable parameter together with its nudge
// step and valid range, for display on the overlay and for programmatic
// adjustment.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min float64
	Max float64
}

// ParameterControlsProvider exposes the list of adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter allows callers to update floating point parameters.
// Setters reject values outside the parameter's valid range and report
// whether the value was applied; on rejection the previous value is retained.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
