package rings

import (
	"math"
	"strconv"

	"ripple-tank/internal/core"
)

// Handle applies one input event. Clicks start a ring at the event's cell;
// keys map to pause, rain, clear, expansion speed and wind. Unrecognized
// keys are ignored.
func (w *World) Handle(ev core.Event) {
	switch ev.Kind {
	case core.EventClick:
		w.SpawnRing(ev.X, ev.Y)
	case core.EventKey:
		switch ev.Key {
		case core.KeyPause:
			w.TogglePause()
		case core.KeyRain:
			w.ToggleRain()
		case core.KeyClear:
			w.Clear()
		case core.KeySpeedUp:
			w.nudgeExpansion(ExpansionStep)
		case core.KeySpeedDown:
			w.nudgeExpansion(-ExpansionStep)
		case core.KeyWindRight:
			w.nudgeWind(WindStep)
		case core.KeyWindLeft:
			w.nudgeWind(-WindStep)
		case core.KeyWindCalm:
			w.params.Wind = 0
		}
	}
}

func (w *World) nudgeExpansion(delta float64) {
	w.params.ExpansionSpeed = clampFloat(w.params.ExpansionSpeed+delta, ExpansionMin, ExpansionMax)
}

func (w *World) nudgeWind(delta float64) {
	w.params.Wind = clampFloat(w.params.Wind+delta, WindMin, WindMax)
}

func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// SetFloatParameter updates a parameter by key. Values outside the valid
// range are rejected and the previous value retained.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "expansion":
		if value < ExpansionMin || value > ExpansionMax {
			return false
		}
		w.params.ExpansionSpeed = value
	case "fade":
		if value < FadeMin || value > FadeMax {
			return false
		}
		w.params.FadeSpeed = value
	case "wind":
		if value < WindMin || value > WindMax {
			return false
		}
		w.params.Wind = value
	default:
		return false
	}
	return true
}

// ParameterControls lists the values adjustable from the front ends.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "expansion", Label: "Expansion speed", Type: core.ParamTypeFloat, Step: ExpansionStep, Min: ExpansionMin, Max: ExpansionMax},
		{Key: "fade", Label: "Fade speed", Type: core.ParamTypeFloat, Step: 0.005, Min: FadeMin, Max: FadeMax},
		{Key: "wind", Label: "Wind", Type: core.ParamTypeFloat, Step: WindStep, Min: WindMin, Max: WindMax},
	}
}

// Parameters exposes the current values for the overlay readout.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Rings",
			Params: []core.Parameter{
				floatParam("expansion", "Expansion speed", w.params.ExpansionSpeed),
				floatParam("fade", "Fade speed", w.params.FadeSpeed),
			},
		},
		{
			Name: "Rain",
			Params: []core.Parameter{
				floatParam("wind", "Wind", w.params.Wind),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				boolParam("paused", "Paused", w.paused),
				boolParam("raining", "Raining", w.raining),
			},
		},
	}}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
