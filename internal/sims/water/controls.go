package water

import (
	"math"
	"strconv"

	"ripple-tank/internal/core"
)

// Handle applies one input event. Clicks splash at the event's cell; keys
// map to the controller operations. Unrecognized keys are ignored.
func (w *World) Handle(ev core.Event) {
	switch ev.Kind {
	case core.EventClick:
		w.Splash(ev.X, ev.Y, w.params.SplashMagnitude)
	case core.EventKey:
		switch ev.Key {
		case core.KeyPause:
			w.TogglePause()
		case core.KeyRain:
			w.ToggleRain()
		case core.KeyClear:
			w.Clear()
		case core.KeySpeedUp:
			w.nudgeSpeed(WaveSpeedStep)
		case core.KeySpeedDown:
			w.nudgeSpeed(-WaveSpeedStep)
		case core.KeyRainUp:
			w.nudgeRain(RainIntensityStep)
		case core.KeyRainDown:
			w.nudgeRain(-RainIntensityStep)
		case core.KeyWindRight:
			w.nudgeWind(WindStep)
		case core.KeyWindLeft:
			w.nudgeWind(-WindStep)
		case core.KeyWindCalm:
			w.params.Wind = 0
		}
	}
}

// Nudges clamp at the range ends rather than rejecting, so holding an arrow
// key parks the value at its bound.

func (w *World) nudgeSpeed(delta float64) {
	w.params.WaveSpeed = clampFloat(w.params.WaveSpeed+delta, WaveSpeedMin, WaveSpeedMax)
}

func (w *World) nudgeRain(delta float64) {
	w.params.RainIntensity = clampFloat(w.params.RainIntensity+delta, RainIntensityMin, RainIntensityMax)
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
// range are rejected and the previous value retained; the return value
// reports whether the update was applied.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	switch key {
	case "speed":
		if value < WaveSpeedMin || value > WaveSpeedMax {
			return false
		}
		w.params.WaveSpeed = value
	case "damping":
		if value < 0 || value >= 1 {
			return false
		}
		w.params.Damping = value
	case "rain":
		if value < RainIntensityMin || value > RainIntensityMax {
			return false
		}
		w.params.RainIntensity = value
	case "wind":
		if value < WindMin || value > WindMax {
			return false
		}
		w.params.Wind = value
	case "splash":
		if value <= 0 {
			return false
		}
		w.params.SplashMagnitude = value
	default:
		return false
	}
	return true
}

// ParameterControls lists the values adjustable from the front ends.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "speed", Label: "Wave speed", Type: core.ParamTypeFloat, Step: WaveSpeedStep, Min: WaveSpeedMin, Max: WaveSpeedMax},
		{Key: "rain", Label: "Rain intensity", Type: core.ParamTypeFloat, Step: RainIntensityStep, Min: RainIntensityMin, Max: RainIntensityMax},
		{Key: "wind", Label: "Wind", Type: core.ParamTypeFloat, Step: WindStep, Min: WindMin, Max: WindMax},
	}
}

// Parameters exposes the current values for the overlay readout.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Waves",
			Params: []core.Parameter{
				floatParam("speed", "Wave speed", w.params.WaveSpeed),
				floatParam("damping", "Damping", w.params.Damping),
			},
		},
		{
			Name: "Rain",
			Params: []core.Parameter{
				floatParam("rain", "Rain intensity", w.params.RainIntensity),
				floatParam("wind", "Wind", w.params.Wind),
				floatParam("splash", "Splash magnitude", w.params.SplashMagnitude),
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
