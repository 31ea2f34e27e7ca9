package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeString denotes free-form parameters such as rule strings.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single configuration value used by a sim.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the effective configuration of a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup returns the value stored under key.
func (s ParameterSnapshot) Lookup(key string) (string, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

// IntParam describes an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param describes a 64-bit integer parameter.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam describes a floating-point parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// StringParam describes a string parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}

// IntFrom reads key from cfg, keeping fallback when the key is missing,
// malformed or below lo.
func IntFrom(cfg map[string]string, key string, fallback, lo int) int {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= lo {
			return parsed
		}
	}
	return fallback
}

// FloatFrom reads key from cfg, keeping fallback when the key is missing,
// malformed or outside [lo, hi].
func FloatFrom(cfg map[string]string, key string, fallback, lo, hi float64) float64 {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= lo && parsed <= hi {
			return parsed
		}
	}
	return fallback
}

// StringFrom reads key from cfg, keeping fallback when it is missing or empty.
func StringFrom(cfg map[string]string, key, fallback string) string {
	if v, ok := cfg[key]; ok && v != "" {
		return v
	}
	return fallback
}

// GridParams is the "World" group shared by every sim.
func GridParams(w, h int) ParameterGroup {
	return ParameterGroup{
		Name: "World",
		Params: []Parameter{
			IntParam("w", "Width", w),
			IntParam("h", "Height", h),
		},
	}
}
