package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rendau/apic/apicTypes"
)

// parseParams turns key=value arguments into params. Unless asStrings is
// set, values that look like integers, floats or booleans keep that type.
func parseParams(args []string, asStrings bool) (apicTypes.Params, error) {
	if len(args) == 0 {
		return nil, nil
	}

	res := make(apicTypes.Params, len(args))

	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("bad parameter %q, want key=value", arg)
		}

		res[k] = parseValue(v, asStrings)
	}

	return res, nil
}

func parseValue(v string, asStrings bool) apicTypes.Value {
	if asStrings {
		return apicTypes.String(v)
	}

	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return apicTypes.Int(i)
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return apicTypes.Float(f)
	}
	if v == "true" || v == "false" {
		return apicTypes.Bool(v == "true")
	}

	return apicTypes.String(v)
}
