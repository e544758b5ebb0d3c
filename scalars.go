package prettyfmt

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"
)

const isoLayout = "2006-01-02T15:04:05.000Z"

var stringEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// formatNumber writes f the way JavaScript's Number#toString does: plain
// decimals in [1e-6, 1e21), exponent form outside, and a visible sign on
// negative zero.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0"
		}
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	digits := strings.TrimLeft(exp[1:], "0")
	return mant + "e" + exp[:1] + digits
}

func formatJSONNumber(n json.Number) string {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return string(n)
	}
	return formatNumber(f)
}

func formatTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// funcName returns the bare name of the function held by rv, or "anonymous"
// for closures.
func funcName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "anonymous"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	if isClosureName(name) {
		return "anonymous"
	}
	return name
}

func isClosureName(name string) bool {
	// closures are named func1, func2 and nested ones func1.1
	rest := strings.TrimPrefix(name, "func")
	if rest == "" {
		return false
	}
	for i := 0; i < len(rest); i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return true
}
