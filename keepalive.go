package ollamawire

import (
	"strconv"

	j "github.com/goccy/go-json"
)

// TimeUnit is the granularity of a bounded keep-alive duration.
type TimeUnit int

const (
	Seconds TimeUnit = iota
	Minutes
	Hours
)

// Symbol returns the wire suffix of the unit: "s", "m" or "hr".
func (u TimeUnit) Symbol() string {
	switch u {
	case Minutes:
		return "m"
	case Hours:
		return "hr"
	default:
		return "s"
	}
}

type keepAliveKind int

const (
	keepAliveIndefinite keepAliveKind = iota
	keepAliveUnload
	keepAliveUntil
)

// KeepAlive controls how long the model stays loaded in memory after the
// request completes; the service default is to unload after 5 minutes of
// inactivity. The zero value keeps the model loaded indefinitely. Immutable
// once built.
type KeepAlive struct {
	kind keepAliveKind
	time uint64
	unit TimeUnit
}

// KeepAliveIndefinitely keeps the model resident until something else evicts
// it.
func KeepAliveIndefinitely() KeepAlive { return KeepAlive{kind: keepAliveIndefinite} }

// KeepAliveUnloadOnCompletion unloads the model as soon as the request
// finishes.
func KeepAliveUnloadOnCompletion() KeepAlive { return KeepAlive{kind: keepAliveUnload} }

// KeepAliveUntil keeps the model loaded for the given span, e.g.
// KeepAliveUntil(30, Minutes) encodes as "30m". The span is not bounded here;
// validation is the service's business.
func KeepAliveUntil(time uint64, unit TimeUnit) KeepAlive {
	return KeepAlive{kind: keepAliveUntil, time: time, unit: unit}
}

// MarshalJSON encodes the service convention: -1 never unloads, 0 unloads
// immediately, and "<n><unit>" bounds residency to a duration.
func (k KeepAlive) MarshalJSON() ([]byte, error) {
	switch k.kind {
	case keepAliveUnload:
		return j.Marshal(0)
	case keepAliveUntil:
		return j.Marshal(strconv.FormatUint(k.time, 10) + k.unit.Symbol())
	default:
		return j.Marshal(-1)
	}
}

// UnmarshalJSON reads the same convention back: negative integers map to the
// indefinite variant, zero to unload-on-completion, positive integers to a
// bound in seconds, and "<integer><unit>" strings to the matching bound.
func (k *KeepAlive) UnmarshalJSON(data []byte) error {
	var n int64
	if err := j.Unmarshal(data, &n); err == nil {
		switch {
		case n < 0:
			*k = KeepAliveIndefinitely()
		case n == 0:
			*k = KeepAliveUnloadOnCompletion()
		default:
			*k = KeepAliveUntil(uint64(n), Seconds)
		}
		return nil
	}
	var s string
	if err := j.Unmarshal(data, &s); err != nil {
		return Issues{{Path: "/", Code: CodeInvalidType, Message: "keep_alive must be an integer or a duration string"}}
	}
	ka, err := parseKeepAlive(s)
	if err != nil {
		return err
	}
	*k = ka
	return nil
}

func parseKeepAlive(s string) (KeepAlive, error) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return KeepAlive{}, Issues{{Path: "/", Code: CodeInvalidFormat, Message: "keep_alive duration must match <integer><unit>: " + strconv.Quote(s)}}
	}
	t, err := strconv.ParseUint(s[:i], 10, 64)
	if err != nil {
		return KeepAlive{}, Issues{{Path: "/", Code: CodeInvalidFormat, Message: "keep_alive time out of range: " + strconv.Quote(s), Cause: err}}
	}
	switch s[i:] {
	case "s":
		return KeepAliveUntil(t, Seconds), nil
	case "m":
		return KeepAliveUntil(t, Minutes), nil
	case "hr":
		return KeepAliveUntil(t, Hours), nil
	}
	return KeepAlive{}, Issues{{Path: "/", Code: CodeInvalidFormat, Message: "unknown keep_alive unit: " + strconv.Quote(s)}}
}
