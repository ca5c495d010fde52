package ollamawire_test

import (
	"bytes"
	"testing"

	j "github.com/goccy/go-json"

	ollamawire "github.com/reoring/ollamawire"
)

func TestTimeUnit_Symbol(t *testing.T) {
	cases := []struct {
		unit ollamawire.TimeUnit
		want string
	}{
		{ollamawire.Seconds, "s"},
		{ollamawire.Minutes, "m"},
		{ollamawire.Hours, "hr"},
	}
	for _, c := range cases {
		if got := c.unit.Symbol(); got != c.want {
			t.Fatalf("unit %d: expected %q, got %q", c.unit, c.want, got)
		}
	}
}

func TestKeepAlive_Marshal(t *testing.T) {
	cases := []struct {
		name string
		ka   ollamawire.KeepAlive
		want string
	}{
		{"indefinitely", ollamawire.KeepAliveIndefinitely(), `-1`},
		{"unload_on_completion", ollamawire.KeepAliveUnloadOnCompletion(), `0`},
		{"thirty_minutes", ollamawire.KeepAliveUntil(30, ollamawire.Minutes), `"30m"`},
		{"five_hours", ollamawire.KeepAliveUntil(5, ollamawire.Hours), `"5hr"`},
		{"zero_seconds", ollamawire.KeepAliveUntil(0, ollamawire.Seconds), `"0s"`},
	}
	for _, c := range cases {
		b, err := j.Marshal(c.ka)
		if err != nil {
			t.Fatalf("%s: marshal err: %v", c.name, err)
		}
		if string(b) != c.want {
			t.Fatalf("%s: expected %s, got %s", c.name, c.want, b)
		}
	}
}

func TestKeepAlive_Unmarshal_Sentinels(t *testing.T) {
	var ka ollamawire.KeepAlive
	if err := j.Unmarshal([]byte(`-1`), &ka); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if ka != ollamawire.KeepAliveIndefinitely() {
		t.Fatalf("expected indefinite keep-alive")
	}
	if err := j.Unmarshal([]byte(`0`), &ka); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if ka != ollamawire.KeepAliveUnloadOnCompletion() {
		t.Fatalf("expected unload-on-completion")
	}
}

func TestKeepAlive_Unmarshal_BareSeconds(t *testing.T) {
	var ka ollamawire.KeepAlive
	if err := j.Unmarshal([]byte(`90`), &ka); err != nil {
		t.Fatalf("unmarshal err: %v", err)
	}
	if ka != ollamawire.KeepAliveUntil(90, ollamawire.Seconds) {
		t.Fatalf("expected 90s bound, got %+v", ka)
	}
}

func TestKeepAlive_Unmarshal_DurationStrings(t *testing.T) {
	cases := []struct {
		in   string
		want ollamawire.KeepAlive
	}{
		{`"45s"`, ollamawire.KeepAliveUntil(45, ollamawire.Seconds)},
		{`"30m"`, ollamawire.KeepAliveUntil(30, ollamawire.Minutes)},
		{`"2hr"`, ollamawire.KeepAliveUntil(2, ollamawire.Hours)},
	}
	for _, c := range cases {
		var ka ollamawire.KeepAlive
		if err := j.Unmarshal([]byte(c.in), &ka); err != nil {
			t.Fatalf("%s: unmarshal err: %v", c.in, err)
		}
		if ka != c.want {
			t.Fatalf("%s: got %+v", c.in, ka)
		}
	}
}

func TestKeepAlive_Unmarshal_BadInput(t *testing.T) {
	cases := []struct {
		in   string
		code string
	}{
		{`"10d"`, ollamawire.CodeInvalidFormat},
		{`"abc"`, ollamawire.CodeInvalidFormat},
		{`""`, ollamawire.CodeInvalidFormat},
		{`true`, ollamawire.CodeInvalidType},
		{`{"m":1}`, ollamawire.CodeInvalidType},
	}
	for _, c := range cases {
		var ka ollamawire.KeepAlive
		err := j.Unmarshal([]byte(c.in), &ka)
		iss, ok := ollamawire.AsIssues(err)
		if !ok || iss[0].Code != c.code {
			t.Fatalf("%s: expected %s, got: %v", c.in, c.code, err)
		}
	}
}

func TestKeepAlive_Roundtrip(t *testing.T) {
	cases := []ollamawire.KeepAlive{
		ollamawire.KeepAliveIndefinitely(),
		ollamawire.KeepAliveUnloadOnCompletion(),
		ollamawire.KeepAliveUntil(15, ollamawire.Minutes),
		ollamawire.KeepAliveUntil(12, ollamawire.Hours),
	}
	for _, ka := range cases {
		b, err := j.Marshal(ka)
		if err != nil {
			t.Fatalf("marshal err: %v", err)
		}
		var back ollamawire.KeepAlive
		if err := j.Unmarshal(b, &back); err != nil {
			t.Fatalf("unmarshal err: %v", err)
		}
		b2, err := j.Marshal(back)
		if err != nil {
			t.Fatalf("re-marshal err: %v", err)
		}
		if !bytes.Equal(b, b2) {
			t.Fatalf("roundtrip mismatch: %s != %s", b, b2)
		}
	}
}
