package glload

import "strings"

// envDebug seeds the default Config: a comma separated list of
// errors, calls, abort, strict and keepxhandler.
const envDebug = "GLLOAD_DEBUG"

// Config controls the diagnostics wrapped around every entry point.
type Config struct {
	// LogErrors runs the family's error query after every call.
	LogErrors bool

	// LogCalls logs each call with its arguments and return value.
	LogCalls bool

	// AbortOnMissing panics when an entry point cannot be resolved instead
	// of turning the call into a no-op that returns zero.
	AbortOnMissing bool

	// RequireExplicitBind panics on the first call if BindOwner was never
	// called, instead of binding the calling thread implicitly.
	RequireExplicitBind bool

	// KeepXErrorHandler leaves the process-wide Xlib error handler alone.
	// GLX error checks then only see errors the application's own handler
	// does not swallow.
	KeepXErrorHandler bool
}

type settings struct {
	cfg    Config
	frozen bool
}

// ParseDebug reads a GLLOAD_DEBUG style list into a Config. Unknown
// tokens are ignored.
func ParseDebug(v string) Config {
	var c Config
	for _, tok := range strings.Split(v, ",") {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "errors":
			c.LogErrors = true
		case "calls":
			c.LogCalls = true
		case "abort":
			c.AbortOnMissing = true
		case "strict":
			c.RequireExplicitBind = true
		case "keepxhandler":
			c.KeepXErrorHandler = true
		}
	}
	return c
}

// config returns the settings in effect and freezes them.
func (l *loader) config() Config {
	for {
		cur := l.settings.Load()
		if cur == nil {
			l.settings.CompareAndSwap(nil, &settings{cfg: ParseDebug(l.sys.Getenv(envDebug))})
			continue
		}
		if cur.frozen {
			return cur.cfg
		}
		if l.settings.CompareAndSwap(cur, &settings{cfg: cur.cfg, frozen: true}) {
			return cur.cfg
		}
	}
}

func (l *loader) configure(c Config) bool {
	for {
		cur := l.settings.Load()
		if cur != nil && cur.frozen {
			return false
		}
		if l.settings.CompareAndSwap(cur, &settings{cfg: c}) {
			return true
		}
	}
}

// Configure replaces the configuration, including anything GLLOAD_DEBUG
// set. It has no effect once an entry point has been called and then
// returns false.
func Configure(c Config) bool {
	return std.configure(c)
}
