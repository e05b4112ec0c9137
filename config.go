package vtcore

import "github.com/rs/zerolog"

// Config holds everything an Emulator needs at construction time. Callers
// never build one directly; use New with Option values (§6 Configuration).
type Config struct {
	rows, cols         int
	scrollbackCapacity int
	oscLimit, dcsLimit int

	diagnostics zerolog.Logger

	bell       BellProvider
	title      TitleProvider
	clipboard  ClipboardProvider
	apc        APCProvider
	pm         PMProvider
	sos        SOSProvider
	response   ResponseProvider
	recording  RecordingProvider
}

// Option configures an Emulator at construction time.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		rows:               24,
		cols:               80,
		scrollbackCapacity: 1000,
		oscLimit:           4096,
		dcsLimit:           65536,
		diagnostics:        zerolog.Nop(),
		bell:               NoopBell{},
		title:              NoopTitle{},
		clipboard:          NoopClipboard{},
		apc:                NoopAPC{},
		pm:                 NoopPM{},
		sos:                NoopSOS{},
		response:           NoopResponse{},
		recording:          NoopRecording{},
	}
}

// WithSize sets the initial grid dimensions. Default 24x80.
func WithSize(rows, cols int) Option {
	return func(c *Config) { c.rows, c.cols = rows, cols }
}

// WithScrollback sets the scrollback capacity in lines. 0 disables
// scrollback. Default 1000.
func WithScrollback(capacity int) Option {
	return func(c *Config) { c.scrollbackCapacity = capacity }
}

// WithDiagnostics attaches a structured logger for the opt-in diagnostic
// channel (§7). The logger is stored on the Emulator; no parser or
// executor path writes events to it. The default is a no-op logger.
func WithDiagnostics(logger zerolog.Logger) Option {
	return func(c *Config) { c.diagnostics = logger }
}

// WithBellProvider installs a handler for BEL. Default ignores bells.
func WithBellProvider(b BellProvider) Option {
	return func(c *Config) { c.bell = b }
}

// WithTitleProvider installs a handler for OSC 0/2 and the title stack.
func WithTitleProvider(t TitleProvider) Option {
	return func(c *Config) { c.title = t }
}

// WithClipboardProvider installs a handler for OSC 52.
func WithClipboardProvider(cl ClipboardProvider) Option {
	return func(c *Config) { c.clipboard = cl }
}

// WithAPCProvider installs a handler for Application Program Command strings.
func WithAPCProvider(a APCProvider) Option {
	return func(c *Config) { c.apc = a }
}

// WithPMProvider installs a handler for Privacy Message strings.
func WithPMProvider(p PMProvider) Option {
	return func(c *Config) { c.pm = p }
}

// WithSOSProvider installs a handler for Start-of-String strings.
func WithSOSProvider(s SOSProvider) Option {
	return func(c *Config) { c.sos = s }
}

// WithResponseWriter installs the sink for terminal-initiated responses
// (DA, DSR, cursor position reports). Default discards them.
func WithResponseWriter(w ResponseProvider) Option {
	return func(c *Config) { c.response = w }
}

// WithRecordingProvider installs a sink that observes every raw byte fed
// to the emulator, for replay/debug tooling.
func WithRecordingProvider(r RecordingProvider) Option {
	return func(c *Config) { c.recording = r }
}

// WithOSCLimit overrides the OSC payload truncation threshold (§4.1).
func WithOSCLimit(n int) Option {
	return func(c *Config) { c.oscLimit = n }
}

// WithDCSLimit overrides the DCS payload truncation threshold (§4.1).
func WithDCSLimit(n int) Option {
	return func(c *Config) { c.dcsLimit = n }
}
