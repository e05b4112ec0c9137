package vtcore

import "io"

// ResponseProvider writes terminal responses (DA, DSR, cursor position
// reports, ...) back upstream. Typically the PTY's write end.
type ResponseProvider = io.Writer

// NoopResponse discards all response data.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) { return len(p), nil }

// BellProvider handles BEL (0x07).
type BellProvider interface {
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// TitleProvider handles OSC 0/2 title changes and the XTWINOPS title
// stack (CSI 22/23 t).
type TitleProvider interface {
	SetTitle(title string)
	PushTitle()
	PopTitle()
}

// NoopTitle ignores all title operations.
type NoopTitle struct{}

func (NoopTitle) SetTitle(string) {}
func (NoopTitle) PushTitle()      {}
func (NoopTitle) PopTitle()       {}

// APCProvider handles Application Program Command strings.
type APCProvider interface {
	Receive(data []byte)
}

// NoopAPC ignores all APC sequences.
type NoopAPC struct{}

func (NoopAPC) Receive([]byte) {}

// PMProvider handles Privacy Message strings.
type PMProvider interface {
	Receive(data []byte)
}

// NoopPM ignores all PM sequences.
type NoopPM struct{}

func (NoopPM) Receive([]byte) {}

// SOSProvider handles Start-of-String sequences.
type SOSProvider interface {
	Receive(data []byte)
}

// NoopSOS ignores all SOS sequences.
type NoopSOS struct{}

func (NoopSOS) Receive([]byte) {}

// ClipboardProvider handles OSC 52 clipboard read/write.
type ClipboardProvider interface {
	Read(clipboard byte) string
	Write(clipboard byte, data []byte)
}

// NoopClipboard ignores all clipboard operations.
type NoopClipboard struct{}

func (NoopClipboard) Read(byte) string   { return "" }
func (NoopClipboard) Write(byte, []byte) {}

// RecordingProvider captures raw bytes before parsing, for replay/debug
// tooling built on top of the emulator.
type RecordingProvider interface {
	Record(data []byte)
	Data() []byte
	Clear()
}

// NoopRecording discards all recordings.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

var (
	_ ResponseProvider  = NoopResponse{}
	_ BellProvider      = (*NoopBell)(nil)
	_ TitleProvider     = (*NoopTitle)(nil)
	_ APCProvider       = (*NoopAPC)(nil)
	_ PMProvider        = (*NoopPM)(nil)
	_ SOSProvider       = (*NoopSOS)(nil)
	_ ClipboardProvider = (*NoopClipboard)(nil)
	_ RecordingProvider = (*NoopRecording)(nil)
)
