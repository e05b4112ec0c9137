// Package vtcore implements a headless ANSI/VT terminal emulator core: a
// byte decoder, a VT500 parser state machine, a command executor, and a
// dual-buffer screen model with scrollback, exposed through a single
// [Emulator] type.
//
// This package has no display of its own. It is meant to sit between a
// PTY (or any byte stream that looks like one) and a renderer: feed it
// bytes, pull a [Snapshot] whenever you need to draw.
//
// # Quick Start
//
//	term, err := vtcore.New(vtcore.WithSize(24, 80))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	term.Feed([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!"))
//	snap := term.Snapshot(vtcore.SnapshotDetailText)
//	fmt.Println(snap.Lines[0].Text) // "Hello World!"
//
// # Architecture
//
// Bytes flow through four stages, each its own file:
//
//   - [Decoder] assembles UTF-8 at the Ground state (decoder.go).
//   - [Parser] runs the Paul Williams VT500 state machine, turning bytes
//     into [Token] values (parser.go, params.go, token.go).
//   - The Executor ([Emulator.dispatch] and its *_csi.go / *_osc.go /
//     *_dcs.go siblings) interprets tokens as commands against the screen.
//   - [Buffer] holds the grid of [Cell] values for the primary and
//     alternate screens; a [ScrollbackProvider] retains rows evicted from
//     the primary buffer's top margin.
//
// # Dual Buffers
//
// An Emulator always has two buffers: primary (with scrollback) and
// alternate (without). Full-screen programs (vim, less, htop) switch to
// the alternate buffer via `CSI ?1049h` and back via `CSI ?1049l`;
// switching restores the primary buffer exactly as it was left.
//
// # Styling
//
// [StyleAttr] carries everything SGR can set: two colors plus an
// underline color, and a [StyleFlags] bitmask for bold/italic/etc. A
// [Color] is a small sum type — default, indexed, or true-color — resolved
// against a [Palette] only when a renderer asks for concrete RGB.
//
// # Scrollback
//
// Rows evicted from the primary buffer accumulate in a [RingScrollback],
// the bounded in-memory [ScrollbackProvider] that [New] installs; the
// Emulator has no option for substituting another provider. A standalone
// [Buffer] can use any implementation of the interface through
// [Buffer.SetScrollbackProvider].
//
// # Providers
//
// Side effects the core can't decide on its own — ringing a bell, setting
// a window title, reading the system clipboard — are routed through small
// provider interfaces in providers.go, all with no-op defaults so an
// Emulator built with zero options is fully functional.
//
// # Input Encoder
//
// [Emulator.EncodeKey] and [Emulator.EncodePaste] are the inverse
// direction: translating a logical key press or a pasted string into the
// bytes a host program expects, honoring DECCKM and bracketed-paste mode.
//
// # Concurrency
//
// An Emulator may be fed from one goroutine while a renderer polls
// [Emulator.Snapshot] from another; both hold the Emulator's own lock for
// their duration, so a snapshot never observes a partially-applied Feed.
package vtcore
