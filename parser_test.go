package vtcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedAll(p *Parser, data string) []Token {
	var toks []Token
	for i := 0; i < len(data); i++ {
		p.Step(data[i], func(tok Token) { toks = append(toks, tok) })
	}
	return toks
}

func TestParserPrintableASCII(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "Hi")

	require.Len(t, toks, 2)
	assert.Equal(t, TokenPrintable, toks[0].Kind)
	assert.Equal(t, 'H', toks[0].Codepoint)
	assert.Equal(t, 'i', toks[1].Codepoint)
	assert.Equal(t, StateGround, p.state)
}

func TestParserC0InGround(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\r")

	require.Len(t, toks, 1)
	assert.Equal(t, TokenC0Control, toks[0].Kind)
	assert.EqualValues(t, '\r', toks[0].Control)
}

func TestParserCsiFinal(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b[31m")

	require.Len(t, toks, 1)
	tok := toks[0]
	assert.Equal(t, TokenCsiFinal, tok.Kind)
	assert.EqualValues(t, 'm', tok.Final)
	require.Len(t, tok.Params, 1)
	assert.EqualValues(t, 31, tok.Params[0])
	assert.Equal(t, StateGround, p.state)
}

func TestParserCsiPrivateMarker(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b[?25h")

	require.Len(t, toks, 1)
	tok := toks[0]
	assert.EqualValues(t, '?', tok.Private)
	assert.EqualValues(t, 'h', tok.Final)
	require.Len(t, tok.Params, 1)
	assert.EqualValues(t, 25, tok.Params[0])
}

func TestParserCsiMultipleParamsAndSub(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b[4:2;38:2::255:0:0m")

	require.Len(t, toks, 1)
	tok := toks[0]
	require.Len(t, tok.Params, 2)
	assert.EqualValues(t, 4, tok.Params[0], "the first colon group is the field's own value")
	require.Len(t, tok.SubParams[0], 1)
	assert.EqualValues(t, 2, tok.SubParams[0][0])

	assert.EqualValues(t, 38, tok.Params[1])
	assert.Equal(t, []int32{2, 0, 255, 0, 0}, tok.SubParams[1])
}

func TestParserOscTerminatedByST(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b]0;my title\x1b\\")

	require.Len(t, toks, 1)
	require.Equal(t, TokenOscData, toks[0].Kind)
	assert.EqualValues(t, 0, toks[0].ID)
	assert.Equal(t, "my title", string(toks[0].Payload))
}

func TestParserOscTerminatedByBEL(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b]2;window\x07")

	require.Len(t, toks, 1)
	require.Equal(t, TokenOscData, toks[0].Kind)
	assert.Equal(t, "window", string(toks[0].Payload))
}

func TestParserOscNoNumericPrefix(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b]not-a-number\x1b\\")

	require.Len(t, toks, 1)
	assert.EqualValues(t, -1, toks[0].ID, "no numeric prefix means id -1")
	assert.Equal(t, "not-a-number", string(toks[0].Payload))
}

func TestParserDcsPassthrough(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1bP1$rpayload\x1b\\")

	require.Len(t, toks, 1)
	require.Equal(t, TokenDcsData, toks[0].Kind)
	assert.EqualValues(t, 'r', toks[0].Final)
}

func TestParserSosPmApcRoutesByControl(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b^hello\x1b\\")

	require.Len(t, toks, 1)
	require.Equal(t, TokenSosPmApcData, toks[0].Kind)
	assert.EqualValues(t, introPM, toks[0].Control)
	assert.Equal(t, "hello", string(toks[0].Payload))
}

func TestParserCANAbortsSequence(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1b[31\x18m")

	// CAN resets the parser; the trailing "m" is then a bare printable.
	require.Len(t, toks, 1)
	assert.Equal(t, TokenPrintable, toks[0].Kind)
	assert.Equal(t, 'm', toks[0].Codepoint)
	assert.Equal(t, StateGround, p.state)
}

func TestParserMalformedEscapeRecoversToGround(t *testing.T) {
	p := NewParser(0, 0)
	// C0 controls seen mid-CSI are executed in place without aborting the
	// sequence; the trailing final byte still dispatches normally.
	feedAll(p, "\x1b[\x00\x00m")

	assert.Equal(t, StateGround, p.state)
}

func TestParserOscTruncatesAtLimit(t *testing.T) {
	p := NewParser(4, 0)
	toks := feedAll(p, "\x1b]0;abcdefgh\x1b\\")

	require.Len(t, toks, 1)
	// The 4-byte cap counts the raw string, "0;" id prefix included.
	assert.Len(t, toks[0].Payload, 2)
}

func TestParserEscFinalOutsideCSI(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "\x1bc") // RIS

	require.Len(t, toks, 1)
	assert.Equal(t, TokenEscFinal, toks[0].Kind)
	assert.EqualValues(t, 'c', toks[0].Final)
}

func TestParserUTF8ThroughGround(t *testing.T) {
	p := NewParser(0, 0)
	toks := feedAll(p, "中")

	require.Len(t, toks, 1)
	assert.Equal(t, TokenPrintable, toks[0].Kind)
	assert.Equal(t, '中', toks[0].Codepoint)
	assert.Equal(t, 2, toks[0].Width)
}
