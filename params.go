package vtcore

// maxCsiParams bounds the number of semicolon-separated top-level
// parameters collected for one CSI/DCS sequence (§4.2 "Parameter list
// length is bounded"). Excess parameters are parsed (so the sequence still
// terminates correctly) but dropped.
const maxCsiParams = 16

// maxParamValue is the clamp applied to any single parameter value
// (§4.2 "Parameter overflow is clamped to a safe maximum").
const maxParamValue = 65535

// Params accumulates the semicolon/colon separated integer parameters of a
// CSI or DCS sequence as the parser walks the byte stream one digit at a
// time. An empty field means "default" for the command that reads it.
type Params struct {
	values []int32
	isSet  []bool // false = field was empty (default requested)
	subs   [][]int32

	cur       int32
	curSet    bool
	curGroups []int32 // colon-closed groups seen so far in the current field, in order
}

func (p *Params) reset() {
	p.values = p.values[:0]
	p.isSet = p.isSet[:0]
	p.subs = p.subs[:0]
	p.cur = 0
	p.curSet = false
	p.curGroups = nil
}

// digit folds one ASCII digit into the field currently being accumulated.
func (p *Params) digit(b byte) {
	p.curSet = true
	p.cur = p.cur*10 + int32(b-'0')
	if p.cur > maxParamValue {
		p.cur = maxParamValue
	}
}

// colon closes one group within the current field, e.g. the "4" (and then
// the "2") in "4:2", or each slot of "38:2::r:g:b". The first group closed
// this way becomes the field's own value once the field ends (colon() and
// semicolon()); every later group becomes a sub-parameter.
func (p *Params) colon() {
	p.curGroups = append(p.curGroups, p.cur)
	p.cur = 0
	p.curSet = false
}

// semicolon closes the current top-level field, flushing any accumulated
// sub-parameters, and starts the next one. Parameters beyond maxCsiParams
// are still parsed but not stored.
func (p *Params) semicolon() {
	p.pushField()
}

func (p *Params) pushField() {
	if len(p.values) < maxCsiParams {
		var val int32
		var isSet bool
		var subs []int32

		if len(p.curGroups) > 0 {
			// Colon form: the first group closed is the field's value; every
			// group after it, plus whatever is still being accumulated, is a
			// sub-parameter (e.g. "4:2" -> value 4, subs [2]; "38:2::255:0:0"
			// -> value 38, subs [2, 0, 255, 0, 0]).
			val = p.curGroups[0]
			isSet = true
			subs = append(subs, p.curGroups[1:]...)
			subs = append(subs, p.cur)
		} else if p.curSet {
			val = p.cur
			isSet = true
		}

		p.values = append(p.values, val)
		p.isSet = append(p.isSet, isSet)
		p.subs = append(p.subs, subs)
	}
	p.cur = 0
	p.curSet = false
	p.curGroups = nil
}

// finish flushes the field in progress at dispatch time; call exactly once
// per sequence, after the final byte is recognized.
func (p *Params) finish() {
	p.pushField()
}

// Count returns the number of parsed top-level fields (capped at
// maxCsiParams).
func (p *Params) Count() int {
	return len(p.values)
}

// Get returns the numeric value of field i, or def if the field is absent
// or was left empty (the ECMA-48 "default" convention).
func (p *Params) Get(i int, def int32) int32 {
	if i < 0 || i >= len(p.values) || !p.isSet[i] {
		return def
	}
	return p.values[i]
}

// GetRaw returns the value at i treating an absent field as 0, distinct
// from Get which substitutes the command's own default.
func (p *Params) GetRaw(i int) int32 {
	if i < 0 || i >= len(p.values) {
		return 0
	}
	return p.values[i]
}

// Sub returns the sub-parameters collected after field i's colon, if any.
func (p *Params) Sub(i int) []int32 {
	if i < 0 || i >= len(p.subs) {
		return nil
	}
	return p.subs[i]
}

// All returns every top-level field value, in order.
func (p *Params) All() []int32 {
	return p.values
}

// Snapshot copies the accumulated fields into a Token for delivery to the
// Executor, independent of the Params' own reused backing arrays.
func (p *Params) Snapshot() ([]int32, [][]int32) {
	vals := make([]int32, len(p.values))
	copy(vals, p.values)
	subs := make([][]int32, len(p.subs))
	for i, s := range p.subs {
		if len(s) == 0 {
			continue
		}
		cp := make([]int32, len(s))
		copy(cp, s)
		subs[i] = cp
	}
	return vals, subs
}
