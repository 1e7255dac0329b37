package slogbridge

// Record is one dynamic log record handed to a Drain. All location
// metadata is carried as runtime values; the bridge derives the call-site
// identity from them on every call and interns the expensive part.
type Record struct {
	Level  Level
	Msg    string
	Target string // logger tag; empty means "use Module"
	Module string
	File   string
	Line   int
	Column int
}

// EffectiveTarget returns the record's tag, falling back to its module
// path when the tag is empty.
func (r Record) EffectiveTarget() string {
	if r.Target == "" {
		return r.Module
	}
	return r.Target
}

// callsiteKey is the derived call-site identity. Two records sharing the
// tuple are the same call site and resolve to one descriptor.
type callsiteKey struct {
	module string
	file   string
	line   int
	column int
	level  Level
	target string
}

func (r Record) key() callsiteKey {
	return callsiteKey{
		module: r.Module,
		file:   r.File,
		line:   r.Line,
		column: r.Column,
		level:  r.Level,
		target: r.EffectiveTarget(),
	}
}
