package sema

import "maps"

// VarInfo describes one name visible inside a function body.
type VarInfo struct {
	Global  bool
	Mutable bool
}

// Scope maps variable names to their metadata. Nested blocks work on a
// clone, so bindings never leak outwards.
type Scope map[string]VarInfo

func (s Scope) Clone() Scope {
	if s == nil {
		return Scope{}
	}
	return maps.Clone(s)
}

// Lookup returns the binding for name.
func (s Scope) Lookup(name string) (VarInfo, bool) {
	info, ok := s[name]
	return info, ok
}

// declaredLocally reports whether name is bound by a local (non-global) binding.
func (s Scope) declaredLocally(name string) bool {
	info, ok := s[name]
	return ok && !info.Global
}

// globalScope binds every surviving global const, all immutable.
func globalScope(p *Program) Scope {
	s := make(Scope, len(p.Vars))
	for name := range p.Vars {
		s[name] = VarInfo{Global: true}
	}
	return s
}
