package ast

// Scope is a stack of lexical frames mapping names to declarations and, once
// a backend has run over them, opaque backend-owned handles (codegen values,
// interpreter slots, whatever the consumer wants to cache per declaration).
// Lookups search innermost frame first, the same linked-frame-stack
// technique as yaegi's interp.Interpreter.scopes / frameless scope chaining,
// adapted here to a single explicit slice rather than a pointer-linked tree
// since Forge's scopes nest strictly lexically with no goroutine sharing.
//
// Scope never rejects a redeclaration in the same frame; catching that is
// the caller's responsibility, since "is this a duplicate" depends on the
// caller's notion of identity, not Scope's.
type Scope struct {
	frames []*frame
}

type frame struct {
	decls    map[string]*Node
	backends map[string]any
}

// NewScope returns an empty scope with one root frame already pushed.
func NewScope() *Scope {
	s := &Scope{}
	s.PushFrame()
	return s
}

// PushFrame opens a new innermost lexical frame.
func (s *Scope) PushFrame() {
	s.frames = append(s.frames, &frame{decls: make(map[string]*Node)})
}

// PopFrame discards the innermost lexical frame. The root frame NewScope
// installs can itself be popped; popping a scope with no frames left
// panics.
func (s *Scope) PopFrame() {
	if len(s.frames) == 0 {
		panic("ast: Scope.PopFrame on empty scope")
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth reports the number of open frames.
func (s *Scope) Depth() int { return len(s.frames) }

// AddDeclaration binds name to decl in the innermost frame, overwriting any
// existing binding for name in that same frame.
func (s *Scope) AddDeclaration(name string, decl *Node) {
	top := s.frames[len(s.frames)-1]
	top.decls[name] = decl
}

// GetDeclaration searches frames innermost-first for name.
func (s *Scope) GetDeclaration(name string) (*Node, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if d, ok := s.frames[i].decls[name]; ok {
			return d, true
		}
	}
	return nil, false
}

// GetBackendHandle searches frames innermost-first for a backend handle
// attached to name.
func (s *Scope) GetBackendHandle(name string) (any, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if f := s.frames[i]; f.backends != nil {
			if h, ok := f.backends[name]; ok {
				return h, true
			}
		}
	}
	return nil, false
}

// SetBackendHandle attaches a backend-owned handle to name in the frame that
// currently holds name's declaration. It is a no-op if name is not bound in
// any open frame.
func (s *Scope) SetBackendHandle(name string, handle any) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		f := s.frames[i]
		if _, ok := f.decls[name]; ok {
			if f.backends == nil {
				f.backends = make(map[string]any)
			}
			f.backends[name] = handle
			return
		}
	}
}

// LoadDeclarationBlock binds every named declaration directly under block
// (declaration-union, declaration-structure, declaration-interface, or
// declaration-block) into the innermost frame. A declaration-assignment,
// which has no name slot of its own, is bound under its property's name;
// children with no name at all are skipped.
func (s *Scope) LoadDeclarationBlock(block *Node) {
	if block == nil {
		return
	}
	for _, d := range block.children {
		if d == nil {
			continue
		}
		name := d.name
		if d.kind == KindDeclAssignment && d.left != nil {
			name = d.left.name
		}
		if name == "" {
			continue
		}
		s.AddDeclaration(name, d)
	}
}
