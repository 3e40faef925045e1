package shader

import (
	"fmt"
	"log"
	"strings"
)

// Stage is a programmable pipeline stage.
type Stage int

const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	if s == VertexStage {
		return "vertex"
	}
	return "fragment"
}

// Compiler is the GPU side of program building.
//
// CompileShader and LinkProgram return a handle even when they fail; the
// error then carries the driver's info log.
type Compiler interface {
	CompileShader(stage Stage, source string) (uint32, error)
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
}

// Translator rewrites WebGL2 source into the dialect the driver accepts.
// The returned map holds the translated name of each declared variable.
type Translator interface {
	Translate(stage Stage, source string) (string, map[string]string, error)
}

// Policy decides what a compile, link or translation failure means.
type Policy int

const (
	// Permissive logs the failure and keeps going with whatever handle
	// resulted.
	Permissive Policy = iota
	// Strict returns the failure to the caller.
	Strict
)

func (p Policy) String() string {
	if p == Strict {
		return "strict"
	}
	return "permissive"
}

func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, fmt.Errorf("unknown shader policy %q", s)
}

// Program is a linked GPU program. Linked is false when linking failed under
// the permissive policy; the handle is still owned by the program.
type Program struct {
	Name     string
	Handle   uint32
	Linked   bool
	uniforms map[string]int32
}

// Usable reports whether the program can be drawn with.
func (p *Program) Usable() bool {
	return p != nil && p.Handle != 0 && p.Linked
}

// UniformLocation returns the location of a uniform requested at build time,
// or -1.
func (p *Program) UniformLocation(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

// Builder compiles and links programs.
type Builder struct {
	Compiler   Compiler
	Translator Translator // optional
	Policy     Policy
	Logger     *log.Logger // defaults to the standard logger
}

func (b *Builder) logf(format string, v ...any) {
	if b.Logger != nil {
		b.Logger.Printf(format, v...)
		return
	}
	log.Printf(format, v...)
}

// fail applies the policy. It returns a non-nil error only under Strict.
func (b *Builder) fail(name, step string, err error) error {
	err = fmt.Errorf("%s program: %s failed: %w", name, step, err)
	if b.Policy == Strict {
		return err
	}
	b.logf("Warning: %v", err)
	return nil
}

func (b *Builder) translate(name string, stage Stage, source string, names map[string]string) (string, error) {
	if b.Translator == nil {
		return source, nil
	}
	code, vars, err := b.Translator.Translate(stage, source)
	if err != nil {
		return source, b.fail(name, stage.String()+" translation", err)
	}
	for k, v := range vars {
		names[k] = v
	}
	return code, nil
}

// Build compiles both stages, links them and resolves the requested uniform
// locations. The intermediate shader objects are deleted before returning.
func (b *Builder) Build(name string, src Source) (*Program, error) {
	names := make(map[string]string)

	vertexSource, err := b.translate(name, VertexStage, src.Vertex, names)
	if err != nil {
		return nil, err
	}
	fragmentSource, err := b.translate(name, FragmentStage, src.Fragment, names)
	if err != nil {
		return nil, err
	}

	vertexShader, err := b.Compiler.CompileShader(VertexStage, vertexSource)
	if err != nil {
		if err = b.fail(name, "vertex compile", err); err != nil {
			b.Compiler.DeleteShader(vertexShader)
			return nil, err
		}
	}
	fragmentShader, err := b.Compiler.CompileShader(FragmentStage, fragmentSource)
	if err != nil {
		if err = b.fail(name, "fragment compile", err); err != nil {
			b.Compiler.DeleteShader(vertexShader)
			b.Compiler.DeleteShader(fragmentShader)
			return nil, err
		}
	}

	program, linkErr := b.Compiler.LinkProgram(vertexShader, fragmentShader)
	b.Compiler.DeleteShader(vertexShader)
	b.Compiler.DeleteShader(fragmentShader)
	if linkErr != nil {
		if err = b.fail(name, "link", linkErr); err != nil {
			b.Compiler.DeleteProgram(program)
			return nil, err
		}
	}

	p := &Program{
		Name:     name,
		Handle:   program,
		Linked:   linkErr == nil,
		uniforms: make(map[string]int32, len(src.Uniforms)),
	}
	for _, u := range src.Uniforms {
		mapped := u
		if m, ok := names[u]; ok && m != "" {
			mapped = m
		}
		p.uniforms[u] = b.Compiler.GetUniformLocation(program, mapped)
	}
	return p, nil
}

// Programs holds one built program per kind.
type Programs map[Kind]*Program

// BuildAll builds the three demo programs in the requested dialect.
func (b *Builder) BuildAll(isGLES bool) (Programs, error) {
	progs := make(Programs, len(Kinds))
	for _, k := range Kinds {
		p, err := b.Build(k.String(), GetSource(k, isGLES))
		if err != nil {
			progs.Delete(b.Compiler)
			return nil, err
		}
		progs[k] = p
	}
	return progs, nil
}

// ProgramDeleter releases program handles.
type ProgramDeleter interface {
	DeleteProgram(program uint32)
}

// Delete releases every program handle and empties ps.
func (ps Programs) Delete(c ProgramDeleter) {
	for k, p := range ps {
		if p != nil && p.Handle != 0 {
			c.DeleteProgram(p.Handle)
		}
		delete(ps, k)
	}
}
