// Copyright 2018 GRAIL, Inc. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Type identifies the storage kind of a column.
type Type uint8

const (
	// Byte columns store int8.
	Byte Type = iota
	// Short columns store int16.
	Short
	// Int columns store int32.
	Int
	// Long columns store int64.
	Long
	// Float columns store float32.
	Float
	// Double columns store float64.
	Double
	// String columns store string.
	String
	// Boolean columns store one bit per row.
	Boolean
	// EnumType columns store ordinals of an Enum.
	EnumType
)

var typeNames = [...]string{"Byte", "Short", "Int", "Long", "Float", "Double", "String", "Boolean", "Enum"}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", t)
}

// Numeric returns whether columns of type t support GetAsDouble.
func (t Type) Numeric() bool {
	return t <= Double
}

// builtinType resolves a type name written in a frame header.
func builtinType(name string) (Type, bool) {
	for t, n := range typeNames[:EnumType] {
		if n == name {
			return Type(t), true
		}
	}
	return 0, false
}

// Enum describes an enumerated type: a type name, written in frame headers,
// and the ordered value names.  Values are stored as ordinals into Names.
type Enum struct {
	TypeName string
	Names    []string
	ordinals map[string]int32
}

// NewEnum returns an Enum.  Names must be distinct, and typeName must not
// shadow a builtin type name.
func NewEnum(typeName string, names ...string) (*Enum, error) {
	if _, ok := builtinType(typeName); ok || typeName == "" {
		return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.NewEnum: invalid type name %q", typeName))
	}
	e := &Enum{TypeName: typeName, Names: names, ordinals: make(map[string]int32, len(names))}
	for i, name := range names {
		if _, ok := e.ordinals[name]; ok {
			return nil, errors.E(errors.Precondition, fmt.Sprintf("frame.NewEnum %s: duplicate name %q", typeName, name))
		}
		e.ordinals[name] = int32(i)
	}
	return e, nil
}

// Ordinal returns the ordinal of name.
func (e *Enum) Ordinal(name string) (int32, bool) {
	o, ok := e.ordinals[name]
	return o, ok
}

// Name returns the name of ordinal o, or "" for the missing value.
func (e *Enum) Name(o int32) string {
	if o < 0 {
		return ""
	}
	return e.Names[o]
}

// EnumRegistry maps type names to enums, so that enum columns can be
// reconstructed when reading a frame.
type EnumRegistry map[string]*Enum

// NewEnumRegistry returns a registry holding enums.
func NewEnumRegistry(enums ...*Enum) EnumRegistry {
	r := make(EnumRegistry, len(enums))
	for _, e := range enums {
		r[e.TypeName] = e
	}
	return r
}

// ColumnSpec describes a column to be built: its label, its type and, for
// EnumType columns, its enum.
type ColumnSpec struct {
	Label string
	Type  Type
	Enum  *Enum
}

// TypeName returns the name written for the column in frame headers.
func (s ColumnSpec) TypeName() string {
	if s.Type == EnumType {
		return s.Enum.TypeName
	}
	return s.Type.String()
}
