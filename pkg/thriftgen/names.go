package thriftgen

import (
	"go/token"
	"strings"
)

func capitalize(s string) string {
	return strings.ToUpper(s[:1]) + s[1:]
}

func private(s string) string {
	return strings.ToLower(s[:1]) + s[1:]
}

// exported turns get_struct and getStruct into GetStruct.
func exported(s string) string {
	var sb strings.Builder

	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		sb.WriteString(capitalize(part))
	}

	if sb.Len() == 0 {
		return "X" + s
	}

	return sb.String()
}

// enumConst names an enum value: Operation + DIVIDE_BY_ZERO is
// OperationDivideByZero.
func enumConst(enum, value string) string {
	var sb strings.Builder
	sb.WriteString(exported(enum))

	for _, part := range strings.Split(value, "_") {
		if part == "" {
			continue
		}

		if strings.ToUpper(part) == part {
			part = strings.ToLower(part)
		}

		sb.WriteString(capitalize(part))
	}

	return sb.String()
}

// Methods every generated struct carries.
var structMethods = map[string]bool{
	"Read":     true,
	"Write":    true,
	"String":   true,
	"Error":    true,
	"Validate": true,
}

func fieldName(s string) string {
	n := exported(s)
	if structMethods[n] {
		return n + "_"
	}
	return n
}

// Identifiers that generated method bodies use for their own purposes.
var reservedLocals = map[string]bool{
	"ctx": true, "c": true, "p": true, "seqID": true, "out": true, "oprot": true,
	"iprot": true, "args": true, "result": true, "data": true, "name": true,
	"mtype": true, "err": true, "x": true, "ret": true, "handler": true,

	"context": true, "errors": true, "fmt": true, "thrift": true, "thriftrt": true,

	"bool": true, "byte": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"float64": true, "string": true, "error": true, "any": true, "nil": true,
	"true": true, "false": true, "len": true, "make": true, "append": true, "new": true,
}

func paramName(s string) string {
	n := private(exported(s))
	if token.IsKeyword(n) || reservedLocals[n] {
		return n + "_"
	}
	return n
}

// Names the embedded runtime client and the processor already use.
var reservedMethods = map[string]bool{
	"Client":     true,
	"Connection": true,
	"NextSeqID":  true,
	"LastSeqID":  true,
	"Process":    true,
}

func methodName(s string) string {
	n := exported(s)
	if reservedMethods[n] {
		return n + "_"
	}
	return n
}
