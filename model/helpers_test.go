package model

import "github.com/broady/srapi/ir"

// define starts a type registered in reg, keeping test types out of ir.Default.
func define(reg *ir.Registry, name string) *Builder {
	return Define(name).Registry(reg)
}
