package formula

import "errors"

// ErrDanglingSymbolID marks a node referring to a child id that was never
// built. Formula's builder methods make this unreachable in practice (ids
// only ever come from a prior Add* call on the same Formula), so any caller
// that manufactures a SymbolId out of thin air and trips this has violated
// a program invariant, not guest behavior — it panics rather than
// returning an error.
var ErrDanglingSymbolID = errors.New("formula: child id out of range")
