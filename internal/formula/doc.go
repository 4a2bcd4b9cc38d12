// Package formula implements the symbolic bit-vector formula IR: a directed
// acyclic graph of Input/Constant/Unary/Binary nodes with dense, stable
// SymbolIds, plus the visitor protocol used to traverse it exactly once per
// node even when the DAG shares subtrees.
package formula
