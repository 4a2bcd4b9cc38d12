// Package cfg builds the control-flow graph a decoded RISC-U program
// induces and computes the distance from every instruction to the nearest
// program exit, the precomputed table the ShortestPaths exploration
// strategy ranks states by.
package cfg
