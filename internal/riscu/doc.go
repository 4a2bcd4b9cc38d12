// Package riscu implements RISC-U, the fixed RISC-V subset RISC-U (spec
// §1, §4.F) a RISC-U-targeting compiler ever emits: lui, addi, add, sub,
// mul, divu, remu, sltu, ld, sd, beq, jal, jalr and ecall. It owns
// InterpreterState — registers, linear memory, program counter, and the
// symbolic overlay mapping a register or memory address to a formula
// SymbolId when that location holds a symbolic rather than concrete value —
// and Step, which decodes and executes exactly one instruction, building
// formula nodes instead of values wherever an operand is symbolic.
package riscu
