package cpu

import (
	"fmt"
	"math"
)

// BinaryOp selects a two-operand elementwise operation.
type BinaryOp int

// Binary operations. OpPower is only offered with a scalar exponent.
const (
	OpAdd BinaryOp = iota
	OpMul
	OpDiv
	OpPower
	OpMaximum
	OpEq
	OpGe
	numBinaryOps
)

// UnaryOp selects a one-operand elementwise operation.
type UnaryOp int

// Unary operations.
const (
	OpLog UnaryOp = iota
	OpExp
	OpTanh
	numUnaryOps
)

var binaryNames = [numBinaryOps]string{"add", "mul", "div", "power", "maximum", "eq", "ge"}

var unaryNames = [numUnaryOps]string{"log", "exp", "tanh"}

// String returns the operation name.
func (op BinaryOp) String() string {
	if op < 0 || op >= numBinaryOps {
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
	return binaryNames[op]
}

// String returns the operation name.
func (op UnaryOp) String() string {
	if op < 0 || op >= numUnaryOps {
		return fmt.Sprintf("UnaryOp(%d)", int(op))
	}
	return unaryNames[op]
}

// binaryFuncs maps each tag to its scalar kernel. All of them are total:
// division by zero and domain errors produce IEEE-754 Inf/NaN.
var binaryFuncs = [numBinaryOps]func(x, y float32) float32{
	OpAdd:     func(x, y float32) float32 { return x + y },
	OpMul:     func(x, y float32) float32 { return x * y },
	OpDiv:     func(x, y float32) float32 { return x / y },
	OpPower:   powFloat32,
	OpMaximum: maxFloat32,
	OpEq:      func(x, y float32) float32 { return boolFloat32(x == y) },
	OpGe:      func(x, y float32) float32 { return boolFloat32(x >= y) },
}

var unaryFuncs = [numUnaryOps]func(x float32) float32{
	OpLog:  func(x float32) float32 { return float32(math.Log(float64(x))) },
	OpExp:  func(x float32) float32 { return float32(math.Exp(float64(x))) },
	OpTanh: func(x float32) float32 { return float32(math.Tanh(float64(x))) },
}

func powFloat32(x, y float32) float32 {
	return float32(math.Pow(float64(x), float64(y)))
}

// maxFloat32 returns y only when x < y, so a NaN in either operand yields x.
// The builtin max propagates NaN and would differ.
func maxFloat32(x, y float32) float32 {
	if x < y {
		return y
	}
	return x
}

func boolFloat32(b bool) float32 {
	if b {
		return 1
	}
	return 0
}

func binaryFunc(op BinaryOp) func(x, y float32) float32 {
	if op < 0 || op >= numBinaryOps {
		panic(fmt.Sprintf("ewise: unsupported op %v", op))
	}
	return binaryFuncs[op]
}

func unaryFunc(op UnaryOp) func(x float32) float32 {
	if op < 0 || op >= numUnaryOps {
		panic(fmt.Sprintf("ewise: unsupported op %v", op))
	}
	return unaryFuncs[op]
}

// ewiseLoop computes dst[i] = f(a[i], b[i]) for i in [0, len(a)).
func ewiseLoop(dst, a, b []float32, f func(x, y float32) float32) {
	b = b[:len(a)]
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = f(a[i], b[i])
	}
}

// scalarLoop computes dst[i] = f(a[i], val) for i in [0, len(a)).
func scalarLoop(dst, a []float32, val float32, f func(x, y float32) float32) {
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = f(a[i], val)
	}
}

// unaryLoop computes dst[i] = f(a[i]) for i in [0, len(a)).
func unaryLoop(dst, a []float32, f func(x float32) float32) {
	dst = dst[:len(a)]
	for i := range a {
		dst[i] = f(a[i])
	}
}
