package cpu

import "github.com/born-ml/ndkernel/internal/tensor"

// EwiseBinary computes out[i] = op(a[i], b[i]) over a.Size() elements.
// OpPower is rejected: the exponent must be a scalar.
func (cpu *CPUBackend) EwiseBinary(op BinaryOp, a, b, out *tensor.Buffer) {
	if op == OpPower {
		panic("ewise: power takes a scalar exponent, use ScalarPower")
	}
	ewiseLoop(out.Data(), a.Data(), b.Data(), binaryFunc(op))
}

// ScalarBinary computes out[i] = op(a[i], val) over a.Size() elements.
func (cpu *CPUBackend) ScalarBinary(op BinaryOp, a *tensor.Buffer, val float32, out *tensor.Buffer) {
	scalarLoop(out.Data(), a.Data(), val, binaryFunc(op))
}

// EwiseUnary computes out[i] = op(a[i]) over a.Size() elements.
func (cpu *CPUBackend) EwiseUnary(op UnaryOp, a, out *tensor.Buffer) {
	unaryLoop(out.Data(), a.Data(), unaryFunc(op))
}

// EwiseAdd computes out = a + b.
func (cpu *CPUBackend) EwiseAdd(a, b, out *tensor.Buffer) { cpu.EwiseBinary(OpAdd, a, b, out) }

// ScalarAdd computes out = a + val.
func (cpu *CPUBackend) ScalarAdd(a *tensor.Buffer, val float32, out *tensor.Buffer) {
	cpu.ScalarBinary(OpAdd, a, val, out)
}

// EwiseMul computes out = a * b.
func (cpu *CPUBackend) EwiseMul(a, b, out *tensor.Buffer) { cpu.EwiseBinary(OpMul, a, b, out) }

// ScalarMul computes out = a * val.
func (cpu *CPUBackend) ScalarMul(a *tensor.Buffer, val float32, out *tensor.Buffer) {
	cpu.ScalarBinary(OpMul, a, val, out)
}

// EwiseDiv computes out = a / b.
func (cpu *CPUBackend) EwiseDiv(a, b, out *tensor.Buffer) { cpu.EwiseBinary(OpDiv, a, b, out) }

// ScalarDiv computes out = a / val.
func (cpu *CPUBackend) ScalarDiv(a *tensor.Buffer, val float32, out *tensor.Buffer) {
	cpu.ScalarBinary(OpDiv, a, val, out)
}

// ScalarPower computes out = a ** val.
func (cpu *CPUBackend) ScalarPower(a *tensor.Buffer, val float32, out *tensor.Buffer) {
	cpu.ScalarBinary(OpPower, a, val, out)
}

// EwiseMaximum computes out = max(a, b).
func (cpu *CPUBackend) EwiseMaximum(a, b, out *tensor.Buffer) { cpu.EwiseBinary(OpMaximum, a, b, out) }

// ScalarMaximum computes out = max(a, val).
func (cpu *CPUBackend) ScalarMaximum(a *tensor.Buffer, val float32, out *tensor.Buffer) {
	cpu.ScalarBinary(OpMaximum, a, val, out)
}

// EwiseEq writes 1 where a == b and 0 elsewhere.
func (cpu *CPUBackend) EwiseEq(a, b, out *tensor.Buffer) { cpu.EwiseBinary(OpEq, a, b, out) }

// ScalarEq writes 1 where a == val and 0 elsewhere.
func (cpu *CPUBackend) ScalarEq(a *tensor.Buffer, val float32, out *tensor.Buffer) {
	cpu.ScalarBinary(OpEq, a, val, out)
}

// EwiseGe writes 1 where a >= b and 0 elsewhere.
func (cpu *CPUBackend) EwiseGe(a, b, out *tensor.Buffer) { cpu.EwiseBinary(OpGe, a, b, out) }

// ScalarGe writes 1 where a >= val and 0 elsewhere.
func (cpu *CPUBackend) ScalarGe(a *tensor.Buffer, val float32, out *tensor.Buffer) {
	cpu.ScalarBinary(OpGe, a, val, out)
}

// EwiseLog computes the natural logarithm.
func (cpu *CPUBackend) EwiseLog(a, out *tensor.Buffer) { cpu.EwiseUnary(OpLog, a, out) }

// EwiseExp computes e**a.
func (cpu *CPUBackend) EwiseExp(a, out *tensor.Buffer) { cpu.EwiseUnary(OpExp, a, out) }

// EwiseTanh computes the hyperbolic tangent.
func (cpu *CPUBackend) EwiseTanh(a, out *tensor.Buffer) { cpu.EwiseUnary(OpTanh, a, out) }
