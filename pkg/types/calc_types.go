package types

// Operands holds the two integer inputs of an arithmetic operation.
type Operands struct {
	A int `json:"a"` // First operand
	B int `json:"b"` // Second operand (the divisor for divide)
}

// OperationResponse is the result of an integer operation (add, subtract,
// multiply).
type OperationResponse struct {
	Status    string   `json:"status"`            // Always "success"; the operations have no failure modes
	Operation string   `json:"operation"`         // Name of the operation performed
	Operands  Operands `json:"operands"`          // Inputs echoed back for context
	Result    int      `json:"result"`            // Integer result
	Summary   string   `json:"summary,omitempty"` // Human-readable description of the computation
}

// DivisionResponse is the result of a divide operation. The result is a
// float64 so fractional quotients survive; ZeroDivisor marks the silent
// fallback where a zero divisor yields a result of exactly 0.0.
type DivisionResponse struct {
	Status      string   `json:"status"`                // Always "success", including the zero-divisor case
	Operation   string   `json:"operation"`             // Always "divide"
	Operands    Operands `json:"operands"`              // Inputs echoed back for context
	Result      float64  `json:"result"`                // Floating-point quotient, or 0.0 for a zero divisor
	ZeroDivisor bool     `json:"zeroDivisor,omitempty"` // True when the fallback produced the result
	Summary     string   `json:"summary,omitempty"`     // Human-readable description of the computation
}
