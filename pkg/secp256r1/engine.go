package secp256r1

// Engine evaluates P-256 ECDSA signatures: verification and public-key
// recovery. An Engine holds no mutable state; every call is independent and
// the zero-configuration engine is safe for concurrent use.
type Engine struct {
	params *Params
	field  FieldArithmetic
	accel  AcceleratedVerifier
}

// NewEngine creates an engine with the default math/big field arithmetic and
// no accelerated verifier.
func NewEngine() *Engine {
	return &Engine{
		params: P256(),
		field:  bigIntField{},
	}
}

// WithFieldArithmetic sets a custom modular-arithmetic collaborator.
func (e *Engine) WithFieldArithmetic(field FieldArithmetic) *Engine {
	e.field = field
	return e
}

// WithAccelerator sets an optional native/hardware verification backend.
// Verify tries it before the software path; VerifyStrict requires it.
func (e *Engine) WithAccelerator(accel AcceleratedVerifier) *Engine {
	e.accel = accel
	return e
}
