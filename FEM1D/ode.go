package FEM1D

// CoeffFunc is a real-valued coefficient function over [0,1].
type CoeffFunc func(x float64) float64

// ODE describes the second order linear equation
//
//	a(x)·y″(x) + b(x)·y′(x) + c(x)·y(x) = f(x)   on [0,1]
//
// by its four scalar coefficient functions. Immutable once supplied.
type ODE struct {
	A, B, C, F CoeffFunc
}

func (o ODE) String() string {
	return "a(x)·y″ + b(x)·y′ + c(x)·y = f(x) on [0,1]"
}
