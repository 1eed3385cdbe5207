package document

import "fmt"

// As downcasts n to the concrete variant T. It fails with ErrBadCast
// when the runtime kind does not match, naming both kinds in the error.
func As[T Node](n Node) (T, error) {
	v, ok := n.(T)
	if !ok {
		var zero T
		kind := "nil"
		if n != nil {
			kind = n.Kind().String()
		}
		return zero, fmt.Errorf("%w: want %T, got %s", ErrBadCast, zero, kind)
	}
	return v, nil
}

// MustAs downcasts n to T and panics on a kind mismatch. It is meant for
// call sites that have already validated the kind.
func MustAs[T Node](n Node) T {
	v, err := As[T](n)
	if err != nil {
		panic(err)
	}
	return v
}
