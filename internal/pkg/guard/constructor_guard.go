package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects and entities are only created through their
// designated constructor functions. A zero-value struct carries a zero-value guard,
// so any attempt to use it fails validation.
//
// Embed a ConstructorGuard in a domain type and set it with NewConstructorGuard()
// inside the factory function:
//
//	type Receipt struct {
//	    number string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewReceipt(number string) Receipt {
//	    return Receipt{number: number, guard: guard.NewConstructorGuard()}
//	}
//
//	func (r Receipt) Validate() error {
//	    return r.guard.Validate(ErrReceiptIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its constructor.
//
// Returns nil for a properly constructed object. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
