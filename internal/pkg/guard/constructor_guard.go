// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was created through its designated constructor or as a zero value,
// keeping domain invariants enforceable even for value types.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied. Validation always fails with a meaningful message even if no
// specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor function.
// The zero value of the guard reports the object as not constructed.
//
// Example:
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    // validation ...
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly constructed.
// Call it in the constructor of every guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object was created through its constructor.
// Returns nil for constructed objects. For zero-value objects it returns
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
