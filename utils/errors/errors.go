package errors

import (
	"errors"
	"fmt"
)

// keyValError attaches structured key/value pairs to an error so they can be logged alongside the message
type keyValError struct {
	err     error
	keyVals []interface{}
}

func (e keyValError) Error() string {
	return e.err.Error()
}

func (e keyValError) Unwrap() error {
	return e.err
}

func (e keyValError) Format(s fmt.State, verb rune) {
	if f, ok := e.err.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	_, _ = fmt.Fprint(s, e.err.Error())
}

// With attaches the given key/value pairs to err. Returns nil if err is nil
func With(err error, keyVals ...interface{}) error {
	if err == nil {
		return nil
	}

	if len(keyVals)%2 != 0 {
		keyVals = append(keyVals, "<missing value>")
	}

	return keyValError{err: err, keyVals: keyVals}
}

// KeyVals returns all key/value pairs attached anywhere in the error chain, outermost first
func KeyVals(err error) []interface{} {
	var keyVals []interface{}
	for err != nil {
		if kv, ok := err.(keyValError); ok {
			keyVals = append(keyVals, kv.keyVals...)
		}

		err = errors.Unwrap(err)
	}

	return keyVals
}

// Is returns true if any error in the chain is of type T
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}
