package observability

import (
	"fmt"
)

// MustRecover converts a recovered panic value into an error. Returns nil
// when r is nil.
//
//	defer func() {
//	    if perr := observability.MustRecover(recover()); perr != nil {
//	        err = perr
//	    }
//	}()
func MustRecover(r interface{}) error {
	if r != nil {
		return fmt.Errorf("panic: %v", r)
	}
	return nil
}
