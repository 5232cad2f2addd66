package sqlfault

import "fmt"

// ObjectNotExecutableError reports an attempt to execute a value that is not
// an executable statement construct.
type ObjectNotExecutableError struct {
	Target interface{}
}

func NewObjectNotExecutable(target interface{}) *ObjectNotExecutableError {
	return &ObjectNotExecutableError{Target: target}
}

func (e *ObjectNotExecutableError) Error() string {
	return fmt.Sprintf("not an executable object: %v", e.Target)
}

func (e *ObjectNotExecutableError) Class() *Class { return ObjectNotExecutable }

func (e *ObjectNotExecutableError) Is(target error) bool {
	return classIs(ObjectNotExecutable, target)
}
