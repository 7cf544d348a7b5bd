package cli

import "fmt"

type stepError struct {
	index int
	step  string
	err   error
}

func (e stepError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.index+1, e.step, e.err)
}

func (e stepError) Unwrap() error { return e.err }

func errStep(index int, step string, err error) error {
	return stepError{index: index, step: step, err: err}
}
