package executor

import (
	bferrors "github.com/vnykmshr/batchflow/pkg/common/errors"
)

// Outcome is the settlement of a single task: a value on success or an
// error on failure. Exactly one outcome exists per input item.
type Outcome[R any] struct {
	Value R
	Err   error
}

// Fulfilled reports whether the task settled with a value.
func (o Outcome[R]) Fulfilled() bool {
	return o.Err == nil
}

// Result aggregates the settlements of a RunAll call.
//
// Outcomes and Values are input-ordered with one slot per input item;
// Values holds the zero value where the task failed. Returned and Errors
// are compacted views holding only the fulfilled values and the failure
// reasons respectively, each preserving the relative order of survivors.
type Result[R any] struct {
	Outcomes []Outcome[R]
	Values   []R
	Returned []R
	Errors   []error
}

// Err converts the collected failures into a single error. It returns nil
// when every task fulfilled; otherwise an *errors.AggregateError whose
// message is the indented JSON array of the failure strings.
func (r Result[R]) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return bferrors.NewAggregateError(r.Errors)
}

// collect builds a Result from settled outcomes.
func collect[R any](outcomes []Outcome[R]) Result[R] {
	res := Result[R]{
		Outcomes: outcomes,
		Values:   make([]R, len(outcomes)),
	}
	for i, oc := range outcomes {
		if oc.Err != nil {
			res.Errors = append(res.Errors, oc.Err)
			continue
		}
		res.Values[i] = oc.Value
		res.Returned = append(res.Returned, oc.Value)
	}
	return res
}

// Flatten expands a result whose tasks each returned a slice of
// sub-results into a result over the sub-results themselves. Every
// fulfilled slice becomes one outcome per element; a failed task keeps
// its single error outcome. Errors are carried over unchanged.
func Flatten[R any](res Result[[]R]) Result[R] {
	var outcomes []Outcome[R]
	for _, oc := range res.Outcomes {
		if oc.Err != nil {
			outcomes = append(outcomes, Outcome[R]{Err: oc.Err})
			continue
		}
		for _, v := range oc.Value {
			outcomes = append(outcomes, Outcome[R]{Value: v})
		}
	}
	if outcomes == nil {
		outcomes = []Outcome[R]{}
	}
	return collect(outcomes)
}
