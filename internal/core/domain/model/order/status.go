package order

import (
	"fmt"
	"strings"

	"littlelemon/internal/pkg/errs"
)

// ErrAlreadyAssigned is returned when a delivery crew member is assigned
// to an order that already has one. Assignments are never overwritten.
var ErrAlreadyAssigned = errs.NewConflictErrorWithCause(
	"delivery_crew", fmt.Errorf("order already has a delivery crew member assigned"),
)

// Status is the explicit lifecycle state of an order.
//
//	Pending ──> Assigned ──> Completed
//	   │                        ^
//	   └────────────────────────┘
//
// Completed is terminal. Completing a completed order is a no-op, and there
// is no transition back to Pending or Assigned. A Completed order without a
// crew member may still be given one.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Assigned
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		Completed: "Completed",
	}
}

// StatusFromString parses the persisted form, case-insensitively.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s != Pending && s != Assigned && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCompleted reports the boolean the public API exposes as "status".
func (s Status) IsCompleted() bool {
	return s == Completed
}

// Assign returns the status after a crew member is assigned. hasCrew tells
// whether the order already has one, which always fails.
func (s Status) Assign(hasCrew bool) (Status, error) {
	if err := s.ValidateCanHaveDeliveryCrew(hasCrew); err != nil {
		return Unknown, err
	}
	if hasCrew {
		return Unknown, ErrAlreadyAssigned
	}
	if s == Completed {
		return Completed, nil
	}
	return Assigned, nil
}

// Complete moves Pending or Assigned to Completed. changed is false when
// the order was already completed.
func (s Status) Complete() (next Status, changed bool, err error) {
	switch s {
	case Pending, Assigned:
		return Completed, true, nil
	case Completed:
		return Completed, false, nil
	default:
		return Unknown, false, s.Validate()
	}
}

// ValidateCanHaveDeliveryCrew checks that the assignment agrees with the
// status: Pending has no crew, Assigned has one, Completed may have either.
func (s Status) ValidateCanHaveDeliveryCrew(assigned bool) error {
	if assigned && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%s is not a valid status to have a delivery crew", s),
		)
	}
	if !assigned && s == Assigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid", fmt.Errorf("%s is not a valid status to have no delivery crew", s),
		)
	}
	return s.Validate()
}
