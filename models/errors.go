package models

import "fmt"

type DuplicateCandidateError struct {
	State DupState
}

func (e DuplicateCandidateError) Error() string {
	if e.State == DupStateNotFound || e.State == "" {
		return "candidate already exists"
	}
	return e.State.Message()
}

func NewDuplicateCandidateError(state DupState) error {
	return DuplicateCandidateError{State: state}
}

type DuplicateAssignmentError struct {
	State DupState
}

func (e DuplicateAssignmentError) Error() string {
	if e.State == DupStateNotFound || e.State == "" {
		return "candidate already assigned to HR"
	}
	return e.State.Message()
}

func NewDuplicateAssignmentError(state DupState) error {
	return DuplicateAssignmentError{State: state}
}

type NotFoundError struct {
	Entity string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%v не найден", e.Entity)
}

func NewNotFoundError(entity string) error {
	return NotFoundError{Entity: entity}
}
