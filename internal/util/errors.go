package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrAccountPending    = errors.New("account pending approval")
	ErrAccountRejected   = errors.New("account registration rejected")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrSubjectNotFound   = errors.New("subject not found")
	ErrSubjectReferenced = errors.New("subject still has questions, notes or results")
	ErrEmptyQuestionBank = errors.New("no questions available for this subject")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrNoteNotFound      = errors.New("note not found")
)
