package model

import "errors"

var (
	ErrAlreadyExists    = errors.New("relation already exists")
	ErrRelationNotFound = errors.New("relation not found")
	ErrSelfSubscription = errors.New("you cannot subscribe to yourself")
)
