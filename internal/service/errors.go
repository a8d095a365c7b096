package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email/password")
	ErrPasswordHashing     = errors.New("failed to hash password")

	ErrNotPlaceCreator = errors.New("requester is not the creator of the place")
	ErrNotAccountOwner = errors.New("requester is not the owner of the account")
	ErrCreatorNotFound = errors.New("creator of the place was not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
