// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings shared by the
// go-places HTTP handlers and middleware.
//
// Every Msg* constant ends up in the "message" field of a response body.
// Keeping them in one place keeps the wording of the API consistent.
package app

// Place messages.
const (
	MsgPlaceNotFound     = "Could not find place for provided place id"
	MsgCouldNotGetPlace  = "Encountered an error finding place by id"
	MsgCouldNotGetPlaces = "Could not find places by user id"
	MsgCreatorNotFound   = "Could not find creator by user id"
	MsgGeocodeFailed     = "Could not get coordinates for address"
	MsgCouldNotCreate    = "Could not create place"
	MsgCouldNotUpdate    = "Could not update place"
	MsgCouldNotDelete    = "Could not delete place"
	MsgPlaceDeleted      = "Place deleted successfully"

	// MsgNotPlaceCreator is returned when someone other than the creator
	// tries to change or delete a place.
	MsgNotPlaceCreator = "You are not allowed to modify this place"
)

// User messages.
const (
	MsgCouldNotGetUsers    = "Could not get users"
	MsgUserNotFound        = "No user with given ID found"
	MsgEmailAlreadyExists  = "User with email already exists, please login instead"
	MsgCouldNotCreateUser  = "Could not create user"
	MsgIncorrectLogin      = "Incorrect login information"
	MsgCouldNotLogin       = "Could not login"
	MsgUserToDeleteMissing = "Could not find user to delete"
	MsgCouldNotDeleteUser  = "Could not delete user"
	MsgUserDeleted         = "User deleted successfully"

	// MsgNotAccountOwner is returned when an authenticated user tries to
	// delete somebody else's account.
	MsgNotAccountOwner = "You are not allowed to delete this user"
)

// Shared messages.
const (
	// MsgInvalidInput is returned for malformed bodies and for requests
	// that fail field validation.
	MsgInvalidInput = "Invalid input"

	MsgImageTooLarge     = "Image is too large"
	MsgUnsupportedImage  = "Only png, jpg and jpeg images are allowed"
	MsgNotAuthenticated  = "Not authenticated."
	MsgAuthFailed        = "Authentication failed, please check credentials and try again."
	MsgRouteNotSupported = "Route not supported"
	MsgUnknownError      = "An unknown error occurred"
)
