// Package domain defines the core business entities of the HBnB
// application (users, places, reviews, amenities, states, cities)
// together with their validation rules and update patches.
//
// Entities are never observably invalid: constructors validate before
// returning, and updates are expressed as typed patches applied to a
// candidate copy that is validated before anything is persisted.
package domain
