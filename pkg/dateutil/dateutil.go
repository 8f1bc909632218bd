// Package dateutil converts calendar dates into the whole-year ages the
// planning engines simulate over.
package dateutil

import (
	"time"
)

// Age calculates the age in completed years at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// DateAtAge returns the date on which someone born on birthDate turns age.
// A 29 February birthday falls on 1 March in non-leap years.
func DateAtAge(birthDate time.Time, age int) time.Time {
	return birthDate.AddDate(age, 0, 0)
}
