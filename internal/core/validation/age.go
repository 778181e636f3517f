package validation

import "time"

// AdultAge is the age from which a phone number becomes mandatory.
const AdultAge = 18

// Age is calendar-year arithmetic only: month and day are ignored, so a
// user may be counted one year older before their birthday.
func Age(dob, today time.Time) int {
	return today.Year() - dob.Year()
}

func IsPhoneRequired(dob, today time.Time) bool {
	return Age(dob, today) >= AdultAge
}
