// Package domain contains the core entities of the focus-progress store: the
// user, the yearly planets (goal cycles) with their wishes, focus records,
// vision board and achievement, and the device settings. It is independent of
// any persistence or delivery mechanism.
package domain
