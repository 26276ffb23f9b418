package levels

import (
	"errors"
	"fmt"
	"math"
)

// Validation error codes.
const (
	CodeNoID          = "NO_ID"
	CodeNoPlatforms   = "NO_PLATFORMS"
	CodeBadPlatform   = "BAD_PLATFORM"
	CodeBadPatrol     = "BAD_PATROL"
	CodeOutsidePatrol = "OUTSIDE_PATROL"
	CodeBadGoal       = "BAD_GOAL"
	CodeBadPosition   = "BAD_POSITION"
)

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...any) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks a level template for authoring mistakes. All problems
// are reported, joined into one error.
func Validate(l Level) error {
	var errs []error

	if l.ID == "" {
		errs = append(errs, invalid(CodeNoID, "level has no id"))
	}
	if !finite(l.Start.X, l.Start.Y, l.GoalX) {
		errs = append(errs, invalid(CodeBadPosition, "start and goal must be finite"))
	}
	if l.GoalX <= l.Start.X {
		errs = append(errs, invalid(CodeBadGoal, "goal x %v is not right of start x %v", l.GoalX, l.Start.X))
	}

	if len(l.Platforms) == 0 {
		errs = append(errs, invalid(CodeNoPlatforms, "level has no platforms"))
	}
	for i, p := range l.Platforms {
		if !p.Valid() {
			errs = append(errs, invalid(CodeBadPlatform, "platform %d has non-positive or non-finite size %vx%v", i, p.W, p.H))
		}
	}

	for i, e := range l.Enemies {
		if !finite(e.Pos.X, e.Pos.Y, e.Left, e.Right) {
			errs = append(errs, invalid(CodeBadPosition, "enemy %d has a non-finite coordinate", i))
			continue
		}
		if e.Left > e.Right {
			errs = append(errs, invalid(CodeBadPatrol, "enemy %d patrol bounds inverted: [%v, %v]", i, e.Left, e.Right))
			continue
		}
		if e.Pos.X < e.Left || e.Pos.X > e.Right {
			errs = append(errs, invalid(CodeOutsidePatrol, "enemy %d at x=%v outside patrol [%v, %v]", i, e.Pos.X, e.Left, e.Right))
		}
	}

	for i, b := range l.Bonuses {
		if !finite(b.Pos.X, b.Pos.Y) {
			errs = append(errs, invalid(CodeBadPosition, "bonus %d has a non-finite coordinate", i))
		}
	}
	for i, p := range l.PowerUps {
		if !finite(p.Pos.X, p.Pos.Y) {
			errs = append(errs, invalid(CodeBadPosition, "power-up %d has a non-finite coordinate", i))
		}
	}

	return errors.Join(errs...)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
