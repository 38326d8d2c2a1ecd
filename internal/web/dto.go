package web

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/kickerlab/foosserver/internal/domain"
)

// formValuer is the slice of *fiber.Ctx the parsers need; it keeps them
// testable without spinning up an app.
type formValuer interface {
	FormValue(key string, defaultValue ...string) string
}

func parseMatchReport(ctx formValuer) (domain.MatchReport, error) {
	var err error
	report := domain.MatchReport{
		A1: ctx.FormValue("a1", ""),
		A2: ctx.FormValue("a2", ""),
		B1: ctx.FormValue("b1", ""),
		B2: ctx.FormValue("b2", ""),
	}
	for field, name := range map[string]string{
		"a1": report.A1, "a2": report.A2, "b1": report.B1, "b2": report.B2,
	} {
		if name == "" {
			err = errors.Join(err, fmt.Errorf("player %s is required", field))
		}
	}
	report.GoalsA, err = joinGoals(err, ctx, "goals-a")
	report.GoalsB, err = joinGoals(err, ctx, "goals-b")
	if err != nil {
		return domain.MatchReport{}, err
	}
	return report, nil
}

func joinGoals(err error, ctx formValuer, field string) (int, error) {
	raw := ctx.FormValue(field, "")
	if raw == "" {
		return 0, errors.Join(err, fmt.Errorf("%s is required", field))
	}
	goals, convErr := strconv.Atoi(raw)
	if convErr != nil {
		return 0, errors.Join(err, fmt.Errorf("%s must be a number", field))
	}
	if goals < 0 {
		return 0, errors.Join(err, fmt.Errorf("%s can not be negative", field))
	}
	return goals, err
}

func parseHistoryLimit(raw string, fallback int) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}

type signupRequest struct {
	name     string
	password string
}

func parseSignUpRequest(ctx formValuer) (signupRequest, error) {
	var err error
	name := ctx.FormValue("username", "")
	err = errors.Join(err, validateUserName(name))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	passwordRepeat := ctx.FormValue("password-repeat", "")
	if passwordRepeat != password {
		err = errors.Join(err, errors.New("passwords do not match"))
	}
	if err != nil {
		return signupRequest{}, err
	}
	return signupRequest{
		name:     name,
		password: password,
	}, nil
}

type signInRequest struct {
	name     string
	password string
}

func parseSignInRequest(ctx formValuer) (signInRequest, error) {
	var err error
	name := ctx.FormValue("username", "")
	err = errors.Join(err, validateUserName(name))
	password := ctx.FormValue("password", "")
	err = errors.Join(err, validatePassword(password))
	if err != nil {
		return signInRequest{}, err
	}
	return signInRequest{
		name:     name,
		password: password,
	}, nil
}

func validatePassword(password string) error {
	if password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}

var userNameRegexp = regexp.MustCompile(`^[A-Za-z]\w+$`)

func validateUserName(name string) error {
	var err error
	if name == "" {
		err = errors.Join(err, errors.New("username must not be empty"))
	}
	if !userNameRegexp.MatchString(name) {
		err = errors.Join(err, errors.New("username must start with a latin letter and contain only latin letters, digits and underscores"))
	}
	return err
}
