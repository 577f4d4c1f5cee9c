package handler // handler defines http handlers

import (
	"errors"  // errors provides the sentinel used in subject extraction
	"strconv" // strconv converts path parameters to numeric types
	"strings" // strings provides trimming helpers

	"github.com/labstack/echo/v4" // echo defines request context types
)

// subject extracts the authenticated staff identity from echo.Context.
// The JWT middleware stores the token subject under "user_id"; tokens
// are issued by the external staff SSO so the subject is an opaque
// string.
func subject(c echo.Context) (string, error) {
	if v, ok := c.Get("user_id").(string); ok && strings.TrimSpace(v) != "" {
		return v, nil
	}
	return "", errors.New("missing subject in context")
}

// pathID parses the numeric :id (or other named) path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// queryUint32 parses a required numeric query parameter.
func queryUint32(c echo.Context, name string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(c.QueryParam(name)), 10, 32)
	if err != nil {
		return 0, errors.New("invalid " + name)
	}
	return uint32(n), nil
}

// queryAreaID parses the optional area_id query parameter, returning nil
// when absent.  An unparseable value is reported as an error so typos do
// not silently widen a filtered view to the whole house.
func queryAreaID(c echo.Context) (*uint64, error) {
	raw := strings.TrimSpace(c.QueryParam("area_id"))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.New("invalid area_id")
	}
	return &id, nil
}
