//go:generate go run github.com/sublee/errgen/cmd/errgen .

package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sublee/errgen"
)

//errgen:union
type JobError interface {
	error
	jobError()
}

//errgen:variant JobError
//errgen:error "job {ID} not found"
type JobNotFound struct {
	ID int
}

//errgen:variant JobError
//errgen:error "invalid job id: {Err}"
type InvalidJobID struct {
	Err   *strconv.NumError `errgen:"from"`
	Trace errgen.Backtrace  `errgen:"backtrace"`
}

//errgen:variant JobError
//errgen:transparent
type Internal struct {
	Err error
}

var jobs = map[int]string{
	1: "build",
	2: "deploy",
}

func getJob(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			return Internal{Err: err}
		}
		return JobErrorFromNumError(numErr)
	}

	name, ok := jobs[id]
	if !ok {
		return JobNotFound{ID: id}
	}
	return c.JSON(http.StatusOK, map[string]any{"id": id, "name": name})
}

// errorHandler maps job errors to HTTP status codes.
func errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError

	var (
		notFound JobNotFound
		invalid  InvalidJobID
		httpErr  *echo.HTTPError
	)
	switch {
	case errors.As(err, &notFound):
		code = http.StatusNotFound
	case errors.As(err, &invalid):
		code = http.StatusBadRequest
		c.Logger().Debugf("invalid job id:\n%s", invalid.Backtrace())
	case errors.As(err, &httpErr):
		code = httpErr.Code
	}

	if err := c.JSON(code, map[string]string{"error": err.Error()}); err != nil {
		c.Logger().Error(err)
	}
}

func main() {
	e := echo.New()
	e.HTTPErrorHandler = errorHandler
	e.GET("/jobs/:id", getJob)
	e.Logger.Fatal(e.Start(":8080"))
}
