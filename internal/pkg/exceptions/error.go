package exceptions

import (
	"errors"
	"fmt"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	last := e.Locations[len(e.Locations)-1]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, last.File, last.Line, last.FunctionName)
}

// BuildNewCustomError wraps err into a CustomError, recording the caller
// location. When err is itself a CustomError its location chain is carried
// forward so the original failure site survives rewrapping.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	customError := &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
	}

	if err != nil {
		customError.DevMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		var prev *CustomError
		if errors.As(err, &prev) {
			customError.Locations = append(customError.Locations, prev.Locations...)
		}
	}

	customError.Locations = append(customError.Locations, getLocation(2))
	return customError
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{File: "unknown", FunctionName: "unknown"}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
