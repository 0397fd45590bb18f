package exceptions

import (
	"fmt"
	"runtime"

	"barangay-health-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int          `json:"status_code"`
	Success       bool         `json:"success"`
	ClientMessage string       `json:"message"`
	Errors        []FieldError `json:"errors,omitempty"`
	DevMessage    string       `json:"dev_message,omitempty"`
	Location      *Location    `json:"location,omitempty"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	if e.Location == nil {
		return e.DevMessage
	}
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
}

func WrapWithError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      getLocation(3),
	}
}

// getLocation skips runtime.Caller, the wrap helper and the named constructor
// so the recorded frame is the code that raised the error.
func getLocation(skip int) *Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return &Location{
			File:         constvars.ResponseUnknown,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	return &Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
