package errors

import "net/http"

var ErrInvalidTodoData = &Exception{
	Message:    "Invalid todo data",
	StatusCode: http.StatusBadRequest,
}
