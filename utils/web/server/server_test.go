package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendJsonResponse(t *testing.T) {
	recorder := httptest.NewRecorder()
	SendJsonResponse(recorder, map[string]int{"frame": 3})

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", recorder.Code)
	}
	if recorder.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got %s", recorder.Header().Get("Content-Type"))
	}
	if recorder.Body.String() != `{"frame":3}` {
		t.Errorf("Unexpected body %s", recorder.Body.String())
	}
}

func TestSendJsonResponseWithStatus(t *testing.T) {
	recorder := httptest.NewRecorder()
	SendJsonResponseWithStatus(recorder, http.StatusBadRequest, "Invalid request")

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", recorder.Code)
	}
	if recorder.Body.String() != `"Invalid request"` {
		t.Errorf("Unexpected body %s", recorder.Body.String())
	}
}

func TestSendJsonResponse_MarshalError(t *testing.T) {
	recorder := httptest.NewRecorder()
	SendJsonResponse(recorder, make(chan int))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", recorder.Code)
	}
}
