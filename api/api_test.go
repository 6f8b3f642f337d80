package api

import (
	"net/http"
	"testing"

	"litten/constants"
)

type demoPayload struct {
	Name string   `json:"name" validate:"required" msg:"Name is required"`
	Tags []string `json:"tags" validate:"required,dive,notblank" msg:"Tags are required" amsg:"Each tag must not be blank"`
}

func TestCompileValidationErrors(t *testing.T) {
	compiled := CompileValidationErrors(demoPayload{})

	if compiled["Name"] != "Name is required" {
		t.Error("Expected Name message, got", compiled["Name"])
	}
	if compiled["Tags"] != "Tags are required" {
		t.Error("Expected Tags message, got", compiled["Tags"])
	}
	if compiled["Tags$arr"] != "Each tag must not be blank" {
		t.Error("Expected Tags array message, got", compiled["Tags$arr"])
	}
	if _, ok := compiled["Name$arr"]; ok {
		t.Error("Name has no amsg tag, should not have an array message")
	}
}

func TestMethodString(t *testing.T) {
	if GET.String() != "GET" {
		t.Error("Expected GET, got", GET.String())
	}
	if DELETE.String() != "DELETE" {
		t.Error("Expected DELETE, got", DELETE.String())
	}
}

func TestDefaultResponse(t *testing.T) {
	resp := DefaultResponse(http.StatusNotFound)

	if resp.Status != http.StatusNotFound || resp.Data != constants.ResourceNotFound {
		t.Error("Unexpected not found response")
	}

	resp = DefaultResponse(http.StatusForbidden)

	if resp.Status != http.StatusForbidden || resp.Data != constants.Forbidden {
		t.Error("Unexpected forbidden response")
	}

	resp = DefaultResponse(http.StatusNoContent)

	if resp.Status != http.StatusNoContent {
		t.Error("Expected no content status passthrough")
	}
}
