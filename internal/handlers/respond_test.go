package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handler(ctx)

	return recorder
}

func TestRespond_EnvelopeShape(t *testing.T) {
	recorder := performRequest(func(ctx *gin.Context) {
		respond(ctx, http.StatusCreated, "Account created successfully!", gin.H{"account": gin.H{"id": "abc"}})
	})

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusCreated)
	}

	var body map[string]interface{}

	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}

	if body["statusCode"] != float64(http.StatusCreated) {
		t.Errorf("statusCode = %v, want 201", body["statusCode"])
	}

	if body["statusMessage"] != "Created" {
		t.Errorf("statusMessage = %v, want Created", body["statusMessage"])
	}

	if body["message"] != "Account created successfully!" {
		t.Errorf("message = %v", body["message"])
	}

	if _, ok := body["data"].(map[string]interface{}); !ok {
		t.Errorf("data missing or wrong shape: %v", body["data"])
	}
}

func TestRespondError_OmitsData(t *testing.T) {
	recorder := performRequest(func(ctx *gin.Context) {
		respondError(ctx, http.StatusNotFound, "Account not found!")
	})

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusNotFound)
	}

	var body map[string]interface{}

	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}

	if body["statusMessage"] != "Not found" {
		t.Errorf("statusMessage = %v, want Not found", body["statusMessage"])
	}

	if _, present := body["data"]; present {
		t.Errorf("data should be omitted, got %v", body["data"])
	}
}

func TestRespondIssues_CarriesFieldList(t *testing.T) {
	recorder := performRequest(func(ctx *gin.Context) {
		respondIssues(ctx, []FieldIssue{{Field: "amount", Message: "Amount must be greater than 0.00"}})
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", recorder.Code, http.StatusBadRequest)
	}

	var body struct {
		Message string `json:"message"`
		Data    struct {
			Issues []FieldIssue `json:"issues"`
		} `json:"data"`
	}

	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}

	if body.Message != "Invalid input" {
		t.Errorf("message = %q, want %q", body.Message, "Invalid input")
	}

	if len(body.Data.Issues) != 1 || body.Data.Issues[0].Field != "amount" {
		t.Errorf("issues = %+v", body.Data.Issues)
	}
}
