package types

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"cleanresponse/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

func init() {
	gin.SetMode(gin.TestMode)
	UseJSONFieldNames()
}

type signupRequest struct {
	Name  string `json:"name" binding:"required,max=5"`
	Email string `json:"email" binding:"required,email"`
	Age   int    `json:"age" binding:"omitempty,min=18"`
}

func TestFieldErrors(t *testing.T) {
	t.Run("Nil error", func(t *testing.T) {
		if got := FieldErrors(nil); got != nil {
			t.Errorf("Expected nil, got %v", got)
		}
	})

	t.Run("Validator errors use json names", func(t *testing.T) {
		req := signupRequest{Name: "Jonathan", Email: "not-an-email", Age: 12}
		err := binding.Validator.ValidateStruct(&req)
		if err == nil {
			t.Fatal("Expected validation error")
		}

		got := FieldErrors(err)
		want := map[string]response.FieldError{
			"name":  {Field: "name", Message: "must be at most 5", Code: "MAX"},
			"email": {Field: "email", Message: "must be a valid email", Code: "EMAIL"},
			"age":   {Field: "age", Message: "must be at least 18", Code: "MIN"},
		}
		if len(got) != len(want) {
			t.Fatalf("Expected %d field errors, got %d: %v", len(want), len(got), got)
		}
		for _, fe := range got {
			if want[fe.Field] != fe {
				t.Errorf("Unexpected field error %+v, want %+v", fe, want[fe.Field])
			}
		}
	})

	t.Run("Required fields", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&signupRequest{})
		got := FieldErrors(err)
		if len(got) != 2 {
			t.Fatalf("Expected 2 field errors, got %v", got)
		}
		for _, fe := range got {
			if fe.Code != "REQUIRED" || fe.Message != "is required" {
				t.Errorf("Expected required error, got %+v", fe)
			}
		}
	})

	t.Run("JSON type mismatch", func(t *testing.T) {
		var req signupRequest
		err := json.Unmarshal([]byte(`{"age":"old"}`), &req)
		got := FieldErrors(err)
		if len(got) != 1 || got[0].Field != "age" || got[0].Code != "INVALID_TYPE" {
			t.Errorf("Expected single age type error, got %v", got)
		}
	})

	t.Run("Unparsable number", func(t *testing.T) {
		err := &strconv.NumError{Func: "ParseInt", Num: "abc", Err: strconv.ErrSyntax}
		got := FieldErrors(err)
		if len(got) != 1 || got[0].Field != "query" || got[0].Code != "INVALID_TYPE" {
			t.Errorf("Expected single query type error, got %v", got)
		}
	})

	t.Run("Malformed body", func(t *testing.T) {
		got := FieldErrors(errors.New("unexpected EOF"))
		if len(got) != 1 || got[0].Field != "body" || got[0].Code != "INVALID_BODY" {
			t.Errorf("Expected single body error, got %v", got)
		}
	})
}

func TestPaginationRequest(t *testing.T) {
	t.Run("Normalize defaults", func(t *testing.T) {
		var p PaginationRequest
		p.Normalize()
		if p.Page != DefaultPage || p.PerPage != DefaultPerPage {
			t.Errorf("Expected defaults, got %+v", p)
		}
	})

	testCases := []struct {
		perPage int
		total   int64
		want    int
	}{
		{10, 0, 0},
		{10, 1, 1},
		{10, 10, 1},
		{10, 11, 2},
		{10, 50, 5},
		{0, 50, 0},
	}
	for _, tc := range testCases {
		p := PaginationRequest{Page: 1, PerPage: tc.perPage}
		if got := p.TotalPages(tc.total); got != tc.want {
			t.Errorf("TotalPages(per_page=%d, total=%d) = %d, want %d", tc.perPage, tc.total, got, tc.want)
		}
	}
}

func TestAbortWithError(t *testing.T) {
	testCases := []struct {
		name       string
		env        response.ErrorEnvelope
		wantStatus int
	}{
		{"Not found", response.NotFound("User"), http.StatusNotFound},
		{"Validation", response.ValidationError(nil, ""), http.StatusUnprocessableEntity},
		{"Non-HTTP code", response.Error("custom", 1001), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			AbortWithError(c, tc.env)

			if w.Code != tc.wantStatus {
				t.Errorf("Expected status %d, got %d", tc.wantStatus, w.Code)
			}
			if !c.IsAborted() {
				t.Error("Expected context to be aborted")
			}
			if len(c.Errors) != 1 {
				t.Errorf("Expected envelope recorded on context, got %d errors", len(c.Errors))
			}

			var body response.ErrorEnvelope
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("Failed to decode body: %v", err)
			}
			if body.Success || body.Code != tc.env.Code {
				t.Errorf("Unexpected body %+v", body)
			}
		})
	}
}

func TestOptionsCarryRequestID(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(RequestIDKey, "req-42")

	env := response.Success("ok", "", Options(c)...)
	if env.RequestID != "req-42" {
		t.Errorf("Expected requestId 'req-42', got '%s'", env.RequestID)
	}

	errEnv := response.BadRequest("", Options(c, response.WithDetails(map[string]any{"q": "x"}))...)
	if errEnv.RequestID != "req-42" || errEnv.Details["q"] != "x" {
		t.Errorf("Unexpected envelope %+v", errEnv)
	}
}

func TestQueryFieldErrors(t *testing.T) {
	query := url.Values{"page": {"2"}, "per_page": {"abc"}}

	t.Run("Names the offending parameter", func(t *testing.T) {
		err := &strconv.NumError{Func: "ParseInt", Num: "abc", Err: strconv.ErrSyntax}
		got := QueryFieldErrors(query, err)
		want := response.FieldError{Field: "per_page", Message: "must be a number", Code: "INVALID_TYPE"}
		if len(got) != 1 || got[0] != want {
			t.Errorf("Expected %+v, got %v", want, got)
		}
	})

	t.Run("Unknown value", func(t *testing.T) {
		err := &strconv.NumError{Func: "ParseInt", Num: "xyz", Err: strconv.ErrSyntax}
		got := QueryFieldErrors(query, err)
		if len(got) != 1 || got[0].Field != "query" {
			t.Errorf("Expected query field error, got %v", got)
		}
	})

	t.Run("Other errors", func(t *testing.T) {
		got := QueryFieldErrors(query, errors.New("boom"))
		if len(got) != 1 || got[0].Field != "body" {
			t.Errorf("Expected fallback body error, got %v", got)
		}
	})
}

func TestPaginationInRange(t *testing.T) {
	testCases := []struct {
		name string
		p    PaginationRequest
		want bool
	}{
		{"Defaults", PaginationRequest{Page: 1, PerPage: 20}, true},
		{"Largest page", PaginationRequest{Page: math.MaxInt/100 + 1, PerPage: 100}, true},
		{"Offset overflow", PaginationRequest{Page: math.MaxInt/100 + 2, PerPage: 100}, false},
		{"Huge page", PaginationRequest{Page: 922337203685477580, PerPage: 20}, false},
		{"Zero page", PaginationRequest{Page: 0, PerPage: 20}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.InRange(); got != tc.want {
				t.Errorf("Expected InRange %v, got %v", tc.want, got)
			}
		})
	}
}
