package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"taskdeck/internal/task"
)

func TestHTTPTimeoutFromEnv(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "")
		if got := httpTimeoutFromEnv(); got != defaultHTTPTimeout {
			t.Fatalf("expected default timeout %v, got %v", defaultHTTPTimeout, got)
		}
	})

	t.Run("duration format", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "45s")
		if got := httpTimeoutFromEnv(); got != 45*time.Second {
			t.Fatalf("expected 45s timeout, got %v", got)
		}
	})

	t.Run("integer seconds", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "25")
		if got := httpTimeoutFromEnv(); got != 25*time.Second {
			t.Fatalf("expected 25s timeout, got %v", got)
		}
	})

	t.Run("invalid falls back", func(t *testing.T) {
		t.Setenv(httpTimeoutEnvKey, "invalid")
		if got := httpTimeoutFromEnv(); got != defaultHTTPTimeout {
			t.Fatalf("expected default timeout %v, got %v", defaultHTTPTimeout, got)
		}
	})
}

func TestClient_AuthHeaderAndPaths(t *testing.T) {
	var gotPath, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "tok123")
	if _, err := client.ListUsers(context.Background()); err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if gotPath != "/users/" {
		t.Errorf("expected trailing-slash users path, got %q", gotPath)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}

	if _, err := client.ListTasks(context.Background()); err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if gotPath != "/tasks" {
		t.Errorf("expected /tasks, got %q", gotPath)
	}
}

func TestClient_NoTokenOmitsAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.ListTasks(context.Background()); err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no auth header, got %q", gotAuth)
	}
}

func TestClient_SubmitReviewPayload(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"task_id": 42, "rating": 4}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	req := ReviewRequest{Rating: 4, ErrorStatus: task.ErrorClient, Remarks: "ok"}
	updated, err := client.SubmitReview(context.Background(), "42", req)
	if err != nil {
		t.Fatalf("SubmitReview failed: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/tasks/42/review" {
		t.Errorf("expected PUT /tasks/42/review, got %s %s", gotMethod, gotPath)
	}
	if gotBody["rating"] != float64(4) {
		t.Errorf("expected rating 4, got %v", gotBody["rating"])
	}
	if gotBody["error_status"] != "Client Query" {
		t.Errorf("expected error_status Client Query, got %v", gotBody["error_status"])
	}
	if gotBody["remarks"] != "ok" {
		t.Errorf("expected remarks ok, got %v", gotBody["remarks"])
	}
	if updated.Rating == nil || *updated.Rating != 4 {
		t.Errorf("expected updated task rating 4, got %v", updated.Rating)
	}
}

func TestClient_UpdateTaskSendsOnlySetFields(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"task_id": 42, "status": "Completed"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	status := task.StatusCompleted
	if _, err := client.UpdateTask(context.Background(), "42", TaskUpdateRequest{Status: &status}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if got := gotBody["status"]; got != "Completed" {
		t.Errorf("expected status Completed, got %v", got)
	}
	if len(gotBody) != 1 {
		t.Errorf("expected only the status field in the payload, got %v", gotBody)
	}
}

func TestClient_CreateCommentPayload(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"comment_id": 1, "comment_text": "hello"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	req := CommentCreateRequest{CommentText: "hello", IsInternal: false}
	if _, err := client.CreateComment(context.Background(), "42", req); err != nil {
		t.Fatalf("CreateComment failed: %v", err)
	}

	if gotBody["comment_text"] != "hello" {
		t.Errorf("expected comment_text hello, got %v", gotBody["comment_text"])
	}
	if gotBody["is_internal"] != false {
		t.Errorf("expected is_internal false, got %v", gotBody["is_internal"])
	}
}

func TestClient_DecodesDetailError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "rating must be between 1 and 5"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.SubmitReview(context.Background(), "42", ReviewRequest{Rating: 9})
	if err == nil {
		t.Fatal("expected error")
	}
	apiErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", apiErr.Status)
	}
	if apiErr.Detail != "rating must be between 1 and 5" {
		t.Errorf("expected server detail, got %q", apiErr.Detail)
	}
	if apiErr.Error() != "rating must be between 1 and 5" {
		t.Errorf("expected Error() to surface detail, got %q", apiErr.Error())
	}
}

func TestClient_ErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ListTasks(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "api error: 500" {
		t.Errorf("expected generic message, got %q", err.Error())
	}
}

func TestNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Task not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.GetTask(context.Background(), "999")
	if err == nil {
		t.Fatal("expected error")
	}
	if !NotFound(err) {
		t.Errorf("expected NotFound to report true for %v", err)
	}
	if NotFound(nil) {
		t.Error("expected NotFound false for nil error")
	}
}
