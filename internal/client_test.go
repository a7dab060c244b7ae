package internal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestClientChat(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     string
		wantErr  bool
		errCheck func(t *testing.T, err error)
	}{
		{
			name:   "plain reply",
			status: http.StatusOK,
			body:   `{"response":"Here are three roles."}`,
			want:   "Here are three roles.",
		},
		{
			name:   "reply with citations stripped",
			status: http.StatusOK,
			body:   `{"response":"Top pick: Data Engineer【4:0†source】 looks great.【2:1†source】"}`,
			want:   "Top pick: Data Engineer looks great.",
		},
		{
			name:   "whitespace-only reply",
			status: http.StatusOK,
			body:   `{"response":"   "}`,
			want:   "",
		},
		{
			name:   "citation-only reply",
			status: http.StatusOK,
			body:   `{"response":"【1:0†source】"}`,
			want:   "",
		},
		{
			name:    "server error with message",
			status:  http.StatusTooManyRequests,
			body:    `{"error":"rate limited, slow down"}`,
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %T, want *APIError", err)
				}
				if apiErr.Message != "rate limited, slow down" {
					t.Errorf("Message = %q", apiErr.Message)
				}
				if apiErr.Status != http.StatusTooManyRequests {
					t.Errorf("Status = %d", apiErr.Status)
				}
			},
		},
		{
			name:    "server error with unparsable body",
			status:  http.StatusInternalServerError,
			body:    `<html>boom</html>`,
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %T, want *APIError", err)
				}
				if apiErr.Message != "" {
					t.Errorf("Message = %q, want empty", apiErr.Message)
				}
			},
		},
		{
			name:    "malformed success body",
			status:  http.StatusOK,
			body:    `not json`,
			wantErr: true,
			errCheck: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("error = %T, want *APIError", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/api/chat" {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second)
			got, err := client.Chat(context.Background(), CreateTestTranscript(2))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Chat() error = nil, want error")
				}
				if tt.errCheck != nil {
					tt.errCheck(t, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Chat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Chat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClientChat_SendsFullTranscript(t *testing.T) {
	var received chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"response":"ok"}`))
	}))
	defer srv.Close()

	transcript := CreateTestTranscript(4)
	client := NewClient(srv.URL, 5*time.Second)
	if _, err := client.Chat(context.Background(), transcript); err != nil {
		t.Fatal(err)
	}

	if len(received.Messages) != len(transcript) {
		t.Fatalf("server received %d messages, want %d", len(received.Messages), len(transcript))
	}
	for i, turn := range transcript {
		if received.Messages[i] != turn {
			t.Errorf("message %d = %+v, want %+v", i, received.Messages[i], turn)
		}
	}
}

func TestClientChat_SingleFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"response":"slow reply"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)

	var wg sync.WaitGroup
	wg.Add(1)
	firstDone := make(chan error, 1)
	go func() {
		defer wg.Done()
		_, err := client.Chat(context.Background(), CreateTestTranscript(1))
		firstDone <- err
	}()

	// wait for the first request to be in flight
	deadline := time.After(2 * time.Second)
	for !client.Pending() {
		select {
		case <-deadline:
			t.Fatal("first request never became pending")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	_, err := client.Chat(context.Background(), CreateTestTranscript(1))
	if !errors.Is(err, ErrRequestPending) {
		t.Errorf("second Chat() error = %v, want ErrRequestPending", err)
	}

	close(release)
	wg.Wait()
	if err := <-firstDone; err != nil {
		t.Errorf("first Chat() error = %v", err)
	}
	if client.Pending() {
		t.Error("Pending() = true after request completed")
	}

	// the gate resets: a later call succeeds
	if _, err := client.Chat(context.Background(), CreateTestTranscript(1)); err != nil {
		t.Errorf("follow-up Chat() error = %v", err)
	}
}

func TestClientChat_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second)
	_, err := client.Chat(context.Background(), CreateTestTranscript(1))

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error = %T, want *TransportError", err)
	}
	if client.Pending() {
		t.Error("Pending() = true after transport failure")
	}
}

func TestClientJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/jobs" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("q") != "engineer" || q.Get("location") != "austin" {
			t.Errorf("query = %v", q)
		}
		if q.Get("min_score") != "70" || q.Get("limit") != "3" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"total":12,"offset":0,"limit":3,"jobs":[{"job_title":"Data Engineer","location":{"city":"Austin","state":"TX"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	page, err := client.Jobs(context.Background(), JobsQuery{
		Query:    "engineer",
		Location: "austin",
		MinScore: 70,
		Limit:    3,
	})
	if err != nil {
		t.Fatalf("Jobs() error = %v", err)
	}
	if page.Total != 12 || len(page.Jobs) != 1 {
		t.Errorf("page = %+v", page)
	}
	if page.Jobs[0].Title != "Data Engineer" {
		t.Errorf("Title = %q", page.Jobs[0].Title)
	}
}

func TestClientStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stats" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"total":240,"avgScore":"63.5","topState":"TX","latestDate":"2026-08-20"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	stats, err := client.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.Total != 240 || stats.TopState != "TX" {
		t.Errorf("stats = %+v", stats)
	}
}

func TestClientEmailDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("source_url") != "https://example.com/job/1" {
			t.Errorf("source_url = %q", r.URL.Query().Get("source_url"))
		}
		w.Write([]byte(`{"to":"hr@acme.test","subject":"Application","body":"Dear team,"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	draft, err := client.EmailDraft(context.Background(), "https://example.com/job/1")
	if err != nil {
		t.Fatalf("EmailDraft() error = %v", err)
	}
	if draft.To != "hr@acme.test" || draft.Subject != "Application" {
		t.Errorf("draft = %+v", draft)
	}
}
