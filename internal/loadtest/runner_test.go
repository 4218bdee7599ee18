package loadtest

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRandomShift(t *testing.T) {
	now := time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)
	o := Options{MaxEmployeeID: 5, SpreadDays: 3, Now: func() time.Time { return now }}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		p := RandomShift(rng, o)
		if p.EmployeeID < 1 || p.EmployeeID > 5 {
			t.Fatalf("employee id %d out of range", p.EmployeeID)
		}
		if p.Date < "2024-05-07" || p.Date > "2024-05-10" {
			t.Fatalf("date %s out of range", p.Date)
		}
		if p.StartTime != "09:00" || p.EndTime != "17:00" {
			t.Fatalf("times = %s-%s", p.StartTime, p.EndTime)
		}
	}
}

func TestRun_AgainstStub(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/add_shift" || r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var p ShiftPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if atomic.AddInt32(&calls, 1)%2 == 0 {
			w.WriteHeader(http.StatusConflict)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	rep, err := Run(context.Background(), Options{BaseURL: srv.URL, Token: "tok", Users: 3, Requests: 10, MaxEmployeeID: 10})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(rep.Results) != 10 || rep.Failures != 0 {
		t.Fatalf("results=%d failures=%d", len(rep.Results), rep.Failures)
	}
	if rep.ByStatus[http.StatusCreated] != 5 || rep.ByStatus[http.StatusConflict] != 5 {
		t.Fatalf("by status = %v", rep.ByStatus)
	}
	if rep.RunID == "" || rep.Percentile(50) <= 0 {
		t.Fatalf("run id %q p50 %s", rep.RunID, rep.Percentile(50))
	}

	var buf bytes.Buffer
	if err := rep.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil || len(rows) != 11 {
		t.Fatalf("csv rows = %d, %v", len(rows), err)
	}
}

func TestRun_ConnectionErrorsCountAsFailures(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rep, err := Run(context.Background(), Options{BaseURL: url, Users: 2, Requests: 4, Timeout: time.Second})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if rep.Failures != 4 || rep.ByStatus[0] != 4 {
		t.Fatalf("failures=%d by status=%v", rep.Failures, rep.ByStatus)
	}
}
