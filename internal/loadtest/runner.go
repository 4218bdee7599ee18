// Package loadtest drives the /add_shift endpoint with randomised shifts and
// summarises latencies and status codes.
package loadtest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Options configures a run.
type Options struct {
	BaseURL       string
	Token         string
	Users         int           // concurrent virtual users
	Requests      int           // total requests across all users
	MaxEmployeeID int           // employee_id is drawn from [1, MaxEmployeeID]
	SpreadDays    int           // dates are drawn from today-SpreadDays..today
	MinWait       time.Duration // think time between a user's requests
	MaxWait       time.Duration
	Timeout       time.Duration
	Seed          int64
	Now           func() time.Time
}

// Result is one request outcome.
type Result struct {
	User       int
	EmployeeID int
	Date       string
	StatusCode int
	Latency    time.Duration
	Err        string
}

// Report summarises a run.
type Report struct {
	RunID    string
	Results  []Result
	ByStatus map[int]int
	Failures int
	Elapsed  time.Duration
}

// ShiftPayload is the body posted to /add_shift.
type ShiftPayload struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

func (o *Options) defaults() {
	if o.Users <= 0 {
		o.Users = 1
	}
	if o.Requests <= 0 {
		o.Requests = o.Users
	}
	if o.MaxEmployeeID <= 0 {
		o.MaxEmployeeID = 1000
	}
	if o.MaxWait < o.MinWait {
		o.MaxWait = o.MinWait
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
}

// RandomShift builds a 09:00-17:00 shift for a random employee and date.
func RandomShift(rng *rand.Rand, o Options) ShiftPayload {
	date := o.Now()
	if o.SpreadDays > 0 {
		date = date.AddDate(0, 0, -rng.Intn(o.SpreadDays+1))
	}
	return ShiftPayload{
		EmployeeID: rng.Intn(o.MaxEmployeeID) + 1,
		Date:       date.Format("2006-01-02"),
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
}

// Run sends o.Requests requests from o.Users concurrent users and collects the results.
func Run(ctx context.Context, o Options) (*Report, error) {
	o.defaults()
	if o.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	c := NewHTTPClient(o.BaseURL, o.Timeout)
	if o.Token != "" {
		c.Headers["Authorization"] = "Bearer " + o.Token
	}

	jobs := make(chan int)
	results := make(chan Result, o.Requests)
	var wg sync.WaitGroup
	start := time.Now()

	for u := 0; u < o.Users; u++ {
		wg.Add(1)
		go func(user int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(o.Seed + int64(user)))
			for range jobs {
				p := RandomShift(rng, o)
				r := Result{User: user, EmployeeID: p.EmployeeID, Date: p.Date}
				resp, err := c.PostJSON(ctx, "/add_shift", p)
				if resp != nil {
					r.StatusCode = resp.StatusCode
					r.Latency = resp.Latency
				}
				if err != nil {
					r.Err = err.Error()
				}
				results <- r
				if o.MaxWait > 0 {
					wait := o.MinWait
					if span := o.MaxWait - o.MinWait; span > 0 {
						wait += time.Duration(rng.Int63n(int64(span)))
					}
					select {
					case <-time.After(wait):
					case <-ctx.Done():
					}
				}
			}
		}(u)
	}

feed:
	for i := 0; i < o.Requests; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(results)

	rep := &Report{RunID: uuid.NewString(), ByStatus: map[int]int{}, Elapsed: time.Since(start)}
	for r := range results {
		rep.Results = append(rep.Results, r)
		rep.ByStatus[r.StatusCode]++
		if r.Err != "" || r.StatusCode >= 500 || r.StatusCode == 0 {
			rep.Failures++
		}
	}
	return rep, nil
}

// Percentile returns the p-th percentile (0-100) latency of completed requests.
func (r *Report) Percentile(p float64) time.Duration {
	var lat []time.Duration
	for _, res := range r.Results {
		if res.StatusCode != 0 {
			lat = append(lat, res.Latency)
		}
	}
	if len(lat) == 0 {
		return 0
	}
	sort.Slice(lat, func(i, j int) bool { return lat[i] < lat[j] })
	idx := int(p/100*float64(len(lat)-1) + 0.5)
	if idx >= len(lat) {
		idx = len(lat) - 1
	}
	return lat[idx]
}

// Summary is a printable multi-line report.
func (r *Report) Summary() string {
	codes := make([]int, 0, len(r.ByStatus))
	for c := range r.ByStatus {
		codes = append(codes, c)
	}
	sort.Ints(codes)
	s := fmt.Sprintf("run %s: %d requests in %s, %d failures\n", r.RunID, len(r.Results), r.Elapsed.Round(time.Millisecond), r.Failures)
	for _, c := range codes {
		label := strconv.Itoa(c)
		if c == 0 {
			label = "error"
		}
		s += fmt.Sprintf("  %-5s %d\n", label, r.ByStatus[c])
	}
	s += fmt.Sprintf("  p50 %s  p90 %s  p99 %s\n", r.Percentile(50), r.Percentile(90), r.Percentile(99))
	return s
}

// WriteCSV writes one row per request.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"RunID", "User", "EmployeeID", "Date", "Status", "Latency_ms", "Error"}); err != nil {
		return err
	}
	for _, res := range r.Results {
		rec := []string{
			r.RunID,
			strconv.Itoa(res.User),
			strconv.Itoa(res.EmployeeID),
			res.Date,
			strconv.Itoa(res.StatusCode),
			strconv.FormatFloat(float64(res.Latency.Microseconds())/1000, 'f', 3, 64),
			res.Err,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
