package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	m := New()

	m.Observe("add", ResultOK)
	m.Observe("add", ResultOK)
	m.Observe("add", ResultInvalid)

	if got := testutil.ToFloat64(m.Operations.WithLabelValues("add", ResultOK)); got != 2 {
		t.Errorf("add/ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Operations.WithLabelValues("add", ResultInvalid)); got != 1 {
		t.Errorf("add/invalid = %v, want 1", got)
	}
}

func TestHandler(t *testing.T) {
	m := New()
	m.Meals.Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "mealtracker_meals 3") {
		t.Errorf("metrics output missing meal gauge:\n%s", body)
	}
}
