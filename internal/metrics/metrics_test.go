package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCounters(t *testing.T) {
	Convey("Given a manager on a private registry", t, func() {
		registry := prometheus.NewRegistry()
		m := NewManager(WithRegistry(registry), WithNamespace("test"))

		Convey("When business events are recorded", func() {
			m.EventCreated()
			m.EventCreated()
			m.ResponseSubmitted()
			m.InvitationsSent(3)
			m.InvitationsSent(0)

			Convey("Then the counters reflect them", func() {
				So(testutil.ToFloat64(m.eventsCreated), ShouldEqual, 2)
				So(testutil.ToFloat64(m.responsesSubmitted), ShouldEqual, 1)
				So(testutil.ToFloat64(m.invitationsSent), ShouldEqual, 3)
			})
		})

		Convey("When an HTTP request is observed", func() {
			m.ObserveHTTPRequest(http.MethodGet, "GET /events/{publicId}", http.StatusOK, 20*time.Millisecond)

			Convey("Then it is counted by method, route and status", func() {
				c := m.httpRequests.WithLabelValues(http.MethodGet, "GET /events/{publicId}", "200")
				So(testutil.ToFloat64(c), ShouldEqual, 1)
			})
		})
	})
}

func TestManagerHandler(t *testing.T) {
	Convey("Given a default manager", t, func() {
		m := NewManager()
		m.EventCreated()

		Convey("When the handler is scraped", func() {
			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then it serves the text exposition", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.Contains(rec.Body.String(), "groupschedule_events_created_total 1"), ShouldBeTrue)
			})
		})
	})
}
