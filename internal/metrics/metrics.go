package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Account metrics
	UserRegistrationCounter  prometheus.Counter
	EmailVerificationCounter prometheus.Counter
	LoginCounter             *prometheus.CounterVec

	// Marketplace metrics
	RequestsCreatedCounter   prometheus.Counter
	RequestsAcceptedCounter  prometheus.Counter
	AcceptConflictCounter    prometheus.Counter
	MeetingsScheduledCounter *prometheus.CounterVec
	SessionsCreatedCounter   prometheus.Counter

	// Request metrics
	RequestDurationHistogram *prometheus.HistogramVec
	APIRequestCounter        *prometheus.CounterVec
	APIErrorCounter          *prometheus.CounterVec
)

var initOnce sync.Once

// Init initializes all Prometheus metrics under the given namespace.
// Collectors register against the default registry, so Init runs once.
func Init(namespace string) {
	initOnce.Do(func() { register(namespace) })
}

func register(namespace string) {
	UserRegistrationCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_registration_total",
		Help:      "Total number of user registrations",
	})

	EmailVerificationCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_verification_total",
		Help:      "Total number of verified email addresses",
	})

	LoginCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "login_total",
			Help:      "Total number of login attempts",
		},
		[]string{"result"},
	)

	RequestsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_created_total",
		Help:      "Total number of learning requests created",
	})

	RequestsAcceptedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_accepted_total",
		Help:      "Total number of requests accepted by tutors",
	})

	AcceptConflictCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accept_conflict_total",
		Help:      "Total number of accept attempts rejected as duplicates",
	})

	MeetingsScheduledCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "meetings_scheduled_total",
			Help:      "Total number of meetings scheduled",
		},
		[]string{"meeting_type"},
	)

	SessionsCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_created_total",
		Help:      "Total number of session records created",
	})

	RequestDurationHistogram = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"method", "path"},
	)

	APIErrorCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of API errors",
		},
		[]string{"method", "path", "status"},
	)
}

// Middleware tracks request count, duration and error rate per route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		APIRequestCounter.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
		}).Inc()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		RequestDurationHistogram.With(prometheus.Labels{
			"method": c.Request.Method,
			"path":   path,
			"status": status,
		}).Observe(time.Since(start).Seconds())

		if c.Writer.Status() >= 400 {
			APIErrorCounter.With(prometheus.Labels{
				"method": c.Request.Method,
				"path":   path,
				"status": status,
			}).Inc()
		}
	}
}

// Handler returns the HTTP handler for the metrics endpoint
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
