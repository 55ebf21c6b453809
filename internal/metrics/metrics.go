// Package metrics exposes the site's Prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts accepted intake submissions.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_registrations_total",
		Help: "Accepted registration form submissions.",
	})

	// RegistrationsRejected counts submissions failing validation.
	RegistrationsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "academy_registrations_rejected_total",
		Help: "Registration submissions rejected by validation.",
	})

	// StudentLogins counts portal logins by outcome.
	StudentLogins = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academy_student_logins_total",
		Help: "Student portal login attempts.",
	}, []string{"outcome"})

	// Resolutions counts next-class lookups by result.
	Resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academy_next_class_resolutions_total",
		Help: "Next-class resolver runs by result.",
	}, []string{"result"})

	// EmailsSent counts notification deliveries by status.
	EmailsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "academy_notification_emails_total",
		Help: "Registration notification emails by delivery status.",
	}, []string{"status"})
)
