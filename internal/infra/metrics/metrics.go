package metrics

import "github.com/prometheus/client_golang/prometheus"

var JobRunsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "job_runs_total",
		Help: "Total number of background job runs by outcome",
	},
	[]string{"job", "result"},
)

var RemindersSentTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reminders_sent_total",
		Help: "Total number of reminder notifications persisted, by channel",
	},
	[]string{"channel"},
)

var ReminderSendFailureTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "reminder_send_failure_total",
		Help: "Total number of failed reminder deliveries, by channel",
	},
	[]string{"channel"},
)

var ActivityLogsPurgedTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "activity_logs_purged_total",
		Help: "Total number of activity log rows removed by the retention job",
	},
)

func Init() {
	prometheus.MustRegister(JobRunsTotal)
	prometheus.MustRegister(RemindersSentTotal)
	prometheus.MustRegister(ReminderSendFailureTotal)
	prometheus.MustRegister(ActivityLogsPurgedTotal)
}
