package consumer

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	processedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "club_signup",
		Subsystem: "consumer",
		Name:      "roster_events_audited_total",
		Help:      "Roster events logged and committed by the audit consumer.",
	}, []string{"topic", "event_type"})

	handlerErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "club_signup",
		Subsystem: "consumer",
		Name:      "handler_errors_total",
		Help:      "Roster events the audit handler rejected, left uncommitted for redelivery.",
	}, []string{"topic", "event_type"})

	decodeErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "club_signup",
		Subsystem: "consumer",
		Name:      "decode_errors_total",
		Help:      "Number of undecodable roster events per topic.",
	}, []string{"topic"})

	lastAuditedGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "club_signup",
		Subsystem: "consumer",
		Name:      "last_audited_timestamp_seconds",
		Help:      "Kafka timestamp of the newest audited roster event per topic.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(processedCounter, handlerErrorCounter, decodeErrorCounter, lastAuditedGauge)
}

func recordProcessed(msg Message) {
	processedCounter.WithLabelValues(msg.Topic, string(msg.Event.Type)).Inc()
	if !msg.Timestamp.IsZero() {
		lastAuditedGauge.WithLabelValues(msg.Topic).Set(float64(msg.Timestamp.Unix()))
	}
}

func recordHandlerError(msg Message) {
	handlerErrorCounter.WithLabelValues(msg.Topic, string(msg.Event.Type)).Inc()
}

func recordDecodeError(topic string) {
	decodeErrorCounter.WithLabelValues(topic).Inc()
}
