package models

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	dimensionsLabel = "dimensions"
	errTypeLabel    = "error_type"
)

var (
	partitionCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "partition_count",
		Help: "The number of hosted partitions.",
	})

	partitionCountTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "partition_count_total",
		Help: "The total number of partitions created.",
	})

	partitionPointsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partition_points_total",
		Help: "The total number of points inserted into partitions.",
	}, []string{dimensionsLabel})

	partitionInsertErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "partition_insert_errors",
		Help: "The errors that occured while inserting points.",
	}, []string{errTypeLabel})
)

func instrumentIncreasePartitionGauge() {
	partitionCount.Inc()
}

func instrumentDecreasePartitionGauge() {
	partitionCount.Dec()
}

func instrumentCountPartition() {
	partitionCountTotal.Inc()
}

func instrumentCountPoint(dimensions int) {
	partitionPointsTotal.
		With(prometheus.Labels{dimensionsLabel: strconv.Itoa(dimensions)}).
		Inc()
}

func instrumentInsertError(errType string) {
	partitionInsertErrors.
		With(prometheus.Labels{errTypeLabel: errType}).
		Inc()
}
