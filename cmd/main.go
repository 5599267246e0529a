package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"os"
	"reflect"
	"syscall"
	"time"

	"github.com/aukilabs/go-tooling/pkg/cli"
	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/events"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/aukilabs/go-tooling/pkg/metrics"
	"github.com/aukilabs/yggdrasil/featureflag"
	yhttp "github.com/aukilabs/yggdrasil/http"
	"github.com/aukilabs/yggdrasil/models"
	ywebsocket "github.com/aukilabs/yggdrasil/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/segmentio/encoding/json"
)

var (
	// The Yggdrasil version number. Set at build.
	version = "v0.1.0"

	infoGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name:        "yggdrasil_info",
		Help:        "Yggdrasil information.",
		ConstLabels: prometheus.Labels{"version": version},
	})
)

// This will effectively disable obfuscation of the config struct. Without it, the keys would get obfuscated causing the cli package to generate garbled command-line options.
// https://github.com/burrowers/garble/issues/403
var _ = reflect.TypeOf(config{})

type config struct {
	Addr         string       `cli:""        env:"YGGDRASIL_ADDR"          help:"Listening address for client connections."`
	AdminAddr    string       `cli:""        env:"YGGDRASIL_ADMIN_ADDR"    help:"Admin listening address."`
	LogLevel     string       `cli:""        env:"YGGDRASIL_LOG_LEVEL"     help:"Log level (debug|info|warning|error)."`
	LogIndent    bool         `cli:""        env:"YGGDRASIL_LOG_INDENT"    help:"Indent logs."`
	FeatureFlags []string     `cli:",hidden" env:"YGGDRASIL_FEATURE_FLAGS" help:"Comma separated feature flags"`
	Events       eventsConfig `cli:",hidden" env:"-"                       help:"Event pusher configuration."`
	Version      bool         `cli:""        env:"-"                       help:"Show version."`
	Help         bool         `cli:""        env:"-"                       help:"Show help."`
}

type eventsConfig struct {
	Endpoint      string        `cli:",hidden" env:"YGGDRASIL_EVENTS_ENDPOINT"       help:"Endpoint to where events are pushed."`
	FlushInterval time.Duration `cli:",hidden" env:"YGGDRASIL_EVENTS_FLUSH_INTERVAL" help:"The duration between each event flush."`
	BatchSize     int           `cli:",hidden" env:"YGGDRASIL_EVENTS_BATCH_SIZE"     help:"The maximum number of events sent at once."`
	QueueSize     int           `cli:",hidden" env:"YGGDRASIL_EVENTS_QUEUE_SIZE"     help:"The size of the queue where events are stored."`
}

func main() {
	conf := config{
		Addr:      ":4000",
		AdminAddr: ":18190",
		LogLevel:  logs.InfoLevel.String(),
		Events: eventsConfig{
			FlushInterval: events.DefaultFlushInterval,
			BatchSize:     events.DefaultBatchSize,
			QueueSize:     events.DefaultQueueSize,
		},
	}

	// set the information gauge to 1, useful for SUM query
	infoGauge.Set(1)

	ctx, cancel := cli.ContextWithSignals(context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cli.Register().
		Help("Starts Yggdrasil, a server hosting N-dimensional spatial partition trees.").
		Options(&conf)
	cli.Load()

	if conf.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	logs.SetLevel(logs.ParseLevel(conf.LogLevel))
	logs.Encoder = json.Marshal
	if conf.LogIndent {
		logs.Encoder = func(v any) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}
	}

	errors.Encoder = json.Marshal

	if conf.Events.Endpoint != "" {
		eventsPusher := events.Pusher{
			Endpoint:      conf.Events.Endpoint,
			FlushInterval: conf.Events.FlushInterval,
			BatchSize:     conf.Events.BatchSize,
			QueueSize:     conf.Events.QueueSize,
			Transport:     metrics.HTTPTransport(http.DefaultTransport),
		}
		go eventsPusher.Start()
		defer eventsPusher.Close()

		eventsLogger := events.Logger{
			Pusher:           &eventsPusher,
			SDKType:          "yggdrasil",
			SDKVersionFamily: version,
		}
		logs.SetLogger(eventsLogger.Log)
	}

	flags := featureflag.New(conf.FeatureFlags)

	var partitions models.PartitionStore

	var service http.ServeMux
	api := yhttp.API{
		Partitions:   &partitions,
		FeatureFlags: flags,
	}
	api.Register(&service)

	flags.IfNotSet(featureflag.FlagDisableStream, func() {
		stream := ywebsocket.StreamHandler{Partitions: &partitions}
		service.Handle("GET /partitions/{id}/stream", stream.Handler())
	})

	service.HandleFunc("/health", yhttp.HandleHealthCheck)
	service.HandleFunc("/version", yhttp.HandleVersion(version))

	var admin http.ServeMux
	admin.Handle("/metrics", promhttp.Handler())
	admin.HandleFunc("/health", yhttp.HandleHealthCheck)
	admin.HandleFunc("/ready", yhttp.HandleReadyCheck(func() bool { return true }))

	flags.IfNotSet(featureflag.FlagDisablePprof, func() {
		admin.HandleFunc("/debug/pprof/", pprof.Index)
		admin.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		admin.HandleFunc("/debug/pprof/profile", pprof.Profile)
		admin.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		admin.HandleFunc("/debug/pprof/trace", pprof.Trace)
		admin.Handle("/debug/pprof/goroutine", pprof.Handler("goroutine"))
		admin.Handle("/debug/pprof/heap", pprof.Handler("heap"))
	})

	logs.WithTag("version", version).
		WithTag("log_level", conf.LogLevel).
		WithTag("addr", conf.Addr).
		Info("starting yggdrasil server")

	yhttp.ListenAndServe(ctx,
		&http.Server{
			Addr:    conf.Addr,
			Handler: metrics.HTTPHandler(yhttp.HandleWithCORS(&service), yhttp.MetricsPathFormatter),
		},
		&http.Server{Addr: conf.AdminAddr, Handler: &admin},
	)
}
