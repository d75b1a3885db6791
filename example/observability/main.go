// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/z5labs/candor/config"
	"github.com/z5labs/candor/metrics"
	"github.com/z5labs/candor/option"
	"github.com/z5labs/candor/otelsink"
	"github.com/z5labs/candor/zapsink"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var users = map[string]string{
	"u-1": "Ada",
}

func lookupUser(id string) option.Option[string] {
	name, ok := users[id]
	return option.FromOK(name, ok, option.In("example.users"))
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Reports flow into the zap core, trace correlated when a span
	// context rides along, and are counted by the Prometheus collector.
	config.SetHandler(otelsink.NewHandler(zapsink.New(logger)))
	config.SetObserver(metrics.NewCollector(prometheus.DefaultRegisterer))

	res := config.Configure(map[string]any{
		"libraries": map[string]any{
			"example.users": map[string]any{"level": "DEBUG"},
		},
	})
	if res.IsErr() {
		logger.Fatal("failed to configure reporting", zap.Error(res.UnwrapErr()))
	}

	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/users/")

		name, ok := lookupUser(id).Get()
		if !ok {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		fmt.Fprintln(w, name)
	})

	logger.Info("listening", zap.String("addr", ":8080"))
	err = http.ListenAndServe(":8080", nil)
	if err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
