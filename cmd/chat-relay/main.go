package main

import (
	"flag"
	"net/http"

	"go.uber.org/zap"

	"github.com/holynakamoto/mmtui/pkg/logging"
	"github.com/holynakamoto/mmtui/pkg/relay"
)

func main() {
	addr := flag.String("addr", ":8787", "listen address")
	flag.Parse()

	log, err := logging.NewConsoleLogger()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	hub := relay.NewHub(log)
	go hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", relay.Handler(hub))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	log.Info("chat relay listening", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}
