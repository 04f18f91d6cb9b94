package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "fleetadmin/internal/config"
	router "fleetadmin/internal/http"

	"github.com/gin-gonic/gin"
)

const shutdownGrace = 10 * time.Second

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	srv := newServer(env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Fleet admin API siap di %s (mode=%s)", env.AppAddr, gin.Mode())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Fleet admin API gagal listen di %s: %v", env.AppAddr, err)
		}
	}()

	<-ctx.Done()
	log.Println("Sinyal berhenti diterima, menutup koneksi fleet admin API...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Fleet admin API tidak berhenti dalam %s: %v", shutdownGrace, err)
		return
	}
	log.Println("Fleet admin API berhenti.")
}

func newServer(env intconfig.Env) *http.Server {
	return &http.Server{
		Addr:              env.AppAddr,
		Handler:           router.NewRouter(env),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
}
