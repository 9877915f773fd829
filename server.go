// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sms-mcp-server/commons"
	"sms-mcp-server/commons/prefixdb"
	"sms-mcp-server/db"
	"sms-mcp-server/detector"
	"sms-mcp-server/handlers"
	"sms-mcp-server/mcp"
	"sms-mcp-server/routes"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

func main() {
	commons.LoadEnvFile()
	commons.InitLogger()

	cfg, err := commons.LoadConfig(os.Args[1:])
	if err != nil {
		commons.Logger.Fatal(err)
	}
	if cfg.Debug {
		commons.Logger.Warn("Debug mode is enabled.")
		commons.Logger.SetLevel(log.DEBUG)
	}

	table, err := commons.LoadPrefixTable(loadRecords(cfg), cfg.OverwriteFile)
	if err != nil {
		commons.Logger.Fatal(err)
	}
	det := detector.New(table, detector.WithStrictValidation(cfg.StrictValidation))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case commons.TransportHTTP:
		serveHTTP(ctx, cfg, det)
	default:
		transport := mcp.NewTransport(os.Stdin, os.Stdout)
		server := mcp.NewServer(mcp.ServerName, mcp.ServerVersion, mcp.NewRegistry(det), transport)
		if err := server.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			commons.Logger.Fatal(err)
		}
	}
}

func loadRecords(cfg commons.Config) []prefixdb.Record {
	if cfg.DataSource != commons.DataSourceDB {
		records, err := commons.ReadPrefixRecords(cfg.DataFile)
		if err != nil {
			commons.Logger.Fatal(err)
		}
		return records
	}

	conn, err := db.Open()
	if err != nil {
		commons.Logger.Fatal(err)
	}
	if cfg.MigrateDB {
		commons.Logger.Debug("--migrate-db flag detected, running migrations")
		if err := db.Migrate(conn); err != nil {
			commons.Logger.Fatal(err)
		}
	}
	records, err := db.LoadPrefixRecords(conn)
	if err != nil {
		commons.Logger.Fatal(err)
	}
	if sqlDB, err := conn.DB(); err == nil {
		sqlDB.Close()
	}
	return records
}

func serveHTTP(ctx context.Context, cfg commons.Config, det *detector.Detector) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Logger.SetOutput(os.Stderr)
	e.Logger.SetLevel(commons.Logger.Level())
	e.Logger.SetHeader("${time_rfc3339} ${level} ${short_file}:${line} -")

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logMsg := func(format string, args ...any) {
				switch {
				case v.Status >= 500:
					e.Logger.Errorf(format, args...)
				case v.Status >= 400:
					e.Logger.Warnf(format, args...)
				default:
					e.Logger.Infof(format, args...)
				}
			}
			logMsg("%s %s - %d - %.2fms - %s - %s",
				v.Method,
				v.URI,
				v.Status,
				float64(v.Latency.Microseconds())/1000.0,
				v.RemoteIP,
				v.RequestID,
			)
			return nil
		},
	}))
	if cfg.Debug {
		e.Debug = true
		e.Logger.SetLevel(log.DEBUG)
	}
	e.Use(middleware.Recover())

	routes.RegisterRoutes(e, handlers.NewCarrierHandler(det))

	go func() {
		commons.Logger.Infof("Listening on %s", cfg.Port)
		if err := e.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Fatal(err)
	}
	commons.Logger.Info("Server stopped")
}
