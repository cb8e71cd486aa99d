package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shrimpsizemoose/trekker/logger"

	"github.com/shrimpsizemoose/semla/internal/app"
	"github.com/shrimpsizemoose/semla/internal/handlers"
)

func main() {
	service, err := app.NewService("config.toml")
	if err != nil {
		logger.Error.Fatalf("Failed to load config: %v", err)
	}
	defer service.Close()

	interviewHandler := handlers.NewInterviewHandler(service)

	http.HandleFunc("GET /api/v1/panel", interviewHandler.HandlePanel)
	http.HandleFunc("POST /api/v1/applications/{id}/marking", interviewHandler.HandleMarking)
	http.HandleFunc("POST /api/v1/applications/{id}/interview", interviewHandler.HandleSchedule)
	http.HandleFunc("POST /api/v1/applications/{id}/decision", interviewHandler.HandleDecision)
	http.HandleFunc("PUT /api/v1/applications/{id}/interview-date", interviewHandler.HandleInterviewDate)
	http.HandleFunc("PUT /api/v1/applications/{id}/assignees", interviewHandler.HandleAssign)
	http.HandleFunc("POST /api/v1/interviews/end", interviewHandler.HandleEndInterviews)
	http.HandleFunc("PUT /api/v1/interviewers/{id}/permissions", interviewHandler.HandlePermissions)

	http.Handle("/metrics", promhttp.Handler())

	logger.Info.Printf("Starting semla server on %s", service.Config.Server.Port)
	logger.Debug.Println("Requiring headers:")
	for _, h := range service.Config.API.RequiredHeaders {
		logger.Debug.Printf("  %s: %s", h.Name, h.Value)
	}
	if err := http.ListenAndServe(service.Config.Server.Port, nil); err != nil {
		logger.Error.Fatalf("Semla server failed: %v", err)
	}
}
