package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/i18n"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w, StatusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("request handled", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // slog would flatten the trace into one line
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), LocaleCtx, h.translator.ResolveLocale(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) sprintInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sprint, err := h.repository.GetSprintByID(chi.URLParam(r, "id"))
		if err != nil {
			h.repositoryError(w, r, err, i18n.MsgSprintNotFound)
			return
		}

		ctx := context.WithValue(r.Context(), SprintCtx, sprint)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) personInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		person, err := h.repository.GetPersonByID(chi.URLParam(r, "id"))
		if err != nil {
			h.repositoryError(w, r, err, i18n.MsgPersonNotFound)
			return
		}

		ctx := context.WithValue(r.Context(), PersonCtx, person)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) holidayInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		holiday, err := h.repository.GetHolidayByID(chi.URLParam(r, "id"))
		if err != nil {
			h.repositoryError(w, r, err, i18n.MsgHolidayNotFound)
			return
		}

		ctx := context.WithValue(r.Context(), HolidayCtx, holiday)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
