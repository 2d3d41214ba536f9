package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jackyeh168/dotly/src/cmd/dealctl/bootstrap"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"go.uber.org/fx"
)

// ===========================
// Exit codes
// ===========================

const (
	exitOK            = 0
	exitInternal      = 1
	exitUsage         = 2
	exitInvalidInput  = 3
	exitNotFound      = 4
	exitConflict      = 5
	exitConfiguration = 6
)

// exitCodeFor 依錯誤分類映射 exit code
func exitCodeFor(err error) int {
	switch shared.CategoryOf(err) {
	case shared.CategoryInvalidInput:
		return exitInvalidInput
	case shared.CategoryNotFound:
		return exitNotFound
	case shared.CategoryConflict:
		return exitConflict
	case shared.CategoryConfiguration:
		return exitConfiguration
	default:
		return exitInternal
	}
}

// errorOutput 錯誤的 JSON 表示（輸出到 stderr）
type errorOutput struct {
	Code     shared.ErrorCode       `json:"code,omitempty"`
	Category shared.ErrorCategory   `json:"category"`
	Message  string                 `json:"message"`
	Context  map[string]interface{} `json:"context,omitempty"`
	Detail   string                 `json:"detail"`
}

func writeError(w io.Writer, err error) {
	out := errorOutput{
		Category: shared.CategoryOf(err),
		Detail:   err.Error(),
	}
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		out.Code = domainErr.Code
		out.Message = domainErr.Message
		out.Context = domainErr.Context
	}
	_ = writeJSON(w, map[string]errorOutput{"error": out})
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ===========================
// 應用程式生命週期
// ===========================

// action 子命令的實際工作；返回值以 JSON 輸出
type action func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error)

// withApp 啟動 fx 應用、執行 action、關閉資源
func withApp(ctx context.Context, stdout, stderr io.Writer, run action) int {
	var uc bootstrap.UseCases
	app := fx.New(
		bootstrap.Module,
		fx.Invoke(func(in bootstrap.UseCases) { uc = in }),
	)
	if err := app.Err(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return exitConfiguration
	}

	if err := app.Start(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: failed to start: %v\n", err)
		return exitInternal
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			_, _ = fmt.Fprintf(stderr, "Error: failed to stop: %v\n", err)
		}
	}()

	out, err := run(ctx, uc)
	if err != nil {
		writeError(stderr, err)
		return exitCodeFor(err)
	}
	if err := writeJSON(stdout, out); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: failed to write output: %v\n", err)
		return exitInternal
	}
	return exitOK
}
