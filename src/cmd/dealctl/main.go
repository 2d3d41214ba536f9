// dealctl 是 Dotly 優惠評估引擎的命令列工具
//
// 所有結果以 JSON 輸出到 stdout，日誌輸出到 stderr。
// 設定來自環境變數（DB_DSN、LOG_LEVEL、PURCHASE_MAX_ATTEMPTS 等）。
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

const usage = `Usage: dealctl <command> [flags]

Commands:
  migrate                         create or update database tables
  tenants create                  create a tenant
  customers create|get            register or inspect a customer
  deals list|create|update|delete manage deal templates
  evaluate                        evaluate deals for a customer (read-only)
  purchase                        record a purchase and apply triggered deals
`

// Run 分派子命令並返回 exit code
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		_, _ = fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "migrate":
		return runMigrateCmd(ctx, args[1:], stdout, stderr)
	case "tenants":
		return runGroup(ctx, "tenants", args[1:], stdout, stderr, map[string]command{
			"create": runCreateTenantCmd,
		})
	case "customers":
		return runGroup(ctx, "customers", args[1:], stdout, stderr, map[string]command{
			"create": runRegisterCustomerCmd,
			"get":    runGetCustomerCmd,
		})
	case "deals":
		return runGroup(ctx, "deals", args[1:], stdout, stderr, map[string]command{
			"list":   runListDealsCmd,
			"create": runCreateDealCmd,
			"update": runUpdateDealCmd,
			"delete": runDeleteDealCmd,
		})
	case "evaluate":
		return runEvaluateCmd(ctx, args[1:], stdout, stderr)
	case "purchase":
		return runPurchaseCmd(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		_, _ = fmt.Fprint(stdout, usage)
		return exitOK
	default:
		_, _ = fmt.Fprintf(stderr, "Unknown command: %s\n\n%s", args[0], usage)
		return exitUsage
	}
}

type command func(ctx context.Context, args []string, stdout, stderr io.Writer) int

func runGroup(ctx context.Context, name string, args []string, stdout, stderr io.Writer, subcommands map[string]command) int {
	if len(args) < 1 {
		_, _ = fmt.Fprintf(stderr, "Usage: dealctl %s <subcommand>\n", name)
		return exitUsage
	}
	run, ok := subcommands[args[0]]
	if !ok {
		_, _ = fmt.Fprintf(stderr, "Unknown subcommand: %s %s\n", name, args[0])
		return exitUsage
	}
	return run(ctx, args[1:], stdout, stderr)
}
