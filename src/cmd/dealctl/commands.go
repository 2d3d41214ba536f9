package main

import (
	"context"
	"flag"
	"io"
	"time"

	"github.com/jackyeh168/dotly/src/cmd/dealctl/bootstrap"
	customerapp "github.com/jackyeh168/dotly/src/internal/application/customer"
	dealapp "github.com/jackyeh168/dotly/src/internal/application/deal"
	"github.com/jackyeh168/dotly/src/internal/application/purchase"
	tenantapp "github.com/jackyeh168/dotly/src/internal/application/tenant"
	"github.com/jackyeh168/dotly/src/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
)

// ===========================
// migrate
// ===========================

func runMigrateCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("migrate", stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(_ context.Context, uc bootstrap.UseCases) (interface{}, error) {
		if err := persistence.AutoMigrate(uc.DB); err != nil {
			return nil, err
		}
		return map[string]string{"status": "migrated"}, nil
	})
}

// ===========================
// tenants / customers
// ===========================

func runCreateTenantCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("tenants create", stderr)
	var cmd tenantapp.CreateTenantCommand
	fs.StringVar(&cmd.Name, "name", "", "Tenant name (REQUIRED)")
	fs.IntVar(&cmd.DotsPerDollar, "dots-per-dollar", 0, "Base dots per dollar (default from PURCHASE_DEFAULT_DOTS_PER_DOLLAR)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, "name") {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.CreateTenant.Execute(ctx, cmd)
	})
}

func runRegisterCustomerCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("customers create", stderr)
	var cmd customerapp.RegisterCustomerCommand
	fs.Int64Var(&cmd.TenantID, "tenant", 0, "Tenant ID (REQUIRED)")
	fs.StringVar(&cmd.Name, "name", "", "Customer name (REQUIRED)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, "tenant", "name") {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.RegisterCustomer.Execute(ctx, cmd)
	})
}

func runGetCustomerCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("customers get", stderr)
	var query customerapp.GetCustomerQuery
	fs.Int64Var(&query.CustomerID, "id", 0, "Customer ID (REQUIRED)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, "id") {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(_ context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.GetCustomer.Execute(query)
	})
}

// ===========================
// deals
// ===========================

func runListDealsCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("deals list", stderr)
	var tenantID int64
	fs.Int64Var(&tenantID, "tenant", 0, "Tenant ID (REQUIRED)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, "tenant") {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(_ context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.ListDeals.Execute(tenantID)
	})
}

// definitionFlags 創建與修改共用的模板內容參數
func definitionFlags(fs *flag.FlagSet, def *dealapp.DealDefinitionInput) {
	fs.StringVar(&def.Title, "title", "", "Deal title (REQUIRED)")
	fs.StringVar(&def.TriggerType, "trigger", "", "Trigger type: SpendThreshold | VisitMilestone | ConsecutiveDays (REQUIRED)")
	decimalVar(fs, &def.TriggerValue, "trigger-value", "Trigger threshold (REQUIRED)")
	fs.StringVar(&def.BenefitType, "benefit", "", "Benefit type: BonusDots | Multiplier (REQUIRED)")
	decimalVar(fs, &def.BenefitValue, "benefit-value", "Bonus dots or multiplier (REQUIRED)")
}

var definitionRequired = []string{"title", "trigger", "trigger-value", "benefit", "benefit-value"}

func runCreateDealCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("deals create", stderr)
	var cmd dealapp.CreateDealTemplateCommand
	fs.Int64Var(&cmd.TenantID, "tenant", 0, "Tenant ID (REQUIRED)")
	definitionFlags(fs, &cmd.Definition)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, append([]string{"tenant"}, definitionRequired...)...) {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.CreateDeal.Execute(ctx, cmd)
	})
}

func runUpdateDealCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("deals update", stderr)
	var cmd dealapp.UpdateDealTemplateCommand
	fs.Int64Var(&cmd.DealTemplateID, "id", 0, "Deal template ID (REQUIRED)")
	definitionFlags(fs, &cmd.Definition)
	fs.Var(optionalBool{p: &cmd.IsActive}, "active", "Set active state (true/false); unchanged when omitted")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, append([]string{"id"}, definitionRequired...)...) {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.UpdateDeal.Execute(ctx, cmd)
	})
}

func runDeleteDealCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("deals delete", stderr)
	var id int64
	fs.Int64Var(&id, "id", 0, "Deal template ID (REQUIRED)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, "id") {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error) {
		if err := uc.DeleteDeal.Execute(ctx, id); err != nil {
			return nil, err
		}
		return map[string]interface{}{"dealTemplateId": id, "isActive": false}, nil
	})
}

// ===========================
// evaluate / purchase
// ===========================

func runEvaluateCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("evaluate", stderr)
	var cmd dealapp.EvaluateDealsCommand
	fs.Int64Var(&cmd.CustomerID, "customer", 0, "Customer ID (REQUIRED)")
	decimalVar(fs, &cmd.TransactionAmount, "amount", "Transaction amount (REQUIRED)")
	fs.IntVar(&cmd.BaseDotsEarned, "base-dots", 0, "Base dots earned by the transaction")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, "customer", "amount") {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.EvaluateDeals.Execute(ctx, cmd)
	})
}

func runPurchaseCmd(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet("purchase", stderr)
	var (
		customerID int64
		amount     decimal.Decimal
		at         time.Time
	)
	fs.Int64Var(&customerID, "customer", 0, "Customer ID (REQUIRED)")
	decimalVar(fs, &amount, "amount", "Purchase amount (REQUIRED)")
	fs.Var(timeValue{t: &at}, "at", "Purchase time in RFC 3339 (default now)")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if !requireFlags(stderr, fs, "customer", "amount") {
		return exitUsage
	}

	return withApp(ctx, stdout, stderr, func(ctx context.Context, uc bootstrap.UseCases) (interface{}, error) {
		return uc.RecordPurchase.Execute(ctx, purchase.RecordPurchaseCommand{
			CustomerID:  customerID,
			Amount:      amount,
			PurchasedAt: at,
		})
	})
}
