package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/jackyeh168/dotly/src/internal/domain/customer"
	"github.com/jackyeh168/dotly/src/internal/domain/deal"
	"github.com/jackyeh168/dotly/src/internal/domain/shared"
	"github.com/jackyeh168/dotly/src/internal/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv 每個測試使用獨立的 SQLite 檔案
func setupEnv(t *testing.T) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "dotly.db") + "?_foreign_keys=on"
	t.Setenv("DB_DSN", dsn)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_ENCODING", "console")
}

// run 執行命令並返回 exit code、stdout、stderr
func run(t *testing.T, args ...string) (int, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(context.Background(), args, &stdout, &stderr)
	return code, &stdout, &stderr
}

// mustRun 執行命令，要求成功並解析 JSON 輸出
func mustRun(t *testing.T, out interface{}, args ...string) {
	t.Helper()
	code, stdout, stderr := run(t, args...)
	require.Equal(t, exitOK, code, "stderr: %s", stderr.String())
	if out != nil {
		require.NoError(t, json.Unmarshal(stdout.Bytes(), out))
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func TestRun_EndToEnd(t *testing.T) {
	setupEnv(t)
	mustRun(t, nil, "migrate")

	var shop struct {
		TenantID int64 `json:"tenantId"`
	}
	mustRun(t, &shop, "tenants", "create", "-name", "Corner Cafe", "-dots-per-dollar", "10")

	var alice struct {
		CustomerID int64 `json:"customerId"`
	}
	mustRun(t, &alice, "customers", "create", "-tenant", itoa(shop.TenantID), "-name", "Alice")

	var spendDeal struct {
		DealTemplateID int64 `json:"dealTemplateId"`
		IsActive       bool  `json:"isActive"`
	}
	mustRun(t, &spendDeal, "deals", "create",
		"-tenant", itoa(shop.TenantID),
		"-title", "Spend $50 Bonus",
		"-trigger", "SpendThreshold", "-trigger-value", "50",
		"-benefit", "BonusDots", "-benefit-value", "50",
	)
	assert.True(t, spendDeal.IsActive)
	mustRun(t, nil, "deals", "create",
		"-tenant", itoa(shop.TenantID),
		"-title", "10 Visits Milestone",
		"-trigger", "VisitMilestone", "-trigger-value", "10",
		"-benefit", "BonusDots", "-benefit-value", "100",
	)

	// 評估（只讀）
	var evaluation deal.EvaluationResult
	mustRun(t, &evaluation, "evaluate", "-customer", itoa(alice.CustomerID), "-amount", "60.00", "-base-dots", "600")
	assert.Equal(t, []deal.TriggeredDeal{{DealTemplateID: spendDeal.DealTemplateID, BonusDotsEarned: 50}}, evaluation.TriggeredDeals)
	assert.Equal(t, 50, evaluation.TotalBonusDots)

	// 消費
	var purchased struct {
		BaseDotsEarned int `json:"baseDotsEarned"`
		NewTotalDots   int `json:"newTotalDots"`
		TotalVisits    int `json:"totalVisits"`
	}
	mustRun(t, &purchased, "purchase", "-customer", itoa(alice.CustomerID), "-amount", "60", "-at", "2026-03-01T10:00:00Z")
	assert.Equal(t, 600, purchased.BaseDotsEarned)
	assert.Equal(t, 650, purchased.NewTotalDots)
	assert.Equal(t, 1, purchased.TotalVisits)

	var summary struct {
		TotalDots   int    `json:"totalDots"`
		TotalSpent  string `json:"totalSpent"`
		TotalVisits int    `json:"totalVisits"`
		Version     int    `json:"version"`
	}
	mustRun(t, &summary, "customers", "get", "-id", itoa(alice.CustomerID))
	assert.Equal(t, 650, summary.TotalDots)
	assert.Equal(t, "60", summary.TotalSpent)
	assert.Equal(t, 1, summary.TotalVisits)
	assert.Equal(t, 2, summary.Version)

	// 停用後不再出現在清單中；重複刪除仍成功
	mustRun(t, nil, "deals", "delete", "-id", itoa(spendDeal.DealTemplateID))
	mustRun(t, nil, "deals", "delete", "-id", itoa(spendDeal.DealTemplateID))
	var active []struct {
		DealTemplateID int64 `json:"dealTemplateId"`
	}
	mustRun(t, &active, "deals", "list", "-tenant", itoa(shop.TenantID))
	require.Len(t, active, 1)
	assert.NotEqual(t, spendDeal.DealTemplateID, active[0].DealTemplateID)
}

func TestRun_ErrorExitCodes(t *testing.T) {
	setupEnv(t)
	mustRun(t, nil, "migrate")

	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{"無參數", []string{}, exitUsage},
		{"未知命令", []string{"bogus"}, exitUsage},
		{"未知子命令", []string{"deals", "bogus"}, exitUsage},
		{"缺少必填參數", []string{"evaluate", "-customer", "1"}, exitUsage},
		{"金額格式錯誤", []string{"evaluate", "-customer", "1", "-amount", "abc"}, exitUsage},
		{"客戶不存在", []string{"customers", "get", "-id", "99"}, exitNotFound},
		{"評估不存在的客戶", []string{"evaluate", "-customer", "99", "-amount", "10"}, exitNotFound},
		{"負數金額", []string{"evaluate", "-customer", "1", "-amount", "-1"}, exitInvalidInput},
		{"比率超出範圍", []string{"tenants", "create", "-name", "X", "-dots-per-dollar", "5000"}, exitInvalidInput},
		{"租戶不存在", []string{"customers", "create", "-tenant", "42", "-name", "Bob"}, exitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := run(t, tt.args...)

			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestRun_ErrorOutputIsJSON(t *testing.T) {
	setupEnv(t)
	mustRun(t, nil, "migrate")

	code, stdout, stderr := run(t, "customers", "get", "-id", "99")

	require.Equal(t, exitNotFound, code)
	assert.Empty(t, stdout.String())
	var payload struct {
		Error struct {
			Code     string `json:"code"`
			Category string `json:"category"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(stderr.Bytes(), &payload))
	assert.Equal(t, string(customer.ErrCodeCustomerNotFound), payload.Error.Code)
	assert.Equal(t, string(shared.CategoryNotFound), payload.Error.Category)
}

func TestRun_InvalidConfig(t *testing.T) {
	setupEnv(t)
	t.Setenv("PURCHASE_MAX_ATTEMPTS", "many")

	code, _, _ := run(t, "migrate")

	assert.Equal(t, exitConfiguration, code)
}

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"輸入錯誤", customer.ErrInvalidPurchaseAmount, exitInvalidInput},
		{"不存在", errs.Wrap(customer.ErrCustomerNotFound, "lookup"), exitNotFound},
		{"版本衝突", customer.ErrConcurrentModification, exitConflict},
		{"目錄設定錯誤", deal.ErrUnsupportedTrigger, exitConfiguration},
		{"非領域錯誤", errs.New("boom"), exitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, exitCodeFor(tt.err))
		})
	}
}
