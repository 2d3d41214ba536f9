package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// decimalValue 以 shopspring/decimal 解析金額/門檻，避免浮點誤差
type decimalValue struct {
	d *decimal.Decimal
}

func (v *decimalValue) String() string {
	if v.d == nil {
		return ""
	}
	return v.d.String()
}

func (v *decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", s)
	}
	*v.d = d
	return nil
}

func decimalVar(fs *flag.FlagSet, p *decimal.Decimal, name, usage string) {
	fs.Var(&decimalValue{d: p}, name, usage)
}

// optionalBool 未指定時為 nil
type optionalBool struct {
	p **bool
}

func (v optionalBool) String() string {
	if v.p == nil || *v.p == nil {
		return ""
	}
	return strconv.FormatBool(**v.p)
}

func (v optionalBool) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid bool %q", s)
	}
	*v.p = &b
	return nil
}

// timeValue RFC 3339 時間，未指定時為零值
type timeValue struct {
	t *time.Time
}

func (v timeValue) String() string {
	if v.t == nil || v.t.IsZero() {
		return ""
	}
	return v.t.Format(time.RFC3339)
}

func (v timeValue) Set(s string) error {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid RFC 3339 time %q", s)
	}
	*v.t = t
	return nil
}

func newFlagSet(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

// requireFlags 檢查必填參數；缺少時輸出錯誤並返回 false
func requireFlags(stderr io.Writer, fs *flag.FlagSet, names ...string) bool {
	seen := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { seen[f.Name] = true })
	for _, name := range names {
		if !seen[name] {
			_, _ = fmt.Fprintf(stderr, "Error: -%s is required\n", name)
			return false
		}
	}
	return true
}
