package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// Wrap 附加訊息與堆疊；保留原錯誤供 errors.Is / errors.As 判斷
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Wrapf 同 Wrap，支援格式化訊息
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark 讓 err 同時被視為 markErr（errors.Is(err, markErr) == true）
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is 代理 cockroachdb/errors 的 Is（跨 Mark 與網路序列化邊界）
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

// ExtractStackLines 取出錯誤的詳細格式（含堆疊），最多 maxLines 行
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
