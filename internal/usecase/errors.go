package usecase

import (
	"errors"
	"fmt"
)

// ErrorKindはエラーの種別。handlerがこれでHTTPステータスを決める。
// メッセージ文字列で分岐しないこと。
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1 // 入力不正（400）
	KindNotFound                        // 対象なし（404）
	KindConflict                        // 状態競合（409）
	KindExhausted                       // 在庫不足（400）
	KindInternal                        // 内部エラー（500）
)

type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Kind, e.Message)
}

func NewAppError(kind ErrorKind, message string) error {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}
