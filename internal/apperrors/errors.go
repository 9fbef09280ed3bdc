// Package apperrors 定義整個系統共用的錯誤分類。
//
// WebSocket 層、HTTP 層和各個 service 都以 errors.Is 比對這些哨兵錯誤，
// 決定要回傳哪種錯誤事件或 HTTP 狀態碼。
package apperrors

import "errors"

var (
	// 握手階段的錯誤，連線會被直接拒絕
	ErrAuthenticationRequired = errors.New("缺少認證憑證")
	ErrInvalidToken           = errors.New("無效的token")
	ErrExpiredToken           = errors.New("token已過期")
	ErrUnknownUser            = errors.New("使用者不存在")

	// 連線建立後的錯誤，以 error 事件回報，連線保持開啟
	ErrAuthorizationDenied = errors.New("沒有權限執行此操作")
	ErrValidation          = errors.New("請求內容驗證失敗")
	ErrNotFound            = errors.New("資源不存在")
	ErrAlreadyEvaluated    = errors.New("此作品已經評分過")
	ErrStoreUnavailable    = errors.New("儲存服務暫時無法使用")
	ErrInternal            = errors.New("內部伺服器錯誤")
)
