package passimpay

import (
	"passimpay/client"

	"github.com/shopspring/decimal"
)

// BaseResponse carries the gateway's message field. A non-empty Message means
// the gateway rejected the call even though the HTTP exchange succeeded.
type BaseResponse struct {
	Message string
}

func (r BaseResponse) HasError() bool {
	return r.Message != ""
}

// Balance [/balance]
type BalanceResponse struct {
	BaseResponse
	Balance decimal.NullDecimal
}

// Currencies [/currencies]. List holds every element of the gateway's list
// as decoded; Currencies is the view of the elements that are objects.
type CurrenciesResponse struct {
	BaseResponse
	List       []any
	Currencies []client.Fields
}

// New invoice [/createorder]
type InvoiceResponse struct {
	BaseResponse
	URL string
}

// Invoice status [/orderstatus]
type InvoiceStatusResponse struct {
	BaseResponse
	Status string
}

// Payment wallet [/getpaymentwallet]
type PaymentWalletResponse struct {
	BaseResponse
	Address string
}

// Withdraw [/withdraw]. The gateway documents no single success field, so the
// whole decoded object is kept.
type WithdrawResponse struct {
	BaseResponse
	Fields client.Fields
}

// Transaction status [/transactionstatus]
type TransactionStatusResponse struct {
	BaseResponse
	Fields client.Fields
}

func baseResponse(fields client.Fields) BaseResponse {
	return BaseResponse{Message: fields.Message()}
}
