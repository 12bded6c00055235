package passimpay

import (
	"context"
	"fmt"
	"passimpay/client"

	"github.com/shopspring/decimal"
)

func (p *Client) Balance(ctx context.Context) (*BalanceResponse, error) {
	fields, err := p.dispatch(ctx, "balance", nil)
	if err != nil {
		return nil, err
	}
	data := &BalanceResponse{
		BaseResponse: baseResponse(fields),
		Balance:      fields.Decimal("balance"),
	}
	p.report("balance", "Balance: "+formatNullDecimal(data.Balance), data.Message)
	return data, nil
}

func (p *Client) Currencies(ctx context.Context) (*CurrenciesResponse, error) {
	fields, err := p.dispatch(ctx, "currencies", nil)
	if err != nil {
		return nil, err
	}
	data := &CurrenciesResponse{
		BaseResponse: baseResponse(fields),
		List:         fields.Items("list"),
		Currencies:   fields.List("list"),
	}
	p.report("currencies", fmt.Sprintf("Available currencies: %v", data.List), data.Message)
	return data, nil
}

func (p *Client) CreateInvoice(ctx context.Context, orderID string, amount string) (*InvoiceResponse, error) {
	req := client.NewParams(
		client.Param{Key: "order_id", Value: orderID},
		client.Param{Key: "amount", Value: amount},
	)
	fields, err := p.dispatch(ctx, "createorder", req)
	if err != nil {
		return nil, err
	}
	data := &InvoiceResponse{
		BaseResponse: baseResponse(fields),
		URL:          fields.String("url"),
	}
	p.report("createorder", "Invoice URL: "+data.URL, data.Message)
	return data, nil
}

func (p *Client) InvoiceStatus(ctx context.Context, orderID string) (*InvoiceStatusResponse, error) {
	req := client.NewParams(client.Param{Key: "order_id", Value: orderID})
	fields, err := p.dispatch(ctx, "orderstatus", req)
	if err != nil {
		return nil, err
	}
	data := &InvoiceStatusResponse{
		BaseResponse: baseResponse(fields),
		Status:       fields.String("status"),
	}
	p.report("orderstatus", "Invoice status: "+data.Status, data.Message)
	return data, nil
}

func (p *Client) PaymentWallet(ctx context.Context, orderID string, paymentID string) (*PaymentWalletResponse, error) {
	req := client.NewParams(
		client.Param{Key: "payment_id", Value: paymentID},
		client.Param{Key: "platform_id", Value: p.config.PlatformID},
		client.Param{Key: "order_id", Value: orderID},
	)
	fields, err := p.dispatch(ctx, "getpaymentwallet", req)
	if err != nil {
		return nil, err
	}
	data := &PaymentWalletResponse{
		BaseResponse: baseResponse(fields),
		Address:      fields.String("address"),
	}
	p.report("getpaymentwallet", "Payment wallet address: "+data.Address, data.Message)
	return data, nil
}

func (p *Client) Withdraw(ctx context.Context, paymentID string, addressTo string, amount string) (*WithdrawResponse, error) {
	req := client.NewParams(
		client.Param{Key: "payment_id", Value: paymentID},
		client.Param{Key: "platform_id", Value: p.config.PlatformID},
		client.Param{Key: "amount", Value: amount},
		client.Param{Key: "address_to", Value: addressTo},
	)
	fields, err := p.dispatch(ctx, "withdraw", req)
	if err != nil {
		return nil, err
	}
	data := &WithdrawResponse{
		BaseResponse: baseResponse(fields),
		Fields:       fields,
	}
	p.report("withdraw", fmt.Sprintf("Withdrawal response: %v", map[string]any(fields)), data.Message)
	return data, nil
}

func (p *Client) TransactionStatus(ctx context.Context, txHash string) (*TransactionStatusResponse, error) {
	req := client.NewParams(client.Param{Key: "txhash", Value: txHash})
	fields, err := p.dispatch(ctx, "transactionstatus", req)
	if err != nil {
		return nil, err
	}
	data := &TransactionStatusResponse{
		BaseResponse: baseResponse(fields),
		Fields:       fields,
	}
	p.report("transactionstatus", fmt.Sprintf("Transaction status: %v", map[string]any(fields)), data.Message)
	return data, nil
}

func formatNullDecimal(d decimal.NullDecimal) string {
	if !d.Valid {
		return "none"
	}
	return d.Decimal.String()
}
