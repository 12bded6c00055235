package main

import (
	"context"
	"errors"
	"fmt"
	"passimpay/client/passimpay"

	"github.com/google/uuid"
)

var errUsage = errors.New("invalid arguments")

func run(ctx context.Context, client *passimpay.Client, command string, args []string) error {
	switch command {
	case "balance":
		if len(args) != 0 {
			return usageError(command, "")
		}
		_, err := client.Balance(ctx)
		return err
	case "currencies":
		if len(args) != 0 {
			return usageError(command, "")
		}
		_, err := client.Currencies(ctx)
		return err
	case "invoice":
		var orderID, amount string
		switch len(args) {
		case 1:
			orderID, amount = uuid.NewString(), args[0]
		case 2:
			orderID, amount = args[0], args[1]
		default:
			return usageError(command, "[order_id] <amount>")
		}
		_, err := client.CreateInvoice(ctx, orderID, amount)
		return err
	case "invoice-status":
		if len(args) != 1 {
			return usageError(command, "<order_id>")
		}
		_, err := client.InvoiceStatus(ctx, args[0])
		return err
	case "wallet":
		if len(args) != 2 {
			return usageError(command, "<order_id> <payment_id>")
		}
		_, err := client.PaymentWallet(ctx, args[0], args[1])
		return err
	case "withdraw":
		if len(args) != 3 {
			return usageError(command, "<payment_id> <address_to> <amount>")
		}
		_, err := client.Withdraw(ctx, args[0], args[1], args[2])
		return err
	case "tx-status":
		if len(args) != 1 {
			return usageError(command, "<tx_hash>")
		}
		_, err := client.TransactionStatus(ctx, args[0])
		return err
	case "demo":
		return demo(ctx, client)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// demo walks through every read-only call with placeholder identifiers.
// Withdraw is left out because it moves funds.
func demo(ctx context.Context, client *passimpay.Client) error {
	orderID := "your_order_id"
	paymentID := "your_payment_id"

	steps := []func() error{
		func() error { _, err := client.Balance(ctx); return err },
		func() error { _, err := client.Currencies(ctx); return err },
		func() error { _, err := client.InvoiceStatus(ctx, orderID); return err },
		func() error { _, err := client.PaymentWallet(ctx, orderID, paymentID); return err },
		func() error { _, err := client.TransactionStatus(ctx, "your_transaction_hash"); return err },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func usageError(command string, args string) error {
	return fmt.Errorf("%w: usage: passimpay %s %s", errUsage, command, args)
}
