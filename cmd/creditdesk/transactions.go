package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"creditdesk/internal/domain/faults"
	"creditdesk/internal/usecase/impl"
)

func runTransactions(ctx context.Context, userID string) error {
	deskApp, err := newApp()
	if err != nil {
		return err
	}

	transactions := impl.NewTransactionService(deskApp.directory, deskApp.logger)
	if err := transactions.Load(ctx, userID); err != nil {
		fmt.Fprintln(os.Stderr, faults.UserMessage(err))

		return err
	}

	state := transactions.State()
	if len(state.Transactions) == 0 {
		fmt.Printf("No transactions for user %s.\n", userID)

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TYPE\tACTIVITY\tAMOUNT\tCREATED AT")
	for _, transaction := range state.Transactions {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n",
			transaction.TransactionType, transaction.ActivityType, transaction.Amount, transaction.CreatedAt)
	}

	return w.Flush()
}
