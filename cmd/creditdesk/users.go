package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"creditdesk/internal/domain/faults"
	"creditdesk/internal/usecase/impl"
)

func runUsers(ctx context.Context, filter string) error {
	deskApp, err := newApp()
	if err != nil {
		return err
	}

	userList := impl.NewUserListService(deskApp.directory, deskApp.logger)
	if err := userList.Load(ctx); err != nil {
		fmt.Fprintln(os.Stderr, faults.UserMessage(err))

		return err
	}

	users := userList.Filter(filter)
	if len(users) == 0 {
		fmt.Println("No users found.")

		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USER ID\tUSERNAME\tEMAIL\tPHONE\tBALANCE")
	for _, user := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\n",
			user.UserID, user.Username, user.Email, user.PhoneNumber, user.CreditBalance)
	}

	return w.Flush()
}
