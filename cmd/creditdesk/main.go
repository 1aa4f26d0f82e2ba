package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - users:        List the user directory, optionally filtered by username
// - transactions: Show one user's ledger
// - qr:           Request a payment QR image and save it to a file
// - export:       Build the user+transaction workbook and publish it

func main() {
	// Subcommand definitions
	usersCmd := flag.NewFlagSet("users", flag.ExitOnError)
	transactionsCmd := flag.NewFlagSet("transactions", flag.ExitOnError)
	qrCmd := flag.NewFlagSet("qr", flag.ExitOnError)
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)

	// users parameters
	usersFilter := usersCmd.String("filter", "", "Case-insensitive username substring filter")

	// transactions parameters
	transactionsUser := transactionsCmd.String("user", "", "User id to fetch the ledger for")

	// qr parameters
	qrName := qrCmd.String("name", "", "Payee name to encode")
	qrAmount := qrCmd.Float64("amount", 0, "Payment amount to encode (must be > 0)")
	qrOut := qrCmd.String("out", "qr.png", "Output file for the QR image")

	// export parameters (the bucket and file name come from config)
	exportCmd.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: creditdesk export")
		exportCmd.PrintDefaults()
	}

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := deskFlags{
		Users: usersFlags{
			cmd:    usersCmd,
			filter: usersFilter,
		},
		Transactions: transactionsFlags{
			cmd:  transactionsCmd,
			user: transactionsUser,
		},
		QR: qrFlags{
			cmd:    qrCmd,
			name:   qrName,
			amount: qrAmount,
			out:    qrOut,
		},
		Export: exportFlags{
			cmd: exportCmd,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type deskFlags struct {
	Users        usersFlags
	Transactions transactionsFlags
	QR           qrFlags
	Export       exportFlags
}

type usersFlags struct {
	cmd    *flag.FlagSet
	filter *string
}

type transactionsFlags struct {
	cmd  *flag.FlagSet
	user *string
}

type qrFlags struct {
	cmd    *flag.FlagSet
	name   *string
	amount *float64
	out    *string
}

type exportFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(ctx context.Context, flags *deskFlags) error {
	switch os.Args[1] {
	case "users":
		return handleUsers(ctx, flags)
	case "transactions":
		return handleTransactions(ctx, flags)
	case "qr":
		return handleQR(ctx, flags)
	case "export":
		return handleExport(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleUsers(ctx context.Context, flags *deskFlags) error {
	if err := flags.Users.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse users flags")
	}

	return runUsers(ctx, *flags.Users.filter)
}

func handleTransactions(ctx context.Context, flags *deskFlags) error {
	if err := flags.Transactions.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse transactions flags")
	}

	if *flags.Transactions.user == "" {
		return errors.New("--user flag is required for transactions command")
	}

	return runTransactions(ctx, *flags.Transactions.user)
}

func handleQR(ctx context.Context, flags *deskFlags) error {
	if err := flags.QR.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse qr flags")
	}

	return runQR(ctx, *flags.QR.name, *flags.QR.amount, *flags.QR.out)
}

func handleExport(ctx context.Context, flags *deskFlags) error {
	if err := flags.Export.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse export flags")
	}

	return runExport(ctx)
}

func printUsage() {
	fmt.Println("creditdesk - terminal front-end for the credit dashboard")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  creditdesk users [-filter q]")
	fmt.Println("  creditdesk transactions -user <id>")
	fmt.Println("  creditdesk qr -name <name> -amount <amount> [-out file.png]")
	fmt.Println("  creditdesk export")
}
