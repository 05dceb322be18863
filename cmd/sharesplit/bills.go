package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/google/subcommands"

	"github.com/mmynk/sharesplitter/internal/config"
	"github.com/mmynk/sharesplitter/internal/ledger"
)

type billsCmd struct{}

func (*billsCmd) Name() string             { return "bills" }
func (*billsCmd) Synopsis() string         { return "list bills" }
func (*billsCmd) Usage() string            { return "sharesplit bills\n" }
func (*billsCmd) SetFlags(_ *flag.FlagSet) {}

func (*billsCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withLedger(ctx, args, func(l *ledger.Ledger, cfg *config.Config) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tAMOUNT\tDESCRIPTION")
		for _, b := range l.Bills() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				b.ID,
				b.CreatedAt.Local().Format(time.DateTime),
				formatMoney(b.TotalAmount, cfg.Currency),
				b.Description,
			)
		}
		fmt.Fprintf(w, "\t\t%s\ttotal\n", formatMoney(l.BillsTotal(), cfg.Currency))
		return w.Flush()
	})
}

type addBillCmd struct {
	amount      float64
	description string
}

func (*addBillCmd) Name() string     { return "add-bill" }
func (*addBillCmd) Synopsis() string { return "add a bill" }
func (*addBillCmd) Usage() string {
	return "sharesplit add-bill -amount <amount> [-description <text>]\n"
}

func (c *addBillCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Bill total, greater than zero (required).")
	f.StringVar(&c.description, "description", "", "What the bill was for.")
}

func (c *addBillCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	return withLedger(ctx, args, func(l *ledger.Ledger, cfg *config.Config) error {
		b, err := l.AddBill(ctx, ledger.BillInput{Amount: c.amount, Description: c.description})
		if err != nil {
			return err
		}
		fmt.Printf("added bill %s for %s\n", b.ID, formatMoney(b.TotalAmount, cfg.Currency))
		return nil
	})
}

type removeBillCmd struct{}

func (*removeBillCmd) Name() string             { return "remove-bill" }
func (*removeBillCmd) Synopsis() string         { return "remove bills by id" }
func (*removeBillCmd) Usage() string            { return "sharesplit remove-bill <id>...\n" }
func (*removeBillCmd) SetFlags(_ *flag.FlagSet) {}

func (*removeBillCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return withLedger(ctx, args, func(l *ledger.Ledger, _ *config.Config) error {
		for _, id := range f.Args() {
			if err := l.RemoveBill(ctx, id); err != nil {
				return err
			}
			fmt.Printf("removed %s\n", id)
		}
		return nil
	})
}

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove every participant and bill" }
func (*clearCmd) Usage() string    { return "sharesplit clear -yes\n" }

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "yes", false, "Confirm that all data should be erased.")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintln(os.Stderr, "refusing to clear without -yes")
		return subcommands.ExitUsageError
	}
	return withLedger(ctx, args, func(l *ledger.Ledger, _ *config.Config) error {
		l.ClearAll(ctx)
		fmt.Println("cleared all participants and bills")
		return nil
	})
}
