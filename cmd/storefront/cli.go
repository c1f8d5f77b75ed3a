package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/MikeMC777/loop-storefront/internal/cart"
	"github.com/MikeMC777/loop-storefront/internal/product"
)

func newProductsCmd(c *cli) *cobra.Command {
	var view, q, category string
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.application(cmd.Context())
			if err != nil {
				return err
			}
			ps := product.View(a.products.List(cmd.Context()), view)
			if category != "" {
				ps = product.InCategory(ps, category)
			}
			ps = product.Search(ps, q)

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSHIPPING")
			for _, p := range ps {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.IncludeShip)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&view, "view", product.ViewAll, "all, main, ghana or bundles")
	cmd.Flags().StringVar(&q, "q", "", "search name and description")
	cmd.Flags().StringVar(&category, "category", "", "exact category")
	return cmd
}

// withCLICart opens the local cart file for the duration of fn.
func withCLICart(ctx context.Context, c *cli, fn func(ct *cart.Cart) error) error {
	db, err := cart.OpenBolt(c.cfg.CartDBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	ct, err := cart.New(ctx, cart.NewBoltStore(db, cart.CLIKey))
	if err != nil {
		return err
	}
	return fn(ct)
}

func newCartCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Inspect and edit the local cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the cart and its totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLICart(cmd.Context(), c, func(ct *cart.Cart) error {
				return printCart(cmd.OutOrStdout(), ct)
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add one unit of a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.application(cmd.Context())
			if err != nil {
				return err
			}
			p, err := a.products.Get(cmd.Context(), args[0])
			if errors.Is(err, product.ErrNotConfigured) {
				demo, ok := product.DemoProduct(args[0])
				if !ok {
					return product.ErrNotFound
				}
				p, err = demo, nil
			}
			if err != nil {
				return err
			}
			return withCLICart(cmd.Context(), c, func(ct *cart.Cart) error {
				if err := ct.Add(cmd.Context(), *p); err != nil {
					return err
				}
				return printCart(cmd.OutOrStdout(), ct)
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <productId>",
		Short: "Remove a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLICart(cmd.Context(), c, func(ct *cart.Cart) error {
				if err := ct.Remove(cmd.Context(), args[0]); err != nil {
					return err
				}
				return printCart(cmd.OutOrStdout(), ct)
			})
		},
	}

	set := &cobra.Command{
		Use:   "set <productId> <quantity>",
		Short: "Set a line's quantity; 0 removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := cast.ToIntE(args[1])
			if err != nil {
				return fmt.Errorf("quantity %q: %w", args[1], err)
			}
			return withCLICart(cmd.Context(), c, func(ct *cart.Cart) error {
				if err := ct.SetQuantity(cmd.Context(), args[0], q); err != nil {
					return err
				}
				return printCart(cmd.OutOrStdout(), ct)
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCLICart(cmd.Context(), c, func(ct *cart.Cart) error {
				if err := ct.Clear(cmd.Context()); err != nil {
					return err
				}
				return printCart(cmd.OutOrStdout(), ct)
			})
		},
	}

	cmd.AddCommand(show, add, remove, set, clearCmd)
	return cmd
}

func newCheckoutCmd(c *cli) *cobra.Command {
	var customerID, comments string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Submit the local cart as an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.application(cmd.Context())
			if err != nil {
				return err
			}
			return withCLICart(cmd.Context(), c, func(ct *cart.Cart) error {
				if ct.Len() == 0 {
					return errors.New("cart is empty")
				}
				res, err := a.checkout.SubmitCart(cmd.Context(), ct, customerID, comments)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Order placed. Checkout #%d, %d line(s).\n", res.CheckoutNumber, len(res.OrderIDs))
				if res.Demo {
					fmt.Fprintln(out, "Demo mode: nothing was saved.")
				} else if !res.SummaryWritten {
					fmt.Fprintln(out, "Warning: checkout summary was not recorded.")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&customerID, "customer", "", "customer id")
	cmd.Flags().StringVar(&comments, "comments", "", "order comments")
	_ = cmd.MarkFlagRequired("customer")
	return cmd
}

func printCart(w io.Writer, ct *cart.Cart) error {
	items := ct.Items()
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "Cart is empty.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPRICE")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", it.ID, it.Name, it.Quantity, it.Price.StringFixed(2))
	}
	t := ct.Totals()
	fmt.Fprintf(tw, "\t\tItems\t%d\n", t.TotalItems)
	fmt.Fprintf(tw, "\t\tSubtotal\t%s\n", t.Subtotal.StringFixed(2))
	fmt.Fprintf(tw, "\t\tShipping\t%s\n", t.ShippingTotal.StringFixed(2))
	fmt.Fprintf(tw, "\t\tTotal\t%s\n", t.GrandTotal.StringFixed(2))
	if t.PendingShippingEstimate {
		fmt.Fprintln(tw, "\t\tShipping for some items is estimated on arrival.\t")
	}
	return tw.Flush()
}
