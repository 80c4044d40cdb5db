package main

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cobra"

	"workorderfifo/handlers"
	"workorderfifo/services"
)

func main() {
	app := pocketbase.New()

	store := services.NewOrderStore(0)

	app.RootCmd.AddCommand(newProcessCmd())

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Track the browser's last processed order globally
		se.Router.BindFunc(handlers.ActiveOrderMiddleware(store))

		// ── Upload & results ─────────────────────────────────────
		se.Router.GET("/", handlers.HandleUploadPage())
		se.Router.POST("/workorders", handlers.HandleWorkOrderProcess(store))
		se.Router.GET("/workorders/{token}", handlers.HandleWorkOrderView(store))

		// ── Picking list exports ─────────────────────────────────
		se.Router.GET("/workorders/{token}/export/csv", handlers.HandlePickingListCSV(store))
		se.Router.GET("/workorders/{token}/export/xlsx", handlers.HandlePickingListExcel(store))
		se.Router.GET("/workorders/{token}/export/pdf", handlers.HandlePickingListPDF(store))

		// ── JSON API ─────────────────────────────────────────────
		se.Router.GET("/api/workorders/{token}", handlers.HandleWorkOrderJSON(store))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// newProcessCmd builds the offline CLI: process a work order file without
// starting the server, print the summary, and optionally write exports.
func newProcessCmd() *cobra.Command {
	var csvOut, xlsxOut, pdfOut string

	cmd := &cobra.Command{
		Use:   "process <workorder.xlsx>",
		Short: "Process a work order file and print the FIFO picking summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := services.ProcessWorkOrder(f)
			if err != nil {
				return fmt.Errorf("process %s: %w", args[0], err)
			}

			printSummary(cmd, result)

			exports := []struct {
				path     string
				generate func(*services.ProcessResult) ([]byte, error)
			}{
				{csvOut, services.PickingListCSV},
				{xlsxOut, services.PickingListExcel},
				{pdfOut, services.PickingListPDF},
			}
			for _, ex := range exports {
				if ex.path == "" {
					continue
				}
				data, err := ex.generate(result)
				if err != nil {
					return fmt.Errorf("generate %s: %w", ex.path, err)
				}
				if err := os.WriteFile(ex.path, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", ex.path, err)
				}
				cmd.Printf("wrote %s\n", ex.path)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&csvOut, "csv", "", "write the picking list as CSV to this path")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write the picking list as xlsx to this path")
	cmd.Flags().StringVar(&pdfOut, "pdf", "", "write the picking list as PDF to this path")

	return cmd
}

func printSummary(cmd *cobra.Command, result *services.ProcessResult) {
	h := result.Header
	cmd.Printf("Work Order %s  (%s)\n", h.ProductionTicketNr, h.Wording)
	cmd.Printf("Product %s  Batch %s  Manager %s\n", h.ProductCode, h.BatchNr, h.Manager)
	cmd.Printf("Quantity launched %s  Start %s\n", services.FormatQuantity(h.QuantityLaunched), h.StartDate)
	cmd.Printf("%d rows, %d components, %d sufficient, %d short\n\n",
		result.Stats.TotalRows, result.Stats.TotalComponents,
		result.Stats.SufficientCount, result.Stats.ShortageCount)

	shortages := result.Shortages()
	if len(shortages) == 0 {
		cmd.Println("All components have sufficient stock.")
		return
	}

	cmd.Println("Shortages:")
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COMPONENT\tDESCRIPTION\tREQUIRED\tAVAILABLE\tSHORTAGE")
	for _, s := range shortages {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			s.Component, s.Description,
			services.FormatQuantity(s.Required),
			services.FormatQuantity(s.Available),
			services.FormatQuantity(s.Shortage))
	}
	w.Flush()
}
