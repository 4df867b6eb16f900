// Command datatable renders the tables of the marketplace
// admin console from sample data as HTML, CSV, XLSX or text.
//
// Usage:
//
//	datatable -config datatable.yaml -table orders -format html -search acme -out orders.html
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-datatable"
	"github.com/domonda/go-datatable/csvgrid"
	"github.com/domonda/go-datatable/htmlgrid"
	"github.com/domonda/go-datatable/internal/logging"
	"github.com/domonda/go-datatable/internal/marketplace"
	"github.com/domonda/go-datatable/textgrid"
	"github.com/domonda/go-datatable/xlsxgrid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("datatable", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		configPath = flags.String("config", "", "YAML config file")
		table      = flags.String("table", "orders", "Table to render: "+strings.Join(marketplace.TableNames, ", "))
		format     = flags.String("format", "", "Output format: "+strings.Join(formats, ", "))
		search     = flags.String("search", "", "Case-insensitive search filter")
		out        = flags.String("out", "", "Output file, stdout if empty")
	)
	err := flags.Parse(args)
	if err != nil {
		return err
	}

	config := DefaultConfig()
	if *configPath != "" {
		config, err = LoadConfig(fs.File(*configPath))
		if err != nil {
			return err
		}
	}
	if *format != "" {
		config.Format = *format
	}
	if *out != "" {
		config.Out = *out
	}
	err = config.Validate()
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.Setup(config.Log, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("rendering table",
		slog.String("table", *table),
		slog.String("format", config.Format),
		slog.String("search", *search),
	)

	store := marketplace.NewStore(logger)
	o := &output{config: config, stdout: stdout}
	switch *table {
	case "customers":
		return renderTable(ctx, o, logger, "Customers", config.Tables[*table],
			marketplace.CustomersTable(store),
			marketplace.SearchCustomers(store.Customers(), *search),
		)
	case "vendors":
		return renderTable(ctx, o, logger, "Vendors", config.Tables[*table],
			marketplace.VendorsTable(store),
			marketplace.SearchVendors(store.Vendors(), *search),
		)
	case "orders":
		return renderTable(ctx, o, logger, "Orders", config.Tables[*table],
			marketplace.OrdersTable(store),
			marketplace.SearchOrders(store.Orders(), *search),
		)
	case "products":
		return renderTable(ctx, o, logger, "Products", config.Tables[*table],
			marketplace.ProductsTable(store),
			marketplace.SearchProducts(store.Products(), *search),
		)
	case "featured":
		return renderTable(ctx, o, logger, "Featured Products", config.Tables[*table],
			marketplace.FeaturedProductsTable(store),
			marketplace.SearchFeaturedProducts(store.FeaturedProducts(), *search),
		)
	case "recent-orders":
		return renderTable(ctx, o, logger, "Recent Orders", config.Tables[*table],
			marketplace.RecentOrdersTable(store),
			marketplace.RecentOrders(marketplace.SearchOrders(store.Orders(), *search), marketplace.DashboardLimit),
		)
	case "recent-vendors":
		return renderTable(ctx, o, logger, "Recent Vendor Applications", config.Tables[*table],
			marketplace.RecentVendorsTable(store),
			marketplace.RecentVendors(marketplace.SearchVendors(store.Vendors(), *search), marketplace.DashboardLimit),
		)
	}
	return fmt.Errorf("unknown table %q, must be one of %s", *table, strings.Join(marketplace.TableNames, ", "))
}

// renderTable applies the table configuration to renderer,
// renders rows and writes the grid.
func renderTable[T any](ctx context.Context, o *output, logger *slog.Logger, title string, tableConfig TableConfig, renderer *datatable.Renderer[T], rows []T) error {
	renderer = renderer.WithLogger(logger)
	if tableConfig.EmptyMessage != "" {
		renderer = renderer.WithEmptyMessage(tableConfig.EmptyMessage)
	}
	if len(tableConfig.Columns) > 0 {
		columns, err := renderer.Columns().Select(tableConfig.Columns...)
		if err != nil {
			return fmt.Errorf("table %s: %w", title, err)
		}
		renderer = renderer.WithColumns(columns)
	}
	var options []datatable.Option
	if tableConfig.Striped {
		options = append(options, datatable.OptionStripedRows)
	}
	if tableConfig.HeaderOnEmpty {
		options = append(options, datatable.OptionHeaderOnEmpty)
	}
	renderer = renderer.WithOptions(options...)

	grid, err := renderer.Render(ctx, rows)
	if err != nil {
		return err
	}
	return writeGrid(ctx, o, title, grid)
}

type output struct {
	config *Config
	stdout io.Writer
}

// write writes data to the configured output file or stdout.
func (o *output) write(data []byte) error {
	if o.config.Out == "" {
		_, err := o.stdout.Write(data)
		return err
	}
	return fs.File(o.config.Out).WriteAll(data)
}

func writeGrid[T any](ctx context.Context, o *output, title string, grid *datatable.Grid[T]) error {
	var buf bytes.Buffer
	switch o.config.Format {
	case "html":
		err := htmlgrid.NewWriter[T]().
			WithTableClass(o.config.HTML.TableClass).
			Write(ctx, &buf, grid, title)
		if err != nil {
			return err
		}
		buf.WriteByte('\n')

	case "csv":
		writer := csvgrid.NewWriter[T]().
			WithHeaderRow(true).
			WithDelimiter(o.config.csvDelimiter())
		if o.config.CSV.Padding {
			writer = writer.WithPadding(csvgrid.AlignLeft)
		}
		writer, err := writer.WithEncoding(o.config.CSV.Encoding)
		if err != nil {
			return err
		}
		if o.config.Out != "" {
			return writer.WriteFile(ctx, fs.File(o.config.Out), grid)
		}
		err = writer.Write(ctx, &buf, grid)
		if err != nil {
			return err
		}

	case "xlsx":
		writer := xlsxgrid.NewWriter[T]().WithSheetName(title)
		if o.config.Out != "" {
			return writer.WriteFile(ctx, fs.File(o.config.Out), grid)
		}
		err := writer.Write(ctx, &buf, grid)
		if err != nil {
			return err
		}

	case "text":
		err := textgrid.NewWriter[T]().Write(ctx, &buf, grid)
		if err != nil {
			return err
		}

	default:
		return errors.New("unsupported format: " + o.config.Format)
	}
	return o.write(buf.Bytes())
}
