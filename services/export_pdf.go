package services

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PickingListPDF creates a printable picking list from a processed work
// order using maroto/v2. It returns the raw PDF bytes or an error.
func PickingListPDF(result *ProcessResult) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	// --- Header Section ---
	addPickingHeader(m, result)

	// --- Table Header ---
	addPickingTableHeader(m)

	// --- Table Body ---
	for _, entry := range result.PickingList {
		addPickingRow(m, entry)
	}

	// --- Shortage Summary ---
	addShortageSummary(m, result)

	// --- Footer with generated date ---
	addPickingFooter(m)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addPickingHeader adds the work order title and metadata lines to the PDF.
func addPickingHeader(m core.Maroto, result *ProcessResult) {
	h := result.Header

	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Picking List - Work Order %s", h.ProductionTicketNr), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	meta := props.Text{
		Size:  9,
		Align: align.Left,
		Color: &props.Color{Red: 80, Green: 80, Blue: 80},
	}
	metaRight := meta
	metaRight.Align = align.Right

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Product: %s  (%s)", h.ProductCode, h.Wording), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Batch: %s  |  Manager: %s", h.BatchNr, h.Manager), metaRight),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Quantity launched: %s", FormatQuantity(h.QuantityLaunched)), meta),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Start date: %s", h.StartDate), metaRight),
			),
		),
	)

	// Spacer
	m.AddRows(row.New(4))
}

// addPickingTableHeader adds the column header row for the picking table.
func addPickingTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(2).Add(
				text.New("Component", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Description", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Batch", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("DLUO", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Available", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Required", headerText),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Location", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Rank", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Priority", headerText),
			).WithStyle(&headerCell),
		),
	)
}

// addPickingRow adds a single batch row, highlighting priority picks.
func addPickingRow(m core.Maroto, entry PickingEntry) {
	var cellStyle *props.Cell
	var textStyle fontstyle.Type = fontstyle.Normal

	if entry.Priority {
		// Priority pick: bold on an amber background.
		textStyle = fontstyle.Bold
		bg := &props.Color{Red: 255, Green: 243, Blue: 205}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	baseText := props.Text{
		Size:  7,
		Style: textStyle,
		Align: align.Center,
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	expiry := FormatExpiry(entry.Expiry)
	if expiry == "" {
		expiry = "unknown"
	}
	location := entry.DepotLocation
	if entry.LocationDescription != "" {
		location = fmt.Sprintf("%s / %s", entry.DepotLocation, entry.LocationDescription)
	}
	priority := ""
	if entry.Priority {
		priority = "PICK FIRST"
	}

	colComponent := col.New(2).Add(text.New(entry.Component, leftText))
	colDesc := col.New(2).Add(text.New(entry.Description, leftText))
	colBatch := col.New(1).Add(text.New(entry.BatchNr, baseText))
	colExpiry := col.New(1).Add(text.New(expiry, baseText))
	colAvailable := col.New(1).Add(text.New(FormatQuantity(entry.AvailableQuantity), rightText))
	colRequired := col.New(1).Add(text.New(FormatQuantity(entry.QuantityRequired), rightText))
	colLocation := col.New(2).Add(text.New(location, leftText))
	colRank := col.New(1).Add(text.New(fmt.Sprintf("%d", entry.Rank), baseText))
	colPriority := col.New(1).Add(text.New(priority, baseText))

	if cellStyle != nil {
		colComponent = colComponent.WithStyle(cellStyle)
		colDesc = colDesc.WithStyle(cellStyle)
		colBatch = colBatch.WithStyle(cellStyle)
		colExpiry = colExpiry.WithStyle(cellStyle)
		colAvailable = colAvailable.WithStyle(cellStyle)
		colRequired = colRequired.WithStyle(cellStyle)
		colLocation = colLocation.WithStyle(cellStyle)
		colRank = colRank.WithStyle(cellStyle)
		colPriority = colPriority.WithStyle(cellStyle)
	}

	m.AddRows(
		row.New(7).Add(
			colComponent,
			colDesc,
			colBatch,
			colExpiry,
			colAvailable,
			colRequired,
			colLocation,
			colRank,
			colPriority,
		),
	)
}

// addShortageSummary adds the component shortage section below the table.
func addShortageSummary(m core.Maroto, result *ProcessResult) {
	// Spacer before summary
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Components", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("%d", result.Stats.TotalComponents), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Sufficient stock", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("%d", result.Stats.SufficientCount), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	shortages := result.Shortages()
	m.AddRows(
		row.New(8).Add(
			col.New(8).Add(
				text.New("Shortages", labelStyle),
			).WithStyle(summaryCell),
			col.New(4).Add(
				text.New(fmt.Sprintf("%d", len(shortages)), valueStyle),
			).WithStyle(summaryCell),
		),
	)

	for _, s := range shortages {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(
					text.New(fmt.Sprintf("%s  %s", s.Component, s.Description), props.Text{
						Size:  8,
						Align: align.Right,
					}),
				),
				col.New(4).Add(
					text.New(fmt.Sprintf("short %s", FormatQuantity(s.Shortage)), props.Text{
						Size:  8,
						Style: fontstyle.Bold,
						Align: align.Right,
						Color: &props.Color{Red: 180, Green: 30, Blue: 30},
					}),
				),
			),
		)
	}
}

// addPickingFooter adds the generated-date line at the bottom.
func addPickingFooter(m core.Maroto) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", time.Now().Format(dateLayout)),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
