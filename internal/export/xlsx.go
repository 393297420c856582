// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export serializes protocol records into spreadsheet workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/xuri/excelize/v2"
)

const (
	// SheetName is the name of the single sheet of an exported workbook.
	SheetName = "Protocols"

	// ContentType is the MIME type of an xlsx workbook.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// FileName is the attachment name suggested to clients.
	FileName = "protocols.xlsx"

	createdAtLayout = "2006-01-02 15:04:05"
)

// Columns is the fixed header row of an exported workbook.
var Columns = []string{
	"Product category",
	"Function description",
	"Transmission direction",
	"Frame header",
	"Control word",
	"Command word",
	"Length identification",
	"Data",
	"Check field",
	"Frame end",
	"Remark",
	"Created at",
}

// ProtocolsToXLSX writes protocols, in the given order, as rows below a
// header row and returns the encoded workbook.
func ProtocolsToXLSX(protocols []models.Protocol) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	if err := writeRow(f, 1, stringsToCells(Columns)); err != nil {
		return nil, err
	}

	for i, p := range protocols {
		if err := writeRow(f, i+2, protocolRow(p)); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("error encoding workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("error resolving cell for row %d: %w", row, err)
	}

	if err = f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("error writing row %d: %w", row, err)
	}

	return nil
}

func protocolRow(p models.Protocol) []any {
	return []any{
		p.ProductCategory,
		p.FunctionDescription,
		p.TransmissionDirection,
		p.FrameHeader,
		p.ControlWord,
		p.CommandWord,
		p.LengthIdentification,
		p.Data,
		p.CheckField,
		p.FrameEnd,
		p.Remark,
		formatCreatedAt(p.CreatedAt),
	}
}

func formatCreatedAt(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(createdAtLayout)
}

func stringsToCells(values []string) []any {
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}
