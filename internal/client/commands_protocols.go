package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-protocol-catalog/internal/tui"
	"github.com/MKhiriev/go-protocol-catalog/models"
)

const defaultExportFile = "protocols.xlsx"

func (a *App) protocols(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: protocols list|add|delete|export", ErrMissingSubcommand)
	}

	if err := a.requireSession(); err != nil {
		return err
	}

	switch args[0] {
	case "list":
		return a.listProtocols(ctx)
	case "add":
		return a.addProtocol(ctx, args[1:])
	case "delete":
		return a.deleteProtocol(ctx, args[1:])
	case "export":
		return a.exportProtocols(ctx, args[1:])
	default:
		return fmt.Errorf("%w: protocols %s", ErrUnknownCommand, args[0])
	}
}

func (a *App) listProtocols(ctx context.Context) error {
	protocols, err := a.server.ListProtocols(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, tui.ProtocolsTable(protocols))
	return nil
}

func (a *App) addProtocol(ctx context.Context, args []string) error {
	var p models.Protocol

	fs := a.newFlagSet("protocols add")
	fs.StringVar(&p.ProductCategory, "category", "", "product category")
	fs.StringVar(&p.FunctionDescription, "function", "", "function description")
	fs.StringVar(&p.TransmissionDirection, "direction", "", "transmission direction")
	fs.StringVar(&p.FrameHeader, "header", "", "frame header")
	fs.StringVar(&p.ControlWord, "control", "", "control word")
	fs.StringVar(&p.CommandWord, "command", "", "command word")
	fs.StringVar(&p.LengthIdentification, "length", "", "length identification")
	fs.StringVar(&p.Data, "data", "", "data description")
	fs.StringVar(&p.CheckField, "check", "", "check field")
	fs.StringVar(&p.FrameEnd, "end", "", "frame end")
	fs.StringVar(&p.Remark, "remark", "", "remark")
	if handled, err := parseFlags(fs, args); handled || err != nil {
		return err
	}

	id, err := a.server.CreateProtocol(ctx, p)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "protocol created, id %d\n", id)
	return nil
}

func (a *App) deleteProtocol(ctx context.Context, args []string) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	if err = a.server.DeleteProtocol(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "protocol %d deleted\n", id)
	return nil
}

func (a *App) exportProtocols(ctx context.Context, args []string) error {
	fs := a.newFlagSet("protocols export")
	output := fs.String("o", defaultExportFile, "output file")
	if handled, err := parseFlags(fs, args); handled || err != nil {
		return err
	}

	workbook, err := a.server.ExportProtocols(ctx)
	if err != nil {
		return err
	}

	if err = os.WriteFile(*output, workbook, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}

	fmt.Fprintf(a.out, "exported to %s\n", *output)
	return nil
}
