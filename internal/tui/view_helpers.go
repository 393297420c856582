package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-protocol-catalog/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	timeLayout  = "2006-01-02 15:04"
	maxCellText = 40
)

// ProtocolsTable renders protocols in the order given.
func ProtocolsTable(protocols []models.Protocol) string {
	if len(protocols) == 0 {
		return "no protocols"
	}

	t := newTable("ID", "Category", "Function", "Direction", "Header", "Control", "Command",
		"Length", "Data", "Check", "End", "Remark", "Created by", "Created at")
	for _, p := range protocols {
		t.Row(
			strconv.FormatInt(p.ID, 10),
			fitText(p.ProductCategory, maxCellText),
			fitText(p.FunctionDescription, maxCellText),
			p.TransmissionDirection,
			p.FrameHeader,
			p.ControlWord,
			p.CommandWord,
			p.LengthIdentification,
			fitText(p.Data, maxCellText),
			p.CheckField,
			p.FrameEnd,
			fitText(valueOrDash(&p.Remark), maxCellText),
			valueOrDash(p.CreatedByName),
			formatTime(p.CreatedAt),
		)
	}

	return t.Render()
}

// UsersTable renders accounts in the order given.
func UsersTable(users []models.User) string {
	if len(users) == 0 {
		return "no users"
	}

	t := newTable("ID", "Username", "Email", "Role", "Created at")
	for _, u := range users {
		t.Row(
			strconv.FormatInt(u.ID, 10),
			u.Username,
			valueOrDash(&u.Email),
			u.Role.String(),
			formatTime(u.CreatedAt),
		)
	}

	return t.Render()
}

// ProfileView renders the logged-in account.
func ProfileView(profile models.Profile) string {
	return fmt.Sprintf("%s\nid:    %d\nemail: %s\nrole:  %s",
		titleStyle.Render(profile.Username), profile.ID, valueOrDash(&profile.Email), profile.Role)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
