// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ProtocolKey is the seven-field composite key of a protocol record.
// No two protocols may share all seven values.
type ProtocolKey struct {
	ProductCategory      string `json:"product_category"`
	FrameHeader          string `json:"frame_header"`
	ControlWord          string `json:"control_word"`
	CommandWord          string `json:"command_word"`
	LengthIdentification string `json:"length_identification"`
	CheckField           string `json:"check_field"`
	FrameEnd             string `json:"frame_end"`
}

// Protocol describes the field layout of one communication frame.
//
// Protocols are never edited in place: they are created and deleted only.
type Protocol struct {
	ID int64 `json:"id"`

	ProtocolKey

	FunctionDescription   string `json:"function_description"`
	TransmissionDirection string `json:"transmission_direction"`
	Data                  string `json:"data"`
	Remark                string `json:"remark"`

	// CreatedBy references the creating user. It becomes nil when that user
	// is deleted.
	CreatedBy *int64 `json:"created_by"`

	// CreatedByName is resolved at read time and is nil for orphaned records.
	CreatedByName *string `json:"created_by_name"`

	CreatedAt time.Time `json:"created_at"`
}

// Key returns the composite key of p.
func (p Protocol) Key() ProtocolKey {
	return p.ProtocolKey
}

// IsOwnedBy reports whether userID created p.
func (p Protocol) IsOwnedBy(userID int64) bool {
	return p.CreatedBy != nil && *p.CreatedBy == userID
}
